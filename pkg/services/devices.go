package services

import (
	"context"
	"time"

	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"github.com/fleetdesk/fleet-api/pkg/db"
	"github.com/fleetdesk/fleet-api/pkg/models"

	log "github.com/sirupsen/logrus"
)

// DeviceServiceInterface defines the interface that helps handle
// the business logic of the device registry
type DeviceServiceInterface interface {
	GetDevices(limit int, offset int, tx *gorm.DB) (*[]models.Device, error)
	GetDevicesCount(tx *gorm.DB) (int64, error)
	GetDeviceByUUID(uuid string) (*models.Device, error)
	UpdateDevice(uuid string, update *models.Device) (*models.Device, error)
	DeleteDevice(uuid string) error
	CheckIn(uuid string, checkIn *models.DeviceCheckIn) (*models.Device, error)
}

// DeviceService is the main implementation of a DeviceServiceInterface
type DeviceService struct {
	Service
}

// NewDeviceService returns an instance of the main implementation of a DeviceServiceInterface
func NewDeviceService(ctx context.Context, log *log.Entry) DeviceServiceInterface {
	return &DeviceService{
		Service: Service{ctx: ctx, log: log.WithField("service", "devices")},
	}
}

// GetDevicesCount gets the device records count from the database
func (s *DeviceService) GetDevicesCount(tx *gorm.DB) (int64, error) {
	if tx == nil {
		tx = db.DB
	}

	var count int64
	res := tx.Model(&models.Device{}).Count(&count)
	if res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error getting devices count")
		return 0, res.Error
	}

	return count, nil
}

// GetDevices gets the device objects from the database
func (s *DeviceService) GetDevices(limit int, offset int, tx *gorm.DB) (*[]models.Device, error) {
	if tx == nil {
		tx = db.DB
	}

	var devices []models.Device
	res := tx.Limit(limit).Offset(offset).Find(&devices)
	if res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error getting devices")
		return nil, res.Error
	}

	return &devices, nil
}

// GetDeviceByUUID gets a device by its opaque UUID
func (s *DeviceService) GetDeviceByUUID(uuid string) (*models.Device, error) {
	var device models.Device
	if result := db.DB.Where("uuid = ?", uuid).First(&device); result.Error != nil {
		return nil, new(DeviceNotFoundError)
	}
	return &device, nil
}

// UpdateDevice applies an admin edit to the device display fields
func (s *DeviceService) UpdateDevice(uuid string, update *models.Device) (*models.Device, error) {
	device, err := s.GetDeviceByUUID(uuid)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		device.Name = update.Name
	}

	if result := db.DB.Save(device); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error updating device")
		return nil, result.Error
	}

	return device, nil
}

// DeleteDevice removes a device, its queued tasks and its static group
// memberships (model BeforeDelete hook)
func (s *DeviceService) DeleteDevice(uuid string) error {
	device, err := s.GetDeviceByUUID(uuid)
	if err != nil {
		return err
	}

	if result := db.DB.Delete(device); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error deleting device")
		return result.Error
	}

	s.log.WithField("uuid", uuid).Info("Device deleted")
	return nil
}

// CheckIn refreshes the device metadata and last-seen timestamp from a
// periodic agent report
func (s *DeviceService) CheckIn(uuid string, checkIn *models.DeviceCheckIn) (*models.Device, error) {
	device, err := s.GetDeviceByUUID(uuid)
	if err != nil {
		return nil, err
	}

	if checkIn.Name != "" {
		device.Name = checkIn.Name
	}
	if checkIn.IPAddress != "" {
		device.IPAddress = checkIn.IPAddress
	}
	if checkIn.OS != "" {
		device.OS = checkIn.OS
	}
	if checkIn.OSVersion != "" {
		device.OSVersion = checkIn.OSVersion
	}
	if checkIn.LastUser != "" {
		device.LastUser = checkIn.LastUser
	}
	device.LastSeenAt = pointy.Pointer(time.Now())

	if result := db.DB.Save(device); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error saving device check-in")
		return nil, result.Error
	}

	return device, nil
}
