package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/fleetdesk/fleet-api/pkg/db"
	"github.com/fleetdesk/fleet-api/pkg/models"

	log "github.com/sirupsen/logrus"
)

// DeviceGroupsServiceInterface defines the interface that helps handle
// the business logic of static and dynamic device groups
type DeviceGroupsServiceInterface interface {
	CreateDeviceGroup(deviceGroup *models.DeviceGroup) (*models.DeviceGroup, error)
	GetDeviceGroups(limit int, offset int, tx *gorm.DB) (*[]models.DeviceGroup, error)
	GetDeviceGroupsCount(tx *gorm.DB) (int64, error)
	GetDeviceGroupByID(groupID uint) (*models.DeviceGroup, error)
	UpdateDeviceGroup(groupID uint, update *models.DeviceGroup) (*models.DeviceGroup, error)
	DeleteDeviceGroupByID(groupID uint) error
	AddDeviceGroupDevices(groupID uint, deviceUUIDs []string) error
	RemoveDeviceGroupDevices(groupID uint, deviceUUIDs []string) error
	ResolveMembers(groupID uint) (*[]models.Device, error)
}

// DeviceGroupsService is the main implementation of a DeviceGroupsServiceInterface
type DeviceGroupsService struct {
	Service
}

// NewDeviceGroupsService returns an instance of the main implementation of a DeviceGroupsServiceInterface
func NewDeviceGroupsService(ctx context.Context, log *log.Entry) DeviceGroupsServiceInterface {
	return &DeviceGroupsService{
		Service: Service{ctx: ctx, log: log.WithField("service", "device-groups")},
	}
}

// CreateDeviceGroup creates a device group. Dynamic group rules are
// parse-validated before anything is persisted.
func (s *DeviceGroupsService) CreateDeviceGroup(deviceGroup *models.DeviceGroup) (*models.DeviceGroup, error) {
	if deviceGroup.Type == models.DeviceGroupTypeDynamic {
		if _, err := ParseGroupRule(deviceGroup.Rule); err != nil {
			s.log.WithField("error", err.Error()).Info("Rejected invalid group rule")
			return nil, new(InvalidGroupRule)
		}
	}

	var existing models.DeviceGroup
	if result := db.DB.Where("name = ?", deviceGroup.Name).First(&existing); result.Error == nil {
		return nil, new(DeviceGroupAlreadyExists)
	}

	group := &models.DeviceGroup{
		Name: deviceGroup.Name,
		Type: deviceGroup.Type,
		Rule: deviceGroup.Rule,
	}
	if result := db.DB.Create(group); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error creating device group")
		return nil, result.Error
	}

	return group, nil
}

// GetDeviceGroupsCount get the device groups records count from the database
func (s *DeviceGroupsService) GetDeviceGroupsCount(tx *gorm.DB) (int64, error) {
	if tx == nil {
		tx = db.DB
	}

	var count int64
	if res := tx.Model(&models.DeviceGroup{}).Count(&count); res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error getting device groups count")
		return 0, res.Error
	}

	return count, nil
}

// GetDeviceGroups get the device groups objects from the database
func (s *DeviceGroupsService) GetDeviceGroups(limit int, offset int, tx *gorm.DB) (*[]models.DeviceGroup, error) {
	if tx == nil {
		tx = db.DB
	}

	var deviceGroups []models.DeviceGroup
	if res := tx.Limit(limit).Offset(offset).Find(&deviceGroups); res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error getting device groups")
		return nil, res.Error
	}

	return &deviceGroups, nil
}

// GetDeviceGroupByID gets the device group by ID from the database
func (s *DeviceGroupsService) GetDeviceGroupByID(groupID uint) (*models.DeviceGroup, error) {
	var deviceGroup models.DeviceGroup
	if result := db.DB.First(&deviceGroup, groupID); result.Error != nil {
		return nil, new(DeviceGroupNotFound)
	}
	return &deviceGroup, nil
}

// UpdateDeviceGroup updates an existing group name, and the rule for
// dynamic groups
func (s *DeviceGroupsService) UpdateDeviceGroup(groupID uint, update *models.DeviceGroup) (*models.DeviceGroup, error) {
	group, err := s.GetDeviceGroupByID(groupID)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		group.Name = update.Name
	}
	if group.Type == models.DeviceGroupTypeDynamic && update.Rule != "" {
		if _, err := ParseGroupRule(update.Rule); err != nil {
			return nil, new(InvalidGroupRule)
		}
		group.Rule = update.Rule
	}

	if result := db.DB.Save(group); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error updating device group")
		return nil, result.Error
	}

	return group, nil
}

// DeleteDeviceGroupByID deletes an existing device group, membership rows
// are cleared by the model hook and devices themselves are untouched
func (s *DeviceGroupsService) DeleteDeviceGroupByID(groupID uint) error {
	group, err := s.GetDeviceGroupByID(groupID)
	if err != nil {
		return err
	}

	if result := db.DB.Delete(group); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error deleting device group")
		return result.Error
	}

	return nil
}

// AddDeviceGroupDevices adds devices to a static group. Devices already in
// the group are skipped, the operation is idempotent.
func (s *DeviceGroupsService) AddDeviceGroupDevices(groupID uint, deviceUUIDs []string) error {
	group, devices, err := s.staticGroupAndDevices(groupID, deviceUUIDs)
	if err != nil {
		return err
	}

	if err := db.DB.Model(group).Association("Devices").Append(devices); err != nil {
		s.log.WithField("error", err.Error()).Error("Error adding devices to device group")
		return err
	}

	s.log.WithFields(log.Fields{"groupID": groupID, "devices": len(devices)}).Info("Devices added to device group")
	return nil
}

// RemoveDeviceGroupDevices removes devices from a static group. Removing
// a device that is not a member is a no-op.
func (s *DeviceGroupsService) RemoveDeviceGroupDevices(groupID uint, deviceUUIDs []string) error {
	group, devices, err := s.staticGroupAndDevices(groupID, deviceUUIDs)
	if err != nil {
		return err
	}

	if err := db.DB.Model(group).Association("Devices").Delete(devices); err != nil {
		s.log.WithField("error", err.Error()).Error("Error removing devices from device group")
		return err
	}

	return nil
}

// ResolveMembers returns the group's member devices. Static membership
// comes from the stored association, dangling references are dropped by
// the join. Dynamic membership is re-evaluated against the device
// registry on every call, it is never cached.
func (s *DeviceGroupsService) ResolveMembers(groupID uint) (*[]models.Device, error) {
	group, err := s.GetDeviceGroupByID(groupID)
	if err != nil {
		return nil, err
	}

	if group.Type == models.DeviceGroupTypeStatic {
		var members []models.Device
		if err := db.DB.Model(group).Association("Devices").Find(&members); err != nil {
			s.log.WithField("error", err.Error()).Error("Error resolving static group members")
			return nil, err
		}
		return &members, nil
	}

	rule, err := ParseGroupRule(group.Rule)
	if err != nil {
		s.log.WithFields(log.Fields{"error": err.Error(), "groupID": groupID}).Error("Stored group rule no longer parses")
		return nil, new(InvalidGroupRule)
	}

	var devices []models.Device
	if res := db.DB.Find(&devices); res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error loading devices for rule evaluation")
		return nil, res.Error
	}

	members := make([]models.Device, 0, len(devices))
	for i := range devices {
		if rule.Matches(&devices[i]) {
			members = append(members, devices[i])
		}
	}
	return &members, nil
}

func (s *DeviceGroupsService) staticGroupAndDevices(groupID uint, deviceUUIDs []string) (*models.DeviceGroup, []models.Device, error) {
	if len(deviceUUIDs) == 0 {
		return nil, nil, new(DeviceGroupDevicesNotSupplied)
	}

	group, err := s.GetDeviceGroupByID(groupID)
	if err != nil {
		return nil, nil, err
	}
	if group.Type != models.DeviceGroupTypeStatic {
		return nil, nil, new(WrongDeviceGroupKind)
	}

	var devices []models.Device
	if res := db.DB.Where("uuid IN ?", deviceUUIDs).Find(&devices); res.Error != nil {
		return nil, nil, res.Error
	}
	if len(devices) != len(deviceUUIDs) {
		return nil, nil, new(DeviceGroupDevicesNotFound)
	}

	return group, devices, nil
}
