package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Device is a record of a managed remote-desktop computer. UUID is the
// opaque identity used throughout the API; RustDeskID is the numeric id
// the RustDesk client reports and is unique among active devices.
type Device struct {
	Model
	UUID       string     `json:"UUID" gorm:"index;<-:create"`
	RustDeskID string     `json:"RustDeskID" gorm:"uniqueIndex:idx_devices_rustdesk_id,where:deleted_at IS NULL"`
	Name       string     `json:"Name" gorm:"index"`
	IPAddress  string     `json:"IPAddress"`
	OS         string     `json:"OS" gorm:"index"`
	OSVersion  string     `json:"OSVersion"`
	LastUser   string     `json:"LastUser"`
	LastSeenAt *time.Time `json:"LastSeenAt"`
}

const (
	// DeviceRustDeskIDEmptyErrorMessage is returned when the RustDesk id is missing
	DeviceRustDeskIDEmptyErrorMessage = "device RustDesk id cannot be empty"
	// DeviceNameEmptyErrorMessage is returned when the device name is missing
	DeviceNameEmptyErrorMessage = "device name cannot be empty"
)

// ValidateRequest validates a Device payload from the API
func (device *Device) ValidateRequest() error {
	if device.RustDeskID == "" {
		return errors.New(DeviceRustDeskIDEmptyErrorMessage)
	}
	if device.Name == "" {
		return errors.New(DeviceNameEmptyErrorMessage)
	}
	return nil
}

// BeforeDelete removes the device queued tasks, the device group
// memberships only reference the device and are cleared by association
func (device *Device) BeforeDelete(tx *gorm.DB) error {
	if err := tx.Unscoped().Where("device_id = ?", device.ID).Delete(&Task{}).Error; err != nil {
		return err
	}
	return tx.Exec("DELETE FROM device_groups_devices WHERE device_id = ?", device.ID).Error
}

// DeviceCheckIn is the periodic agent report refreshing device metadata
type DeviceCheckIn struct {
	Name      string `json:"Name"`
	IPAddress string `json:"IPAddress"`
	OS        string `json:"OS"`
	OSVersion string `json:"OSVersion"`
	LastUser  string `json:"LastUser"`
}
