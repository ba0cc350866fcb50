package models

import (
	"errors"
	"regexp"

	"gorm.io/gorm"
)

// DeviceGroup is a named collection of devices. Static groups carry an
// explicit membership list; dynamic groups carry a rule expression that is
// evaluated against the device registry on read, never cached.
type DeviceGroup struct {
	Model
	Name    string   `json:"Name" gorm:"uniqueIndex"`
	Type    string   `json:"Type" gorm:"default:static;<-:create"`
	Rule    string   `json:"Rule"`
	Devices []Device `json:"Devices" gorm:"many2many:device_groups_devices;"`
}

var validGroupNameRegex = regexp.MustCompile(`^[A-Za-z0-9]+[A-Za-z0-9\s_-]*$`)

const (
	// DeviceGroupNameInvalidErrorMessage is the error message returned when device group name is invalid.
	DeviceGroupNameInvalidErrorMessage = "group name must start with alphanumeric characters and can contain underscore and hyphen characters"
	// DeviceGroupNameEmptyErrorMessage is the error message returned when device group Name is empty.
	DeviceGroupNameEmptyErrorMessage = "group name cannot be empty"
	// DeviceGroupTypeStatic correspond to the device group type value "static".
	DeviceGroupTypeStatic = "static"
	// DeviceGroupTypeDynamic correspond to the device group type value "dynamic".
	DeviceGroupTypeDynamic = "dynamic"
	// DeviceGroupTypeDefault correspond to the default device group type value.
	DeviceGroupTypeDefault = DeviceGroupTypeStatic
	// DeviceGroupTypeInvalidErrorMessage is the error message returned when device group type is invalid
	DeviceGroupTypeInvalidErrorMessage = "group type must be \"static\" or \"dynamic\""
	// DeviceGroupRuleRequiredErrorMessage is the error message returned when a dynamic group has no rule
	DeviceGroupRuleRequiredErrorMessage = "dynamic group requires a rule expression"
	// DeviceGroupRuleNotAllowedErrorMessage is the error message returned when a static group carries a rule
	DeviceGroupRuleNotAllowedErrorMessage = "static group cannot carry a rule expression"
)

// ValidateRequest validates the DeviceGroup request
func (group *DeviceGroup) ValidateRequest() error {
	if group.Name == "" {
		return errors.New(DeviceGroupNameEmptyErrorMessage)
	}
	if !validGroupNameRegex.MatchString(group.Name) {
		return errors.New(DeviceGroupNameInvalidErrorMessage)
	}
	if group.Type != DeviceGroupTypeStatic && group.Type != DeviceGroupTypeDynamic {
		return errors.New(DeviceGroupTypeInvalidErrorMessage)
	}
	if group.Type == DeviceGroupTypeDynamic && group.Rule == "" {
		return errors.New(DeviceGroupRuleRequiredErrorMessage)
	}
	if group.Type == DeviceGroupTypeStatic && group.Rule != "" {
		return errors.New(DeviceGroupRuleNotAllowedErrorMessage)
	}
	return nil
}

// BeforeDelete clears the group's membership rows, devices themselves are untouched
func (group *DeviceGroup) BeforeDelete(tx *gorm.DB) error {
	return tx.Exec("DELETE FROM device_groups_devices WHERE device_group_id = ?", group.ID).Error
}
