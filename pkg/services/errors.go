package services

const DeviceNotFoundErrorMsg = "device was not found"
const DeviceAlreadyEnrolledMsg = "a device with this RustDesk id is already enrolled"
const TokenNotFoundMsg = "enrollment token was not found"
const TokenExpiredMsg = "enrollment token is expired"
const TokenExhaustedMsg = "enrollment token has no uses left"
const TokenRevokedMsg = "enrollment token was revoked"
const TokenExpiryInvalidMsg = "token expiry must be greater than zero seconds"
const TaskNotFoundMsg = "task was not found"
const UnknownTaskKindMsg = "unknown task kind"
const InvalidTaskPayloadMsg = "task payload does not match the task kind"
const InvalidTaskTransitionMsg = "task is not in a state that allows this transition"
const ReleaseNotFoundMsg = "client release was not found"
const ReleaseVersionAlreadyExistsMsg = "client release with this version already exists"
const ReleaseVersionInvalidMsg = "client release version is not a valid semantic version"
const StorageReleaseFailedMsg = "failed to release the stored client binary"
const StorageUploadFailedMsg = "failed to store the client binary"
const DeviceGroupNotFoundMsg = "device group was not found"
const DeviceGroupAlreadyExistsMsg = "device group already exists"
const WrongDeviceGroupKindMsg = "operation requires a static device group"
const InvalidGroupRuleMsg = "group rule expression is invalid"
const DeviceGroupDevicesNotFoundMsg = "devices not found in device group"
const DeviceGroupDevicesNotSuppliedMsg = "devices must be supplied to be added to or removed from device group"

// DeviceNotFoundError indicates the device was not found
type DeviceNotFoundError struct{}

func (e *DeviceNotFoundError) Error() string {
	return DeviceNotFoundErrorMsg
}

// DeviceAlreadyEnrolledError indicates the RustDesk id already belongs to an active device
type DeviceAlreadyEnrolledError struct{}

func (e *DeviceAlreadyEnrolledError) Error() string {
	return DeviceAlreadyEnrolledMsg
}

// TokenNotFoundError indicates no enrollment token matches the presented secret
type TokenNotFoundError struct{}

func (e *TokenNotFoundError) Error() string {
	return TokenNotFoundMsg
}

// TokenExpiredError indicates the enrollment token is past its expiry
type TokenExpiredError struct{}

func (e *TokenExpiredError) Error() string {
	return TokenExpiredMsg
}

// TokenExhaustedError indicates the enrollment token reached its use limit
type TokenExhaustedError struct{}

func (e *TokenExhaustedError) Error() string {
	return TokenExhaustedMsg
}

// TokenRevokedError indicates the enrollment token was revoked by an administrator
type TokenRevokedError struct{}

func (e *TokenRevokedError) Error() string {
	return TokenRevokedMsg
}

// TokenExpiryInvalidError indicates a non-positive token expiry was requested
type TokenExpiryInvalidError struct{}

func (e *TokenExpiryInvalidError) Error() string {
	return TokenExpiryInvalidMsg
}

// TaskNotFoundError indicates the task was not found
type TaskNotFoundError struct{}

func (e *TaskNotFoundError) Error() string {
	return TaskNotFoundMsg
}

// UnknownTaskKindError indicates the task kind is not in the allowed enumeration
type UnknownTaskKindError struct{}

func (e *UnknownTaskKindError) Error() string {
	return UnknownTaskKindMsg
}

// InvalidTaskPayloadError indicates the payload shape does not match the task kind
type InvalidTaskPayloadError struct{}

func (e *InvalidTaskPayloadError) Error() string {
	return InvalidTaskPayloadMsg
}

// InvalidTaskTransitionError indicates the task already left the expected
// status, for agents this is benign and means "already handled"
type InvalidTaskTransitionError struct{}

func (e *InvalidTaskTransitionError) Error() string {
	return InvalidTaskTransitionMsg
}

// ReleaseNotFoundError indicates the client release was not found
type ReleaseNotFoundError struct{}

func (e *ReleaseNotFoundError) Error() string {
	return ReleaseNotFoundMsg
}

// ReleaseVersionAlreadyExistsError indicates the version string collides with an existing release
type ReleaseVersionAlreadyExistsError struct{}

func (e *ReleaseVersionAlreadyExistsError) Error() string {
	return ReleaseVersionAlreadyExistsMsg
}

// ReleaseVersionInvalidError indicates the version string is not valid semver
type ReleaseVersionInvalidError struct{}

func (e *ReleaseVersionInvalidError) Error() string {
	return ReleaseVersionInvalidMsg
}

// StorageReleaseFailedError indicates the stored binary could not be deleted,
// the release record is kept so the delete can be retried
type StorageReleaseFailedError struct{}

func (e *StorageReleaseFailedError) Error() string {
	return StorageReleaseFailedMsg
}

// StorageUploadFailedError indicates the binary could not be written to
// the update bucket, no release record references it yet
type StorageUploadFailedError struct{}

func (e *StorageUploadFailedError) Error() string {
	return StorageUploadFailedMsg
}

// DeviceGroupNotFound indicates the device group was not found
type DeviceGroupNotFound struct{}

func (e *DeviceGroupNotFound) Error() string {
	return DeviceGroupNotFoundMsg
}

// DeviceGroupAlreadyExists indicates that device group already exists
type DeviceGroupAlreadyExists struct{}

func (e *DeviceGroupAlreadyExists) Error() string {
	return DeviceGroupAlreadyExistsMsg
}

// WrongDeviceGroupKind indicates a static membership operation on a dynamic group
type WrongDeviceGroupKind struct{}

func (e *WrongDeviceGroupKind) Error() string {
	return WrongDeviceGroupKindMsg
}

// InvalidGroupRule indicates the rule expression failed to parse
type InvalidGroupRule struct{}

func (e *InvalidGroupRule) Error() string {
	return InvalidGroupRuleMsg
}

// DeviceGroupDevicesNotFound indicates that devices not found in the device group collection
type DeviceGroupDevicesNotFound struct{}

func (e *DeviceGroupDevicesNotFound) Error() string {
	return DeviceGroupDevicesNotFoundMsg
}

// DeviceGroupDevicesNotSupplied indicates that device group devices were not supplied
type DeviceGroupDevicesNotSupplied struct{}

func (e *DeviceGroupDevicesNotSupplied) Error() string {
	return DeviceGroupDevicesNotSuppliedMsg
}
