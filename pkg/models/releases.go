package models

import (
	"errors"
	"regexp"
)

// ClientRelease is an uploaded agent binary version. StorageKey references
// the object in the update bucket; the record never carries binary bytes.
// At most one release is active at any time, the partial unique index on
// Active enforces that at the database no matter how writers interleave.
type ClientRelease struct {
	Model
	Version    string `json:"Version" gorm:"uniqueIndex;<-:create"`
	StorageKey string `json:"StorageKey" gorm:"<-:create"`
	Sha256     string `json:"Sha256" gorm:"<-:create"`
	ByteSize   int64  `json:"ByteSize" gorm:"<-:create"`
	Notes      string `json:"Notes"`
	Active     bool   `json:"Active" gorm:"default:false;uniqueIndex:idx_client_releases_single_active,where:active"`
}

var validSha256Regex = regexp.MustCompile(`^[0-9a-f]{64}$`)

const (
	// ClientReleaseVersionEmptyErrorMessage is returned when the version is missing
	ClientReleaseVersionEmptyErrorMessage = "release version cannot be empty"
	// ClientReleaseStorageKeyEmptyErrorMessage is returned when the storage key is missing
	ClientReleaseStorageKeyEmptyErrorMessage = "release storage key cannot be empty"
	// ClientReleaseSha256InvalidErrorMessage is returned when the digest is not hex encoded sha256
	ClientReleaseSha256InvalidErrorMessage = "release digest must be a lowercase hex encoded sha256"
	// ClientReleaseByteSizeInvalidErrorMessage is returned when the size is not positive
	ClientReleaseByteSizeInvalidErrorMessage = "release byte size must be greater than zero"
)

// ValidateRequest validates a ClientRelease payload from the API
func (release *ClientRelease) ValidateRequest() error {
	if release.Version == "" {
		return errors.New(ClientReleaseVersionEmptyErrorMessage)
	}
	if release.StorageKey == "" {
		return errors.New(ClientReleaseStorageKeyEmptyErrorMessage)
	}
	if !validSha256Regex.MatchString(release.Sha256) {
		return errors.New(ClientReleaseSha256InvalidErrorMessage)
	}
	if release.ByteSize <= 0 {
		return errors.New(ClientReleaseByteSizeInvalidErrorMessage)
	}
	return nil
}
