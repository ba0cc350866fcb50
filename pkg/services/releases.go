package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetdesk/fleet-api/config"
	"github.com/fleetdesk/fleet-api/pkg/cache"
	"github.com/fleetdesk/fleet-api/pkg/db"
	"github.com/fleetdesk/fleet-api/pkg/models"

	log "github.com/sirupsen/logrus"
)

// signedURLCache keeps presigned download URLs per storage key, so a busy
// agent fleet polling for updates does not presign on every request. Entries
// live for half the presign TTL, a served URL stays valid for its holder.
var signedURLCache = cache.NewMemoryCache[string, string](10 * time.Minute)

// ClientReleaseServiceInterface defines the interface that helps handle
// the business logic of the client release registry
type ClientReleaseServiceInterface interface {
	UploadReleaseBinary(filename string, file io.Reader) (string, error)
	CreateRelease(release *models.ClientRelease) (*models.ClientRelease, error)
	GetReleases(limit int, offset int, tx *gorm.DB) (*[]models.ClientRelease, error)
	GetReleasesCount(tx *gorm.DB) (int64, error)
	GetReleaseByID(releaseID uint) (*models.ClientRelease, error)
	Activate(releaseID uint) (*models.ClientRelease, error)
	Deactivate(releaseID uint) error
	DeleteRelease(releaseID uint) error
	GetActive() (*models.ClientRelease, string, error)
}

// ClientReleaseService is the main implementation of a ClientReleaseServiceInterface
type ClientReleaseService struct {
	Service
	FilesService FilesService
}

// NewClientReleaseService returns an instance of the main implementation of a ClientReleaseServiceInterface
func NewClientReleaseService(ctx context.Context, log *log.Entry) ClientReleaseServiceInterface {
	return &ClientReleaseService{
		Service:      Service{ctx: ctx, log: log.WithField("service", "releases")},
		FilesService: NewFilesService(log),
	}
}

// UploadReleaseBinary streams a client binary into the update bucket and
// returns the storage key a release record can be created against. The
// key carries a random segment so re-uploads never overwrite each other.
func (s *ClientReleaseService) UploadReleaseBinary(filename string, file io.Reader) (string, error) {
	key := fmt.Sprintf("releases/%s/%s", uuid.NewString(), filename)
	if err := s.FilesService.UploadFile(file, key); err != nil {
		s.log.WithFields(log.Fields{"error": err.Error(), "key": key}).Error("Error storing client binary")
		return "", new(StorageUploadFailedError)
	}

	s.log.WithField("key", key).Info("Client binary stored")
	return key, nil
}

// CreateRelease records an uploaded client binary version, inactive by default
func (s *ClientReleaseService) CreateRelease(release *models.ClientRelease) (*models.ClientRelease, error) {
	if _, err := semver.NewVersion(release.Version); err != nil {
		return nil, new(ReleaseVersionInvalidError)
	}

	var existing models.ClientRelease
	if result := db.DB.Where("version = ?", release.Version).First(&existing); result.Error == nil {
		return nil, new(ReleaseVersionAlreadyExistsError)
	}

	created := &models.ClientRelease{
		Version:    release.Version,
		StorageKey: release.StorageKey,
		Sha256:     release.Sha256,
		ByteSize:   release.ByteSize,
		Notes:      release.Notes,
		Active:     false,
	}
	if result := db.DB.Create(created); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error creating client release")
		return nil, result.Error
	}

	s.log.WithFields(log.Fields{"releaseID": created.ID, "version": created.Version}).Info("Client release created")
	return created, nil
}

// GetReleasesCount gets the client release records count from the database
func (s *ClientReleaseService) GetReleasesCount(tx *gorm.DB) (int64, error) {
	if tx == nil {
		tx = db.DB
	}

	var count int64
	if res := tx.Model(&models.ClientRelease{}).Count(&count); res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error getting client releases count")
		return 0, res.Error
	}

	return count, nil
}

// GetReleases gets the client release objects from the database
func (s *ClientReleaseService) GetReleases(limit int, offset int, tx *gorm.DB) (*[]models.ClientRelease, error) {
	if tx == nil {
		tx = db.DB
	}

	var releases []models.ClientRelease
	if res := tx.Limit(limit).Offset(offset).Order("created_at DESC").Find(&releases); res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error getting client releases")
		return nil, res.Error
	}

	return &releases, nil
}

// GetReleaseByID gets a client release by ID from the database
func (s *ClientReleaseService) GetReleaseByID(releaseID uint) (*models.ClientRelease, error) {
	var release models.ClientRelease
	if result := db.DB.First(&release, releaseID); result.Error != nil {
		return nil, new(ReleaseNotFoundError)
	}
	return &release, nil
}

// Activate makes the target the single active release. Clearing the
// previous active release and setting the target happen in one
// transaction, a concurrent reader never observes two active releases.
func (s *ClientReleaseService) Activate(releaseID uint) (*models.ClientRelease, error) {
	var release models.ClientRelease
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if result := tx.First(&release, releaseID); result.Error != nil {
			return new(ReleaseNotFoundError)
		}
		if result := tx.Model(&models.ClientRelease{}).
			Where("active = ? AND id != ?", true, releaseID).
			Update("active", false); result.Error != nil {
			return result.Error
		}
		if result := tx.Model(&release).Update("active", true); result.Error != nil {
			return result.Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(log.Fields{"releaseID": releaseID, "version": release.Version}).Info("Client release activated")
	return &release, nil
}

// Deactivate clears the active flag, a no-op when already inactive
func (s *ClientReleaseService) Deactivate(releaseID uint) error {
	release, err := s.GetReleaseByID(releaseID)
	if err != nil {
		return err
	}

	if result := db.DB.Model(release).Update("active", false); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error deactivating client release")
		return result.Error
	}

	return nil
}

// DeleteRelease removes a release. The stored binary is released first,
// and the record is kept if that fails, so the delete can be retried
// without orphaning a live object.
func (s *ClientReleaseService) DeleteRelease(releaseID uint) error {
	release, err := s.GetReleaseByID(releaseID)
	if err != nil {
		return err
	}

	if err := s.FilesService.DeleteObject(release.StorageKey); err != nil {
		s.log.WithFields(log.Fields{"error": err.Error(), "releaseID": releaseID}).Error("Error releasing stored binary")
		return new(StorageReleaseFailedError)
	}

	if result := db.DB.Unscoped().Delete(release); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error deleting client release")
		return result.Error
	}

	s.log.WithFields(log.Fields{"releaseID": releaseID, "version": release.Version}).Info("Client release deleted")
	return nil
}

// GetActive returns the active release with a presigned download URL, or
// nil when no release is active
func (s *ClientReleaseService) GetActive() (*models.ClientRelease, string, error) {
	var release models.ClientRelease
	result := db.DB.Where("active = ?", true).First(&release)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, "", nil
		}
		return nil, "", result.Error
	}

	if url, ok := signedURLCache.Get(release.StorageKey); ok {
		return &release, url, nil
	}

	ttl := config.Get().DownloadURLTTL
	url, err := s.FilesService.GetSignedURL(release.StorageKey, ttl)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("Error presigning download URL")
		return nil, "", err
	}

	signedURLCache.Set(release.StorageKey, url, ttl/2)
	return &release, url, nil
}
