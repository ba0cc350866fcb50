package services

import (
	"io"
	"time"

	"github.com/fleetdesk/fleet-api/config"
	"github.com/fleetdesk/fleet-api/pkg/services/files"

	log "github.com/sirupsen/logrus"
)

// FilesService is the storage collaborator holding client update binaries.
// Release records only ever reference objects by key; bytes stream
// through UploadFile straight into the bucket.
type FilesService interface {
	UploadFile(file io.Reader, key string) error
	GetSignedURL(key string, expire time.Duration) (string, error)
	DeleteObject(key string) error
}

// S3FilesService is the S3 implementation of FilesService
type S3FilesService struct {
	Client files.S3ClientInterface
	Bucket string
	log    *log.Entry
}

// NewFilesService returns a FilesService backed by the configured bucket
func NewFilesService(log *log.Entry) FilesService {
	cfg := config.Get()
	return &S3FilesService{
		Client: files.GetNewS3Client(),
		Bucket: cfg.BucketName,
		log:    log.WithField("service", "files"),
	}
}

// UploadFile streams a binary into the bucket under the given key
func (s *S3FilesService) UploadFile(file io.Reader, key string) error {
	if _, err := s.Client.Upload(file, s.Bucket, key, "private"); err != nil {
		s.log.WithFields(log.Fields{"error": err.Error(), "key": key}).Error("Error uploading binary")
		return err
	}
	return nil
}

// GetSignedURL returns a time-boxed download URL for a stored binary
func (s *S3FilesService) GetSignedURL(key string, expire time.Duration) (string, error) {
	return s.Client.GetSignedURL(s.Bucket, key, expire)
}

// DeleteObject removes a stored binary
func (s *S3FilesService) DeleteObject(key string) error {
	if _, err := s.Client.DeleteObject(s.Bucket, key); err != nil {
		s.log.WithFields(log.Fields{"error": err.Error(), "key": key}).Error("Error deleting stored binary")
		return err
	}
	return nil
}
