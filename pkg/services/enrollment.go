package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"github.com/fleetdesk/fleet-api/config"
	kafkacommon "github.com/fleetdesk/fleet-api/pkg/common/kafka"
	"github.com/fleetdesk/fleet-api/pkg/db"
	"github.com/fleetdesk/fleet-api/pkg/metrics"
	"github.com/fleetdesk/fleet-api/pkg/models"

	log "github.com/sirupsen/logrus"
)

// EnrollmentServiceInterface defines the interface that helps handle
// the business logic of issuing and redeeming enrollment tokens
type EnrollmentServiceInterface interface {
	IssueToken(expiresInSeconds int64, maxUses uint) (*models.EnrollmentToken, string, error)
	RedeemToken(secret string, claim *models.DeviceClaim) (*models.Device, string, error)
	RevokeToken(tokenID uint) error
	GetTokens(limit int, offset int, tx *gorm.DB) (*[]models.EnrollmentToken, error)
	GetTokensCount(tx *gorm.DB) (int64, error)
}

// EnrollmentService is the main implementation of an EnrollmentServiceInterface
type EnrollmentService struct {
	Service
	Producer kafkacommon.ProducerServiceInterface
}

// NewEnrollmentService returns an instance of the main implementation of an EnrollmentServiceInterface
func NewEnrollmentService(ctx context.Context, log *log.Entry) EnrollmentServiceInterface {
	return &EnrollmentService{
		Service:  Service{ctx: ctx, log: log.WithField("service", "enrollment")},
		Producer: kafkacommon.NewProducerService(),
	}
}

// HashTokenSecret returns the hex encoded SHA-256 digest under which a
// token secret is persisted and looked up
func HashTokenSecret(secret string) string {
	digest := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(digest[:])
}

// IssueToken creates an ACTIVE enrollment token and returns it together
// with the plaintext secret. The secret is not recoverable afterwards.
func (s *EnrollmentService) IssueToken(expiresInSeconds int64, maxUses uint) (*models.EnrollmentToken, string, error) {
	if expiresInSeconds <= 0 {
		return nil, "", new(TokenExpiryInvalidError)
	}

	secret := uuid.NewString()
	token := &models.EnrollmentToken{
		SecretHash: HashTokenSecret(secret),
		Status:     models.EnrollmentTokenStatusActive,
		ExpiresAt:  time.Now().Add(time.Duration(expiresInSeconds) * time.Second),
		MaxUses:    maxUses,
	}

	if result := db.DB.Create(token); result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error creating enrollment token")
		return nil, "", result.Error
	}

	metrics.TokensIssuedCount.Inc()
	s.log.WithFields(log.Fields{"tokenID": token.ID, "maxUses": maxUses}).Info("Enrollment token issued")
	return token, secret, nil
}

// RedeemToken exchanges a token secret for a device identity and a signed
// agent credential. The use-count increment is a conditional update, so
// concurrent redemptions of a single-use token produce exactly one winner.
func (s *EnrollmentService) RedeemToken(secret string, claim *models.DeviceClaim) (*models.Device, string, error) {
	secretHash := HashTokenSecret(secret)

	// looking tokens up by digest keeps the lookup time independent of
	// how many secret bytes matched
	var token models.EnrollmentToken
	if result := db.DB.Where("secret_hash = ?", secretHash).First(&token); result.Error != nil {
		metrics.TokensRedeemedCount.WithLabelValues("not_found").Inc()
		return nil, "", new(TokenNotFoundError)
	}

	if token.Status == models.EnrollmentTokenStatusRevoked {
		metrics.TokensRedeemedCount.WithLabelValues("revoked").Inc()
		return nil, "", new(TokenRevokedError)
	}
	if !time.Now().Before(token.ExpiresAt) {
		s.expireToken(&token)
		metrics.TokensRedeemedCount.WithLabelValues("expired").Inc()
		return nil, "", new(TokenExpiredError)
	}
	if token.Status != models.EnrollmentTokenStatusActive {
		return nil, "", new(TokenExpiredError)
	}

	var device *models.Device
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		claimed := tx.Model(&models.EnrollmentToken{}).
			Where("id = ? AND status = ?", token.ID, models.EnrollmentTokenStatusActive).
			Where("max_uses = 0 OR consumed_uses < max_uses").
			Update("consumed_uses", gorm.Expr("consumed_uses + 1"))
		if claimed.Error != nil {
			return claimed.Error
		}
		if claimed.RowsAffected == 0 {
			return new(TokenExhaustedError)
		}

		var innerErr error
		device, innerErr = upsertDeviceFromClaim(tx, claim)
		return innerErr
	})
	if err != nil {
		if _, exhausted := err.(*TokenExhaustedError); exhausted {
			metrics.TokensRedeemedCount.WithLabelValues("exhausted").Inc()
		}
		return nil, "", err
	}

	metrics.TokensRedeemedCount.WithLabelValues("redeemed").Inc()
	credential, err := s.issueAgentCredential(device)
	if err != nil {
		s.log.WithField("error", err.Error()).Error("Error signing agent credential")
		return nil, "", err
	}

	event := kafkacommon.CreateFleetEvent(metrics.ApplicationName, kafkacommon.EventTypeDeviceEnrolled, device.UUID, device)
	if err := s.Producer.ProduceEvent(kafkacommon.TopicDeviceLifecycle, device.UUID, event); err != nil {
		s.log.WithField("error", err.Error()).Error("Error producing device enrolled event")
	}
	s.log.WithFields(log.Fields{"tokenID": token.ID, "deviceUUID": device.UUID}).Info("Enrollment token redeemed")
	return device, credential, nil
}

// RevokeToken marks a token REVOKED. Revoking an already revoked or
// expired token is a no-op.
func (s *EnrollmentService) RevokeToken(tokenID uint) error {
	var token models.EnrollmentToken
	if result := db.DB.First(&token, tokenID); result.Error != nil {
		return new(TokenNotFoundError)
	}

	result := db.DB.Model(&token).Update("status", models.EnrollmentTokenStatusRevoked)
	if result.Error != nil {
		s.log.WithField("error", result.Error.Error()).Error("Error revoking enrollment token")
		return result.Error
	}

	return nil
}

// GetTokensCount gets the enrollment token records count from the database
func (s *EnrollmentService) GetTokensCount(tx *gorm.DB) (int64, error) {
	if tx == nil {
		tx = db.DB
	}

	var count int64
	if res := tx.Model(&models.EnrollmentToken{}).Count(&count); res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error getting enrollment tokens count")
		return 0, res.Error
	}

	return count, nil
}

// GetTokens gets the enrollment token objects from the database, flipping
// tokens past expiry to EXPIRED on the way out (lazy transition)
func (s *EnrollmentService) GetTokens(limit int, offset int, tx *gorm.DB) (*[]models.EnrollmentToken, error) {
	if tx == nil {
		tx = db.DB
	}

	res := db.DB.Model(&models.EnrollmentToken{}).
		Where("status = ? AND expires_at <= ?", models.EnrollmentTokenStatusActive, time.Now()).
		Update("status", models.EnrollmentTokenStatusExpired)
	if res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error expiring enrollment tokens")
		return nil, res.Error
	}

	var tokens []models.EnrollmentToken
	if res := tx.Limit(limit).Offset(offset).Order("created_at DESC").Find(&tokens); res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error getting enrollment tokens")
		return nil, res.Error
	}

	return &tokens, nil
}

func (s *EnrollmentService) expireToken(token *models.EnrollmentToken) {
	res := db.DB.Model(token).
		Where("status = ?", models.EnrollmentTokenStatusActive).
		Update("status", models.EnrollmentTokenStatusExpired)
	if res.Error != nil {
		s.log.WithField("error", res.Error.Error()).Error("Error expiring enrollment token")
	}
}

func upsertDeviceFromClaim(tx *gorm.DB, claim *models.DeviceClaim) (*models.Device, error) {
	now := pointy.Pointer(time.Now())
	var device models.Device
	result := tx.Where("rust_desk_id = ?", claim.RustDeskID).First(&device)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			return nil, result.Error
		}
		device = models.Device{
			UUID:       uuid.NewString(),
			RustDeskID: claim.RustDeskID,
			Name:       claim.Name,
			IPAddress:  claim.IPAddress,
			OS:         claim.OS,
			OSVersion:  claim.OSVersion,
			LastUser:   claim.LastUser,
			LastSeenAt: now,
		}
		if result := tx.Create(&device); result.Error != nil {
			return nil, result.Error
		}
		return &device, nil
	}

	device.Name = claim.Name
	device.IPAddress = claim.IPAddress
	device.OS = claim.OS
	device.OSVersion = claim.OSVersion
	device.LastUser = claim.LastUser
	device.LastSeenAt = now
	if result := tx.Save(&device); result.Error != nil {
		return nil, result.Error
	}
	return &device, nil
}

func (s *EnrollmentService) issueAgentCredential(device *models.Device) (string, error) {
	cfg := config.Get()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   device.UUID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AgentTokenTTL)),
		Issuer:    "fleet-api",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.AgentTokenSecret))
}

// ParseAgentCredential verifies a signed agent credential and returns the
// device UUID it is bound to
func ParseAgentCredential(credential string) (string, error) {
	cfg := config.Get()
	token, err := jwt.ParseWithClaims(credential, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.AgentTokenSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	claims := token.Claims.(*jwt.RegisteredClaims)
	return claims.Subject, nil
}
