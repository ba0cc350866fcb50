package models

import (
	"time"
)

// Enrollment token statuses. Expired is applied lazily when a token is
// read past its expiry, Revoked only by explicit admin action.
const (
	EnrollmentTokenStatusActive  = "ACTIVE"
	EnrollmentTokenStatusRevoked = "REVOKED"
	EnrollmentTokenStatusExpired = "EXPIRED"
)

// EnrollmentToken is a short-lived bearer credential a new agent exchanges
// once for a device identity. Only the SHA-256 hash of the secret is
// stored; the secret itself is returned to the administrator a single time
// at creation. MaxUses of zero means unbounded.
type EnrollmentToken struct {
	Model
	SecretHash   string    `json:"-" gorm:"uniqueIndex"`
	Status       string    `json:"Status" gorm:"default:ACTIVE;index"`
	ExpiresAt    time.Time `json:"ExpiresAt"`
	MaxUses      uint      `json:"MaxUses"`
	ConsumedUses uint      `json:"ConsumedUses"`
}

// Usable reports whether the token can still be redeemed at the given time
func (token *EnrollmentToken) Usable(now time.Time) bool {
	if token.Status != EnrollmentTokenStatusActive {
		return false
	}
	if !now.Before(token.ExpiresAt) {
		return false
	}
	if token.MaxUses > 0 && token.ConsumedUses >= token.MaxUses {
		return false
	}
	return true
}

// DeviceClaim is the identity an enrolling agent presents with its token
type DeviceClaim struct {
	RustDeskID string `json:"RustDeskID"`
	Name       string `json:"Name"`
	IPAddress  string `json:"IPAddress"`
	OS         string `json:"OS"`
	OSVersion  string `json:"OSVersion"`
	LastUser   string `json:"LastUser"`
}
