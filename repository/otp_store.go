package repository

import (
	"time"
)

// OTPStore interface defines storage operations for issued OTP codes.
// At most one active record exists per identifier; Issue overwrites any
// prior record and Verify consumes the record on success.
type OTPStore interface {
	Issue(identifier, code string, expiresAt time.Time) error
	Verify(identifier, code string) (bool, error)
	Revoke(identifier string) error
	DeleteExpired() error
}
