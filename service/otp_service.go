package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/trustkeyper/Backend/config"
	"github.com/trustkeyper/Backend/pkg/logger"
	"github.com/trustkeyper/Backend/repository"
)

// ErrInvalidOTP covers absent, mismatched and expired codes alike; callers
// must not learn which case occurred.
var ErrInvalidOTP = errors.New("invalid or expired OTP")

// OTPService interface defines OTP business operations
type OTPService interface {
	SendOTP(email string) error
	VerifyOTP(email, code string) error
	CleanupExpiredOTPs() error
}

// otpService implements OTPService interface
type otpService struct {
	store  repository.OTPStore
	mailer Mailer
	cfg    *config.Config
	logger *logger.Logger
}

// NewOTPService creates a new OTP service instance
func NewOTPService(store repository.OTPStore, mailer Mailer, cfg *config.Config, logger *logger.Logger) OTPService {
	return &otpService{
		store:  store,
		mailer: mailer,
		cfg:    cfg,
		logger: logger,
	}
}

// SendOTP issues a 4-digit code for the email address and dispatches it.
// A re-issue overwrites any prior unconsumed code for the same address.
// If dispatch fails the stored code is revoked, so a failed send never
// leaves a verifiable code behind.
func (s *otpService) SendOTP(email string) error {
	code, err := s.generateOTPCode()
	if err != nil {
		s.logger.Errorw("Failed to generate OTP code", "error", err)
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.OTP.ExpirationTime)
	if err := s.store.Issue(email, code, expiresAt); err != nil {
		s.logger.Errorw("Failed to store OTP", "email", email, "error", err)
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	body := fmt.Sprintf("Your OTP is %s. It is valid for 5 minutes.", code)
	if err := s.mailer.Send(email, "Your OTP Code", body); err != nil {
		s.logger.Errorw("Failed to send OTP email", "email", email, "error", err)
		if revokeErr := s.store.Revoke(email); revokeErr != nil {
			s.logger.Errorw("Failed to revoke undelivered OTP", "email", email, "error", revokeErr)
		}
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	s.logger.Infow("OTP sent", "email", email, "expires_at", expiresAt)
	return nil
}

// VerifyOTP checks the candidate code; a successful verification consumes
// the code (single-use)
func (s *otpService) VerifyOTP(email, code string) error {
	ok, err := s.store.Verify(email, code)
	if err != nil {
		s.logger.Errorw("Failed to verify OTP", "email", email, "error", err)
		return fmt.Errorf("failed to verify OTP: %w", err)
	}

	if !ok {
		s.logger.Warnw("Invalid or expired OTP", "email", email)
		return ErrInvalidOTP
	}

	s.logger.Infow("OTP verified", "email", email)
	return nil
}

// CleanupExpiredOTPs evicts expired codes from the store
func (s *otpService) CleanupExpiredOTPs() error {
	if err := s.store.DeleteExpired(); err != nil {
		s.logger.Errorw("Failed to delete expired OTPs", "error", err)
		return fmt.Errorf("failed to delete expired OTPs: %w", err)
	}
	return nil
}

// generateOTPCode generates a uniform random code in 1000..9999
func (s *otpService) generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
