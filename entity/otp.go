package entity

import (
	"time"
)

// OTP represents an issued one-time passcode for an email address
type OTP struct {
	Identifier string    `json:"identifier"`
	Code       string    `json:"code"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the code is past its expiry at the given time
func (o OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// SendOTPRequest represents the request to send an OTP
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest represents the request to verify an OTP
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=4,numeric"`
}

// APIResponse is the common response envelope
type APIResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
