package service

import (
	"fmt"

	"github.com/trustkeyper/Backend/config"
	"github.com/trustkeyper/Backend/pkg/logger"

	"gopkg.in/gomail.v2"
)

// Mailer interface defines email dispatch
type Mailer interface {
	Send(to, subject, body string) error
}

// smtpMailer implements Mailer over an SMTP transport
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *logger.Logger
}

// NewSMTPMailer creates a gomail-backed mailer from the SMTP configuration
func NewSMTPMailer(cfg *config.Config, logger *logger.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password),
		from:   cfg.SMTP.User,
		logger: logger,
	}
}

// Send dispatches a plain-text email. Transport errors are returned to the
// caller unretried.
func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	m.logger.Debugw("Email sent", "to", to, "subject", subject)
	return nil
}
