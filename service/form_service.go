package service

import (
	"fmt"

	"github.com/trustkeyper/Backend/config"
	"github.com/trustkeyper/Backend/entity"
	"github.com/trustkeyper/Backend/pkg/logger"
	"github.com/trustkeyper/Backend/repository"
)

// FormService interface defines form submission business operations
type FormService interface {
	Submit(req *entity.SubmitFormRequest) (*SubmitResult, error)
}

// SubmitResult reports a persisted submission along with any notification
// steps that failed after the row was written.
type SubmitResult struct {
	Submission *entity.FormSubmission
	Warnings   []string
}

// formService implements FormService interface
type formService struct {
	formRepo repository.FormRepository
	mailer   Mailer
	cfg      *config.Config
	logger   *logger.Logger
}

// NewFormService creates a new form service instance
func NewFormService(formRepo repository.FormRepository, mailer Mailer, cfg *config.Config, logger *logger.Logger) FormService {
	return &formService{
		formRepo: formRepo,
		mailer:   mailer,
		cfg:      cfg,
		logger:   logger,
	}
}

// Submit persists the form row first, then attempts the submitter and admin
// notifications independently. A notification failure never reverts the
// persisted row; it is recorded as a warning instead. Only a persistence
// failure is returned as an error.
func (s *formService) Submit(req *entity.SubmitFormRequest) (*SubmitResult, error) {
	created, err := s.formRepo.Create(req.Submission())
	if err != nil {
		s.logger.Errorw("Failed to persist form submission", "email", req.Email, "error", err)
		return nil, fmt.Errorf("failed to persist form submission: %w", err)
	}

	result := &SubmitResult{Submission: created}

	confirmation := "Thank you for submitting the form. We will contact you soon."
	if err := s.mailer.Send(req.Email, "Form Submitted", confirmation); err != nil {
		s.logger.Errorw("Failed to send confirmation email", "email", req.Email, "submission_id", created.ID, "error", err)
		result.Warnings = append(result.Warnings, "confirmation email could not be sent")
	}

	if err := s.mailer.Send(s.cfg.AdminEmail, "New TrustKeyper Form Submission", s.adminSummary(req)); err != nil {
		s.logger.Errorw("Failed to send admin notification", "admin", s.cfg.AdminEmail, "submission_id", created.ID, "error", err)
		result.Warnings = append(result.Warnings, "admin notification could not be sent")
	}

	s.logger.Infow("Form submission recorded",
		"submission_id", created.ID,
		"email", req.Email,
		"warnings", len(result.Warnings),
	)

	return result, nil
}

// adminSummary formats the submission for the admin notification email
func (s *formService) adminSummary(req *entity.SubmitFormRequest) string {
	return fmt.Sprintf(`New form submission received:

Name: %s
Email: %s
Phone: %s
Address: %s
Unit Size: %s
Furnishing Status: %s
Expected Rent: %s
`,
		req.Name,
		req.Email,
		req.Phone,
		req.Address,
		req.UnitSize,
		req.FurnishingStatus,
		req.ExpectedRent,
	)
}
