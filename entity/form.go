package entity

import (
	"time"
)

// FormSubmission represents one recorded form response
type FormSubmission struct {
	ID               int       `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Email            string    `db:"email" json:"email"`
	PhoneNumber      string    `db:"phone_number" json:"phone_number"`
	Address          string    `db:"address" json:"address"`
	UnitSize         string    `db:"unit_size" json:"unit_size"`
	FurnishingStatus string    `db:"furnishing_status" json:"furnishing_status"`
	ExpectedRent     string    `db:"expected_rent" json:"expected_rent"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// TableName returns the table name for the FormSubmission entity
func (FormSubmission) TableName() string {
	return "form_responses"
}

// SubmitFormRequest represents the request to submit a form
type SubmitFormRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	Address          string `json:"address" validate:"required"`
	UnitSize         string `json:"unitSize" validate:"required"`
	FurnishingStatus string `json:"furnishingStatus" validate:"required"`
	ExpectedRent     string `json:"expectedRent" validate:"required"`
}

// Submission builds the persistable record from the request fields
func (r SubmitFormRequest) Submission() *FormSubmission {
	return &FormSubmission{
		Name:             r.Name,
		Email:            r.Email,
		PhoneNumber:      r.Phone,
		Address:          r.Address,
		UnitSize:         r.UnitSize,
		FurnishingStatus: r.FurnishingStatus,
		ExpectedRent:     r.ExpectedRent,
	}
}
