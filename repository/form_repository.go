package repository

import (
	"fmt"
	"time"

	"github.com/trustkeyper/Backend/entity"

	"github.com/jmoiron/sqlx"
)

// FormRepository interface defines form submission data operations
type FormRepository interface {
	Create(submission *entity.FormSubmission) (*entity.FormSubmission, error)
}

// formRepository implements FormRepository interface
type formRepository struct {
	db *sqlx.DB
}

// NewFormRepository creates a new form repository instance
func NewFormRepository(db *sqlx.DB) FormRepository {
	return &formRepository{
		db: db,
	}
}

// Create inserts one form_responses row with the seven caller-supplied fields
func (r *formRepository) Create(submission *entity.FormSubmission) (*entity.FormSubmission, error) {
	query := `
		INSERT INTO form_responses (name, email, phone_number, address, unit_size, furnishing_status, expected_rent, created_at)
		VALUES (:name, :email, :phone_number, :address, :unit_size, :furnishing_status, :expected_rent, :created_at)
		RETURNING id, name, email, phone_number, address, unit_size, furnishing_status, expected_rent, created_at
	`

	submission.CreatedAt = time.Now()

	rows, err := r.db.NamedQuery(query, submission)
	if err != nil {
		return nil, fmt.Errorf("failed to create form submission: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("failed to get created form submission")
	}

	var created entity.FormSubmission
	if err := rows.StructScan(&created); err != nil {
		return nil, fmt.Errorf("failed to scan created form submission: %w", err)
	}

	return &created, nil
}
