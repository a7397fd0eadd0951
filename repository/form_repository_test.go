package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/trustkeyper/Backend/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func sampleSubmission() *entity.FormSubmission {
	return &entity.FormSubmission{
		Name:             "Asha Rao",
		Email:            "asha@example.com",
		PhoneNumber:      "+919812345678",
		Address:          "12 MG Road, Bengaluru",
		UnitSize:         "2BHK",
		FurnishingStatus: "semi-furnished",
		ExpectedRent:     "32000",
	}
}

func TestFormRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFormRepository(db)

	sub := sampleSubmission()
	createdAt := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "phone_number", "address", "unit_size", "furnishing_status", "expected_rent", "created_at",
	}).AddRow(1, sub.Name, sub.Email, sub.PhoneNumber, sub.Address, sub.UnitSize, sub.FurnishingStatus, sub.ExpectedRent, createdAt)

	mock.ExpectQuery("INSERT INTO form_responses").
		WithArgs(sub.Name, sub.Email, sub.PhoneNumber, sub.Address, sub.UnitSize, sub.FurnishingStatus, sub.ExpectedRent, sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.Create(sub)
	require.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "asha@example.com", created.Email)
	assert.Equal(t, "2BHK", created.UnitSize)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFormRepository_CreateDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFormRepository(db)

	mock.ExpectQuery("INSERT INTO form_responses").
		WillReturnError(errors.New("connection refused"))

	created, err := repo.Create(sampleSubmission())
	assert.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "failed to create form submission")
}

func TestFormRepository_CreateNoRowReturned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFormRepository(db)

	mock.ExpectQuery("INSERT INTO form_responses").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	created, err := repo.Create(sampleSubmission())
	assert.Error(t, err)
	assert.Nil(t, created)
}
