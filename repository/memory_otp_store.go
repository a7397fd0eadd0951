package repository

import (
	"sync"
	"time"

	"github.com/trustkeyper/Backend/entity"
)

// MemoryOTPStore holds OTP records in a mutex-guarded map. Issue and
// Verify are atomic with respect to each other, so a verify racing a
// re-issue observes either the old or the new record, never a mix.
type MemoryOTPStore struct {
	mu      sync.RWMutex
	records map[string]entity.OTP

	// now is replaceable for tests
	now func() time.Time
}

// NewMemoryOTPStore creates an empty in-memory OTP store
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		records: make(map[string]entity.OTP),
		now:     time.Now,
	}
}

// Issue stores a code for the identifier, overwriting any existing record
func (s *MemoryOTPStore) Issue(identifier, code string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[identifier] = entity.OTP{
		Identifier: identifier,
		Code:       code,
		ExpiresAt:  expiresAt,
	}
	return nil
}

// Verify checks the candidate code against the stored record. A matching,
// unexpired code is consumed: the record is deleted before returning true.
func (s *MemoryOTPStore) Verify(identifier, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[identifier]
	if !ok || rec.Code != code || rec.Expired(s.now()) {
		return false, nil
	}

	delete(s.records, identifier)
	return true, nil
}

// Revoke removes the record for an identifier, if any
func (s *MemoryOTPStore) Revoke(identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, identifier)
	return nil
}

// DeleteExpired evicts every record past its expiry
func (s *MemoryOTPStore) DeleteExpired() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for identifier, rec := range s.records {
		if rec.Expired(now) {
			delete(s.records, identifier)
		}
	}
	return nil
}

// Len returns the number of stored records, expired or not
func (s *MemoryOTPStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
