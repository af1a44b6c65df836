package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"PROFILEHUB_BACK-END/internal/models"
)

// MemoryProfileStore is an in-process ProfileStore with the same merge
// semantics as the Postgres one. Used by the handler tests and for running
// the server without a database.
type MemoryProfileStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[uuid.UUID]*models.UserProfile
}

// NewMemoryProfileStore creates an empty MemoryProfileStore.
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{rows: make(map[uuid.UUID]*models.UserProfile)}
}

func (s *MemoryProfileStore) GetByUserID(_ context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.rows[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryProfileStore) Upsert(_ context.Context, userID uuid.UUID, ch ProfileChanges) (*models.UserProfile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	p, ok := s.rows[userID]
	if !ok {
		s.nextID++
		p = &models.UserProfile{
			ID:        s.nextID,
			UserID:    userID,
			CreatedAt: now,
		}
		s.rows[userID] = p
	}
	merge(p, ch)
	p.UpdatedAt = now

	cp := *p
	return &cp, !ok, nil
}

func (s *MemoryProfileStore) Update(_ context.Context, userID uuid.UUID, ch ProfileChanges) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.rows[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	merge(p, ch)
	p.UpdatedAt = time.Now().UTC()

	cp := *p
	return &cp, nil
}

// merge applies the coalesce semantics of the SQL statements: nil fields
// keep the stored value.
func merge(p *models.UserProfile, ch ProfileChanges) {
	if ch.Age != nil {
		p.Age = ch.Age
	}
	if ch.DateOfBirth != nil {
		p.DateOfBirth = ch.DateOfBirth
	}
	if ch.Phone != nil {
		p.Phone = ch.Phone
	}
	if ch.CountryCode != nil {
		p.CountryCode = ch.CountryCode
	}
	if ch.Country != nil {
		p.Country = ch.Country
	}
	if ch.State != nil {
		p.State = ch.State
	}
	if ch.City != nil {
		p.City = ch.City
	}
}
