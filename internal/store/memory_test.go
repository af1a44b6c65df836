package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestMemoryProfileStore_GetMissing(t *testing.T) {
	s := NewMemoryProfileStore()

	_, err := s.GetByUserID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestMemoryProfileStore_UpsertCreatesThenMerges(t *testing.T) {
	s := NewMemoryProfileStore()
	userID := uuid.New()

	p, created, err := s.Upsert(context.Background(), userID, ProfileChanges{
		Age:  intPtr(30),
		City: strPtr("Cambridge"),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, int64(1), p.ID)

	p, created, err = s.Upsert(context.Background(), userID, ProfileChanges{
		City: strPtr("Boston"),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), p.ID, "merge keeps the row")
	assert.Equal(t, "Boston", *p.City)
	assert.Equal(t, 30, *p.Age, "unset fields survive the merge")
}

func TestMemoryProfileStore_UpdateRequiresRow(t *testing.T) {
	s := NewMemoryProfileStore()
	userID := uuid.New()

	_, err := s.Update(context.Background(), userID, ProfileChanges{City: strPtr("Boston")})
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = s.GetByUserID(context.Background(), userID)
	assert.ErrorIs(t, err, ErrProfileNotFound, "failed strict update must not create a row")
}

func TestMemoryProfileStore_UpdateMerges(t *testing.T) {
	s := NewMemoryProfileStore()
	userID := uuid.New()

	dob := time.Date(1994, 5, 20, 0, 0, 0, 0, time.UTC)
	_, _, err := s.Upsert(context.Background(), userID, ProfileChanges{
		Age:         intPtr(30),
		DateOfBirth: &dob,
		Phone:       strPtr("+15551234567"),
	})
	require.NoError(t, err)

	p, err := s.Update(context.Background(), userID, ProfileChanges{Age: intPtr(31)})
	require.NoError(t, err)
	assert.Equal(t, 31, *p.Age)
	assert.Equal(t, dob, *p.DateOfBirth)
	assert.Equal(t, "+15551234567", *p.Phone)
}

func TestMemoryProfileStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryProfileStore()
	userID := uuid.New()

	p1, _, err := s.Upsert(context.Background(), userID, ProfileChanges{City: strPtr("Boston")})
	require.NoError(t, err)

	// mutating a returned row must not affect the stored one
	other := "Elsewhere"
	p1.City = &other

	p2, err := s.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Boston", *p2.City)
}
