package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is a row of public.profiles. Each user has at most one; every
// profile field is optional and nil means the column is NULL.
type UserProfile struct {
	ID          int64      `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Age         *int       `json:"age,omitempty" db:"age"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Phone       *string    `json:"phone,omitempty" db:"phone"`
	CountryCode *string    `json:"country_code,omitempty" db:"country_code"`
	Country     *string    `json:"country,omitempty" db:"country"`
	State       *string    `json:"state,omitempty" db:"state"`
	City        *string    `json:"city,omitempty" db:"city"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
