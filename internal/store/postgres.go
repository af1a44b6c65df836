package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"PROFILEHUB_BACK-END/internal/models"
)

// PostgresProfileStore keeps profiles in public.profiles.
type PostgresProfileStore struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileStore creates a new PostgresProfileStore instance
func NewPostgresProfileStore(pool *pgxpool.Pool) *PostgresProfileStore {
	return &PostgresProfileStore{pool: pool}
}

const qGetProfile = `
select id, user_id, age, date_of_birth, phone, country_code, country, state, city, created_at, updated_at
from public.profiles
where user_id = $1
limit 1;
`

// insert-or-merge in one statement, keyed on the profiles_user_id_key unique
// constraint. coalesce(excluded.col, profiles.col) keeps the stored value
// for every field the caller did not send. (xmax = 0) is true only for a
// freshly inserted row.
const qUpsertProfile = `
insert into public.profiles (user_id, age, date_of_birth, phone, country_code, country, state, city)
values ($1, $2, $3, $4, $5, $6, $7, $8)
on conflict (user_id) do update set
	age           = coalesce(excluded.age, profiles.age),
	date_of_birth = coalesce(excluded.date_of_birth, profiles.date_of_birth),
	phone         = coalesce(excluded.phone, profiles.phone),
	country_code  = coalesce(excluded.country_code, profiles.country_code),
	country       = coalesce(excluded.country, profiles.country),
	state         = coalesce(excluded.state, profiles.state),
	city          = coalesce(excluded.city, profiles.city),
	updated_at    = now()
returning id, user_id, age, date_of_birth, phone, country_code, country, state, city, created_at, updated_at, (xmax = 0);
`

const qUpdateProfile = `
update public.profiles set
	age           = coalesce($2, age),
	date_of_birth = coalesce($3, date_of_birth),
	phone         = coalesce($4, phone),
	country_code  = coalesce($5, country_code),
	country       = coalesce($6, country),
	state         = coalesce($7, state),
	city          = coalesce($8, city),
	updated_at    = now()
where user_id = $1
returning id, user_id, age, date_of_birth, phone, country_code, country, state, city, created_at, updated_at;
`

// GetByUserID returns the profile row owned by userID.
func (s *PostgresProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.pool.QueryRow(ctx, qGetProfile, userID).Scan(
		&p.ID, &p.UserID, &p.Age, &p.DateOfBirth, &p.Phone, &p.CountryCode,
		&p.Country, &p.State, &p.City, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or merges in a single statement, so two concurrent first
// writes for the same user serialize inside Postgres instead of racing a
// check-then-insert sequence.
func (s *PostgresProfileStore) Upsert(ctx context.Context, userID uuid.UUID, ch ProfileChanges) (*models.UserProfile, bool, error) {
	var (
		p        models.UserProfile
		inserted bool
	)
	err := s.pool.QueryRow(ctx, qUpsertProfile,
		userID, ch.Age, ch.DateOfBirth, ch.Phone, ch.CountryCode, ch.Country, ch.State, ch.City,
	).Scan(
		&p.ID, &p.UserID, &p.Age, &p.DateOfBirth, &p.Phone, &p.CountryCode,
		&p.Country, &p.State, &p.City, &p.CreatedAt, &p.UpdatedAt, &inserted,
	)
	if err != nil {
		return nil, false, err
	}
	return &p, inserted, nil
}

// Update merges into an existing row only; no row means ErrProfileNotFound.
func (s *PostgresProfileStore) Update(ctx context.Context, userID uuid.UUID, ch ProfileChanges) (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.pool.QueryRow(ctx, qUpdateProfile,
		userID, ch.Age, ch.DateOfBirth, ch.Phone, ch.CountryCode, ch.Country, ch.State, ch.City,
	).Scan(
		&p.ID, &p.UserID, &p.Age, &p.DateOfBirth, &p.Phone, &p.CountryCode,
		&p.Country, &p.State, &p.City, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}
