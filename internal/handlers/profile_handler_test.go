package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"PROFILEHUB_BACK-END/internal/config"
	"PROFILEHUB_BACK-END/internal/dto"
	"PROFILEHUB_BACK-END/internal/middleware"
	"PROFILEHUB_BACK-END/internal/models"
	"PROFILEHUB_BACK-END/internal/store"
)

var testJWT = config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}

// countingStore records how often the store is touched, so tests can assert
// that rejected requests never reach it.
type countingStore struct {
	inner store.ProfileStore
	calls int
}

func (c *countingStore) GetByUserID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	c.calls++
	return c.inner.GetByUserID(ctx, id)
}

func (c *countingStore) Upsert(ctx context.Context, id uuid.UUID, ch store.ProfileChanges) (*models.UserProfile, bool, error) {
	c.calls++
	return c.inner.Upsert(ctx, id, ch)
}

func (c *countingStore) Update(ctx context.Context, id uuid.UUID, ch store.ProfileChanges) (*models.UserProfile, error) {
	c.calls++
	return c.inner.Update(ctx, id, ch)
}

type profileServer struct {
	handler http.HandlerFunc
	store   *countingStore
	userID  uuid.UUID
	token   string
}

func newProfileServer(t *testing.T) *profileServer {
	t.Helper()

	userID := uuid.New()
	token, err := middleware.GenerateToken(userID, "user@example.com", &testJWT)
	require.NoError(t, err)

	st := &countingStore{inner: store.NewMemoryProfileStore()}
	h := NewProfileHandler(st, zap.NewNop())

	return &profileServer{
		handler: middleware.AuthMiddleware(h.Handle, &testJWT),
		store:   st,
		userID:  userID,
		token:   token,
	}
}

func (s *profileServer) do(t *testing.T, method, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	if body == "" {
		buf = bytes.NewReader(nil)
	} else {
		buf = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, "/api/profile", buf)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeProfile(t *testing.T, rec *httptest.ResponseRecorder) dto.ProfileResponse {
	t.Helper()
	var p dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestProfile_GetWithoutRow(t *testing.T) {
	s := newProfileServer(t)

	rec := s.do(t, http.MethodGet, "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, dto.CodeProfileNotFound, decodeError(t, rec).Code)
}

func TestProfile_RoundTrip(t *testing.T) {
	s := newProfileServer(t)

	body := `{"age":30,"dateOfBirth":"1994-05-20","phone":"+1 (555) 123-4567","countryCode":"+1","country":"USA","state":"MA","city":"Boston"}`
	rec := s.do(t, http.MethodPost, body, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodGet, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decodeProfile(t, rec)

	assert.Equal(t, s.userID.String(), p.UserID)
	require.NotNil(t, p.Age)
	assert.Equal(t, 30, *p.Age)
	require.NotNil(t, p.DateOfBirth)
	assert.Equal(t, "1994-05-20", *p.DateOfBirth)
	require.NotNil(t, p.Phone)
	assert.Equal(t, "+1 (555) 123-4567", *p.Phone)
	require.NotNil(t, p.CountryCode)
	assert.Equal(t, "+1", *p.CountryCode)
	require.NotNil(t, p.City)
	assert.Equal(t, "Boston", *p.City)
}

func TestProfile_PostIsIdempotent(t *testing.T) {
	s := newProfileServer(t)

	body := `{"age":30,"city":"Boston"}`
	first := s.do(t, http.MethodPost, body, true)
	require.Equal(t, http.StatusCreated, first.Code)
	firstRow := decodeProfile(t, first)

	second := s.do(t, http.MethodPost, body, true)
	require.Equal(t, http.StatusOK, second.Code, "second POST is an update, not a duplicate insert")
	secondRow := decodeProfile(t, second)

	assert.Equal(t, firstRow.ID, secondRow.ID)
	assert.Equal(t, *firstRow.Age, *secondRow.Age)
	assert.Equal(t, *firstRow.City, *secondRow.City)
}

func TestProfile_PartialUpdateKeepsOtherFields(t *testing.T) {
	s := newProfileServer(t)

	full := `{"age":30,"dateOfBirth":"1994-05-20","phone":"+15551234567","countryCode":"+1","country":"USA","state":"MA","city":"Cambridge"}`
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, full, true).Code)

	rec := s.do(t, http.MethodPost, `{"city":"Boston"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decodeProfile(t, rec)

	assert.Equal(t, "Boston", *p.City)
	assert.Equal(t, 30, *p.Age)
	assert.Equal(t, "1994-05-20", *p.DateOfBirth)
	assert.Equal(t, "+15551234567", *p.Phone)
	assert.Equal(t, "+1", *p.CountryCode)
	assert.Equal(t, "USA", *p.Country)
	assert.Equal(t, "MA", *p.State)
}

func TestProfile_EmptyValuesCannotClearFields(t *testing.T) {
	s := newProfileServer(t)

	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, `{"age":30,"city":"Boston"}`, true).Code)

	// empty string and zero count as "not provided" and leave the stored
	// values alone
	rec := s.do(t, http.MethodPost, `{"age":0,"city":""}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decodeProfile(t, rec)

	assert.Equal(t, 30, *p.Age)
	assert.Equal(t, "Boston", *p.City)
}

func TestProfile_UserIDInBodyRejected(t *testing.T) {
	for _, spelling := range []string{"userId", "user_id"} {
		t.Run(spelling, func(t *testing.T) {
			s := newProfileServer(t)

			rec := s.do(t, http.MethodPost, `{"`+spelling+`":"11111111-1111-1111-1111-111111111111","city":"Boston"}`, true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, dto.CodeUserIDNotAllowed, decodeError(t, rec).Code)
			assert.Equal(t, 0, s.store.calls, "row must never be written")
		})
	}
}

func TestProfile_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		code string
	}{
		{"age too large", `{"age":151}`, dto.CodeInvalidAge},
		{"age negative", `{"age":-3}`, dto.CodeInvalidAge},
		{"date without separator", `{"dateOfBirth":"20200115"}`, dto.CodeInvalidDateOfBirth},
		{"date gibberish", `{"dateOfBirth":"not-a-date"}`, dto.CodeInvalidDateOfBirth},
		{"phone leading zero", `{"phone":"0123"}`, dto.CodeInvalidPhone},
		{"country code without plus", `{"countryCode":"1"}`, dto.CodeInvalidCountryCode},
		{"country code too long", `{"countryCode":"+12345"}`, dto.CodeInvalidCountryCode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newProfileServer(t)

			rec := s.do(t, http.MethodPost, tc.body, true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.code, decodeError(t, rec).Code)
			assert.Equal(t, 0, s.store.calls)
		})
	}
}

func TestProfile_FirstValidationFailureWins(t *testing.T) {
	s := newProfileServer(t)

	rec := s.do(t, http.MethodPost, `{"age":999,"phone":"0123"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, dto.CodeInvalidAge, decodeError(t, rec).Code)
}

func TestProfile_StrictUpdateWithoutRow(t *testing.T) {
	s := newProfileServer(t)

	rec := s.do(t, http.MethodPut, `{"city":"Boston"}`, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, dto.CodeProfileNotFound, decodeError(t, rec).Code)

	// no row was created on the side
	rec = s.do(t, http.MethodGet, "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfile_StrictUpdateMerges(t *testing.T) {
	s := newProfileServer(t)

	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, `{"age":30,"city":"Cambridge"}`, true).Code)

	rec := s.do(t, http.MethodPut, `{"city":"Boston"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	p := decodeProfile(t, rec)

	assert.Equal(t, "Boston", *p.City)
	assert.Equal(t, 30, *p.Age)
}

func TestProfile_Unauthenticated(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut} {
		t.Run(method, func(t *testing.T) {
			s := newProfileServer(t)

			rec := s.do(t, method, `{"age":999}`, false)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, dto.CodeAuthRequired, decodeError(t, rec).Code)
			assert.Equal(t, 0, s.store.calls, "auth failure must precede validation and store access")
		})
	}
}

func TestProfile_MethodNotAllowed(t *testing.T) {
	s := newProfileServer(t)

	rec := s.do(t, http.MethodDelete, "", true)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
