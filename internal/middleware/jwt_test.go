package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PROFILEHUB_BACK-END/internal/config"
)

var testJWT = config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "user@example.com", &testJWT)
	require.NoError(t, err)

	claims, err := ValidateToken(token, &testJWT)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "user@example.com", &testJWT)
	require.NoError(t, err)

	other := config.JWTConfig{Secret: "other-secret", AccessTokenTTL: time.Hour}
	_, err = ValidateToken(token, &other)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	expired := config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute}
	token, err := GenerateToken(uuid.New(), "user@example.com", &expired)
	require.NoError(t, err)

	_, err = ValidateToken(token, &testJWT)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "user@example.com", &testJWT)
	require.NoError(t, err)

	var gotUserID uuid.UUID
	var called bool
	next := func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = UserIDFromContext(r.Context())
	}
	handler := AuthMiddleware(next, &testJWT)

	cases := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{"no header", "", http.StatusUnauthorized, false},
		{"not bearer", "Basic abc", http.StatusUnauthorized, false},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, false},
		{"valid token", "Bearer " + token, http.StatusOK, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called = false
			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCalled, called)
		})
	}

	assert.Equal(t, userID, gotUserID)
}
