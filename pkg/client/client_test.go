package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PROFILEHUB_BACK-END/internal/dto"
)

func TestFetchProfile_NoProfileYet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Profile not found", Code: dto.CodeProfileNotFound})
	}))
	defer srv.Close()

	p, err := New(srv.URL).FetchProfile(context.Background(), "token")
	require.NoError(t, err, "404 means empty form, not an error")
	assert.Nil(t, p)
}

func TestFetchProfile_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(dto.ProfileResponse{ID: 1, UserID: "u"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchProfile(context.Background(), "my-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

func TestFetchProfile_SurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Invalid token", Code: dto.CodeAuthRequired})
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchProfile(context.Background(), "bad")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, dto.CodeAuthRequired, apiErr.Code)
	assert.Equal(t, "Invalid token", apiErr.Message)
}

func TestSaveProfile_OmitsEmptyFields(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.ProfileResponse{ID: 1, UserID: "u"})
	}))
	defer srv.Close()

	age := 30
	city := "Boston"
	p, err := New(srv.URL).SaveProfile(context.Background(), "token", ProfileForm{
		Age:  &age,
		City: &city,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	assert.Contains(t, gotBody, "age")
	assert.Contains(t, gotBody, "city")
	assert.NotContains(t, gotBody, "phone", "empty fields are omitted from the body")
	assert.NotContains(t, gotBody, "dateOfBirth")
}

func TestSaveProfile_SurfacesValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "age must be an integer between 1 and 150", Code: dto.CodeInvalidAge})
	}))
	defer srv.Close()

	age := 999
	_, err := New(srv.URL).SaveProfile(context.Background(), "token", ProfileForm{Age: &age})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, dto.CodeInvalidAge, apiErr.Code)
	assert.Equal(t, "age must be an integer between 1 and 150", apiErr.Message)
}
