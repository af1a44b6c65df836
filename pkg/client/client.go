// Package client is the typed API client the dashboard form is built on.
// The bearer token is an explicit argument on every call; the package keeps
// no ambient credential state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"PROFILEHUB_BACK-END/internal/dto"
)

// APIError is a non-2xx response from the backend, carrying the server's
// message and machine code so the form can show them as-is.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// ProfileForm is the full field set the dashboard submits. Empty fields are
// omitted from the request body.
type ProfileForm struct {
	Age         *int    `json:"age,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	CountryCode *string `json:"countryCode,omitempty"`
	Country     *string `json:"country,omitempty"`
	State       *string `json:"state,omitempty"`
	City        *string `json:"city,omitempty"`
}

// Client talks to the profile backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient creates a Client with a caller-provided http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

// FetchProfile loads the caller's profile. A 404 means "no profile yet" and
// returns (nil, nil) so the form can start empty.
func (c *Client) FetchProfile(ctx context.Context, token string) (*dto.ProfileResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/profile", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var profile dto.ProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile submits the form via the create-or-update endpoint and returns
// the stored row.
func (c *Client) SaveProfile(ctx context.Context, token string, form ProfileForm) (*dto.ProfileResponse, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/profile", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var profile dto.ProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// apiError decodes the backend's error envelope; a body that isn't the
// envelope still yields a usable APIError.
func apiError(resp *http.Response) error {
	var e dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
		e.Error = resp.Status
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       e.Code,
		Message:    e.Error,
	}
}
