package dto

// รับ Body จาก POST/PUT /api/profile — every field optional
type ProfileRequest struct {
	Age         *int    `json:"age,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"` // "YYYY-MM-DD" or RFC3339
	Phone       *string `json:"phone,omitempty"`
	CountryCode *string `json:"countryCode,omitempty"` // "+" then 1-4 digits
	Country     *string `json:"country,omitempty"`
	State       *string `json:"state,omitempty"`
	City        *string `json:"city,omitempty"`
}

// ProfileResponse mirrors one profiles row on the wire.
type ProfileResponse struct {
	ID          int64   `json:"id"`
	UserID      string  `json:"userId"`
	Age         *int    `json:"age,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"` // "YYYY-MM-DD"
	Phone       *string `json:"phone,omitempty"`
	CountryCode *string `json:"countryCode,omitempty"`
	Country     *string `json:"country,omitempty"`
	State       *string `json:"state,omitempty"`
	City        *string `json:"city,omitempty"`
	CreatedAt   string  `json:"createdAt"` // RFC3339
	UpdatedAt   string  `json:"updatedAt"` // RFC3339
}
