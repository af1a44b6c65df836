package dto

// Machine-readable error codes carried in ErrorResponse.Code.
const (
	CodeAuthRequired       = "AUTH_REQUIRED"
	CodeUserIDNotAllowed   = "USER_ID_NOT_ALLOWED"
	CodeInvalidAge         = "INVALID_AGE"
	CodeInvalidDateOfBirth = "INVALID_DATE_OF_BIRTH"
	CodeInvalidPhone       = "INVALID_PHONE"
	CodeInvalidCountryCode = "INVALID_COUNTRY_CODE"
	CodeProfileNotFound    = "PROFILE_NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"

	CodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserExists         = "USER_EXISTS"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
