package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAge(t *testing.T) {
	valid := []int{1, 18, 150}
	for _, n := range valid {
		assert.True(t, IsValidAge(n), "age %d should be valid", n)
	}

	invalid := []int{0, -1, 151, 1000}
	for _, n := range invalid {
		assert.False(t, IsValidAge(n), "age %d should be invalid", n)
	}
}

func TestIsValidDateString(t *testing.T) {
	assert.True(t, IsValidDateString("2020-01-15"))
	assert.True(t, IsValidDateString("1999-12-31"))
	assert.True(t, IsValidDateString("2020-01-15T10:30:00Z"))

	assert.False(t, IsValidDateString("not-a-date"))
	assert.False(t, IsValidDateString("20200115"), "compact form has no separator")
	assert.False(t, IsValidDateString("2020/01/15"), "slash-separated dates are rejected")
	assert.False(t, IsValidDateString(""))
	assert.False(t, IsValidDateString("2020-13-45"), "not a real calendar date")
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+1 (555) 123-4567"))
	assert.True(t, IsValidPhoneNumber("+66812345678"))
	assert.True(t, IsValidPhoneNumber("5551234567"))

	assert.False(t, IsValidPhoneNumber("0123"), "leading zero")
	assert.False(t, IsValidPhoneNumber("+0 123"), "zero right after the plus")
	assert.False(t, IsValidPhoneNumber(""))
	assert.False(t, IsValidPhoneNumber("+123456789012345678"), "too many digits")
	assert.False(t, IsValidPhoneNumber("call-me-maybe"))
}

func TestIsValidCountryCode(t *testing.T) {
	assert.True(t, IsValidCountryCode("+1"))
	assert.True(t, IsValidCountryCode("+44"))
	assert.True(t, IsValidCountryCode("+1234"))

	assert.False(t, IsValidCountryCode("1"), "plus is required")
	assert.False(t, IsValidCountryCode("+12345"), "at most 4 digits")
	assert.False(t, IsValidCountryCode("+"))
	assert.False(t, IsValidCountryCode("+1a"))
	assert.False(t, IsValidCountryCode(" +1"))
}
