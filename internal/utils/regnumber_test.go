package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRegistrationNumber(t *testing.T) {
	at := time.Date(2026, 8, 28, 10, 45, 12, 0, time.Local)

	number, err := GenerateRegistrationNumber("V", at)
	require.NoError(t, err)

	assert.Regexp(t, `^V-20260828-104512-[0-9A-F]{4}$`, number)

	other, err := GenerateRegistrationNumber("P", at)
	require.NoError(t, err)
	assert.Regexp(t, `^P-`, other)
}

func TestGenerateLookupToken(t *testing.T) {
	token, err := GenerateLookupToken()
	require.NoError(t, err)
	assert.Len(t, token, 32)

	second, err := GenerateLookupToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, second)
}

func TestGenerateSecureRandomString_RejectsNonPositiveLength(t *testing.T) {
	_, err := GenerateSecureRandomString(0)
	assert.Error(t, err)
	_, err = GenerateSecureRandomString(-1)
	assert.Error(t, err)
}
