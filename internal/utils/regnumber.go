package utils

import (
	"fmt"
	"strings"
	"time"
)

// GenerateRegistrationNumber builds the human-readable identifier handed to a
// visitor or attached to a package, e.g. "V-20260828-104512-3FA2". It is
// derived from the submission time plus a random suffix, so it is distinct
// from the internal record id.
func GenerateRegistrationNumber(prefix string, now time.Time) (string, error) {
	suffix, err := GenerateSecureRandomString(2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102-150405"), strings.ToUpper(suffix)), nil
}

// GenerateLookupToken builds the opaque token visitors can use at a kiosk to
// retrieve their registration.
func GenerateLookupToken() (string, error) {
	return GenerateSecureRandomString(16)
}
