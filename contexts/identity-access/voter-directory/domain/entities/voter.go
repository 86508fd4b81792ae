package entities

import (
	"regexp"
	"strings"
	"time"
)

const (
	MinimumVotingAge    = 18
	MinimumSecretLength = 8
)

var (
	identityDocumentPattern   = regexp.MustCompile(`^[0-9]{13}$`)
	registrationNumberPattern = regexp.MustCompile(`^[0-9]{5,10}$`)
)

// Voter is immutable once registered. CredentialHash never leaves the module
// through transport DTOs.
type Voter struct {
	RegistrationNumber string
	Name               string
	Email              string
	IdentityDocument   string
	BirthDate          string
	CredentialHash     string
	CreatedAt          time.Time
}

func ValidIdentityDocument(value string) bool {
	return identityDocumentPattern.MatchString(value)
}

func ValidRegistrationNumber(value string) bool {
	return registrationNumberPattern.MatchString(value)
}

// ParseBirthDate accepts calendar dates (2006-01-02) and RFC 3339 timestamps.
func ParseBirthDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.DateOnly, value); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

// AgeAt returns completed years between birth and now.
func AgeAt(birth time.Time, now time.Time) int {
	birth = birth.UTC()
	now = now.UTC()
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

func OfVotingAge(rawBirthDate string, now time.Time) bool {
	birth, ok := ParseBirthDate(rawBirthDate)
	if !ok || birth.After(now) {
		return false
	}
	return AgeAt(birth, now) >= MinimumVotingAge
}

// StrongSecret requires at least eight ASCII letters or digits containing one
// lowercase letter, one uppercase letter and one digit. Any other character
// rejects the secret.
func StrongSecret(secret string) bool {
	if len(secret) < MinimumSecretLength {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for i := 0; i < len(secret); i++ {
		c := secret[i]
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			return false
		}
	}
	return hasLower && hasUpper && hasDigit
}
