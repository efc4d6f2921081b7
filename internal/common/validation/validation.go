package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxFullNameLength     = 128
	MaxReferralCodeLength = 32
)

// ValidateFullName checks a display name entered by the user.
func ValidateFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("full name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxFullNameLength {
		return fmt.Errorf("full name cannot exceed %d characters", MaxFullNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("full name cannot contain control characters")
		}
	}
	return nil
}

// ValidateReferralInput checks the shape of a submitted referrer code. Any
// non-empty token is accepted; codes are not looked up.
func ValidateReferralInput(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("referral code cannot be empty")
	}
	if len(code) > MaxReferralCodeLength {
		return fmt.Errorf("referral code cannot exceed %d characters", MaxReferralCodeLength)
	}
	if strings.ContainsFunc(code, unicode.IsSpace) {
		return fmt.Errorf("referral code cannot contain spaces")
	}
	return nil
}
