package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFullName(t *testing.T) {
	assert.NoError(t, ValidateFullName("Omar Haddad"))
	assert.NoError(t, ValidateFullName("  عمر حداد  "))
	assert.NoError(t, ValidateFullName(strings.Repeat("ع", MaxFullNameLength)))

	assert.Error(t, ValidateFullName("   "))
	assert.Error(t, ValidateFullName(strings.Repeat("a", MaxFullNameLength+1)))
	assert.Error(t, ValidateFullName("bad\x00name"))
}

func TestValidateReferralInput(t *testing.T) {
	assert.NoError(t, ValidateReferralInput("ref_AB12CD"))
	assert.NoError(t, ValidateReferralInput("friend-code"))

	assert.Error(t, ValidateReferralInput(""))
	assert.Error(t, ValidateReferralInput("ref AB"))
	assert.Error(t, ValidateReferralInput(strings.Repeat("x", MaxReferralCodeLength+1)))
}
