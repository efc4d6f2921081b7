package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range tables["en"] {
		assert.Contains(t, tables["ar"], key)
	}
	assert.Len(t, tables["ar"], len(tables["en"]))
}

func TestT(t *testing.T) {
	assert.Equal(t, "Claim Reward", T("en", "claimReward"))
	assert.Equal(t, "استلام المكافأة", T("ar", "claimReward"))
	assert.Equal(t, "Claim Reward", T("fr", "claimReward"))
	assert.Equal(t, "noSuchKey", T("en", "noSuchKey"))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "ar", Resolve("AR-eg"))
	assert.Equal(t, "en", Resolve(""))
	assert.True(t, IsRTL("ar"))
	assert.False(t, IsRTL("en"))
	assert.Equal(t, []string{"ar", "en"}, Languages())
}

func TestLoadReturnsCopy(t *testing.T) {
	b := Load("ar")
	assert.True(t, b.RTL)
	b.Strings["level"] = "changed"
	assert.Equal(t, "المستوى", T("ar", "level"))
}
