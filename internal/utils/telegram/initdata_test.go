package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	initdata "github.com/telegram-mini-apps/init-data-golang"
)

func TestSignInitData(t *testing.T) {
	raw := SignInitData("123:token", User{ID: 42, FirstName: "Lina", Username: "lina"}, time.Now())

	require.NoError(t, initdata.Validate(raw, "123:token", time.Hour))
	assert.Error(t, initdata.Validate(raw, "other:token", time.Hour))

	parsed, err := initdata.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.User.ID)
	assert.Equal(t, "lina", parsed.User.Username)
}

func TestSignInitDataExpired(t *testing.T) {
	raw := SignInitData("123:token", User{ID: 42}, time.Now().Add(-2*time.Hour))
	assert.Error(t, initdata.Validate(raw, "123:token", time.Hour))
	assert.NoError(t, initdata.Validate(raw, "123:token", 0))
}
