package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomTokenRoundTrip(t *testing.T) {
	token, err := newRoomToken("MurekkepHukuk_42", "Ahmet Özdemir", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	room, err := ValidateRoomToken(token)
	require.NoError(t, err)
	assert.Equal(t, "MurekkepHukuk_42", room)
}

func TestValidateRoomTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateRoomToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidateRoomToken("")
	assert.Error(t, err)
}

func TestValidateRoomTokenRejectsExpired(t *testing.T) {
	token, err := newRoomToken("MurekkepHukuk_42", "Danışan", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ValidateRoomToken(token)
	assert.Error(t, err)
}

func TestRoomTokenBoundToRoom(t *testing.T) {
	token, err := newRoomToken("MurekkepHukuk_1", "Danışan", time.Now().Add(time.Hour))
	require.NoError(t, err)

	room, err := ValidateRoomToken(token)
	require.NoError(t, err)
	assert.NotEqual(t, "MurekkepHukuk_2", room)
}

func TestBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "")
	assert.Equal(t, "https://murekkephukuk.vercel.app", BaseURL())

	t.Setenv("BASE_URL", "https://example.com")
	assert.Equal(t, "https://example.com", BaseURL())
}
