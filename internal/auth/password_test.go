package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("Secret123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", h)
	assert.True(t, CheckPassword(h, "Secret123!"))
	assert.False(t, CheckPassword(h, "secret123!"))
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("Secret123!")
	require.NoError(t, err)
	b, err := HashPassword("Secret123!")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.Error(t, err)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-hash", "whatever1"))
}
