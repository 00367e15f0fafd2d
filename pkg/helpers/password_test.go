package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2secret", hash)
	assert.NotContains(t, hash, "hunter2secret")

	assert.True(t, CompareHashAndPassword(hash, "hunter2secret"))
	assert.False(t, CompareHashAndPassword(hash, "wrong-password"))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)
	// bcrypt embeds a per-record salt
	assert.NotEqual(t, h1, h2)
}

func TestCompareHashGarbage(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "anything"))
}
