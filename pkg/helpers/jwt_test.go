package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertrain-io/cybertrain/internal/domain/entity"
)

func testUser() *entity.User {
	return &entity.User{
		ID:        "u-1",
		Email:     "alice@example.com",
		Name:      "alice",
		FirstName: "Alice",
		LastName:  "Doe",
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.Generate(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "Alice", claims.FirstName)
	assert.Equal(t, "Doe", claims.LastName)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.Generate(testUser())
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour)
	token, _, err := m.Generate(testUser())
	require.NoError(t, err)

	other := NewJWTManager("secret-b", time.Hour)
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTTampered(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, _, err := m.Generate(testUser())
	require.NoError(t, err)

	_, err = m.Parse(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTMalformed(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Parse(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}
