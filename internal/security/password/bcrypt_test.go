package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(DefaultCost)

	hash, err := h.Hash("Passw0rd")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "Passw0rd")

	assert.True(t, h.Verify("Passw0rd", hash))
	assert.False(t, h.Verify("passw0rd", hash))
	assert.False(t, h.Verify("", hash))
}

func TestHasher_EmptyPassword(t *testing.T) {
	h := NewHasher(DefaultCost)
	_, err := h.Hash("")
	require.Error(t, err)
}

func TestHasher_SaltedPerRecord(t *testing.T) {
	// bcrypt usa salt aleatoria: dos hashes del mismo plaintext difieren
	h := NewHasher(4) // cost mínimo para no demorar el test
	a, err := h.Hash("Passw0rd")
	require.NoError(t, err)
	b, err := h.Hash("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewHasher_CostClamped(t *testing.T) {
	assert.Equal(t, DefaultCost, NewHasher(0).Cost)
	assert.Equal(t, DefaultCost, NewHasher(99).Cost)
	assert.Equal(t, 12, NewHasher(12).Cost)
}

func TestHasher_CostEncoded(t *testing.T) {
	h := NewHasher(DefaultCost)
	hash, err := h.Hash("Passw0rd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"), "hash=%s", hash)
}
