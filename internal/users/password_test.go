package users

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	password := "testpassword123"

	hash, err := NewHasher(DefaultCost).Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)
	assert.Equal(t, "$2a$", hash[:4])

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestCheck(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	hash, err := h.Hash("correctpassword")
	require.NoError(t, err)

	assert.True(t, h.Check("correctpassword", hash))
	assert.False(t, h.Check("wrongpassword", hash))
	assert.False(t, h.Check("", hash))
	assert.False(t, h.Check("correctpassword", "not-a-hash"))
}

func TestHasherCost(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	hash, err := h.Hash("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
	assert.True(t, h.Check("password123", hash))

	assert.Equal(t, DefaultCost, NewHasher(0).cost)
	assert.Equal(t, DefaultCost, NewHasher(bcrypt.MaxCost+1).cost)
}

func TestHashPasswordLength(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes))
	assert.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	// 40 runes, 80 bytes
	_, err = h.Hash(strings.Repeat("ç", 40))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
