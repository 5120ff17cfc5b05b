package auth

import (
	"testing"

	"newsguard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	password := "hunter22"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Same input, different salt
	again, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEqual(t, hash, again)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	password := "correct-horse"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-horse", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = 6

	hasher, err := NewBcryptHasher(cfg)
	require.NoError(t, err)

	hash, err := hasher.Hash("secret-pass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_DefaultAndInvalidCost(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(0)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)

	_, err = NewBcryptHasherWithCost(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestBcryptHasher_Equalize(t *testing.T) {
	hasher, err := NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotPanics(t, func() { hasher.Equalize("anything") })
}
