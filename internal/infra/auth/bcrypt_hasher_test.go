package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("some-random-secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "some-random-secret", hash)

	assert.True(t, hasher.Check("some-random-secret", hash))
	assert.False(t, hasher.Check("a-different-secret", hash))
	assert.False(t, hasher.Check("some-random-secret", "not-a-bcrypt-hash"))
}
