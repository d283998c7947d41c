package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"warbler/auth"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := &auth.BcryptHasher{Cost: bcrypt.MinCost}

	digest, err := hasher.Hash("password")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "password", digest)

	assert.True(t, hasher.Verify("password", digest))
	assert.False(t, hasher.Verify("wrong", digest))
	assert.False(t, hasher.Verify("password", "not-a-digest"))
}

func TestBcryptHasherDistinctDigests(t *testing.T) {
	hasher := &auth.BcryptHasher{Cost: bcrypt.MinCost}

	first, err := hasher.Hash("password")
	require.NoError(t, err)
	second, err := hasher.Hash("password")
	require.NoError(t, err)

	// bcrypt salts every digest
	assert.NotEqual(t, first, second)
}
