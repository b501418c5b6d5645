package bcrypthash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash1, err := h.Hash("secret123")
	require.NoError(t, err)
	hash2, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash1)
	assert.NotEqual(t, hash1, hash2, "salted hashes must differ")

	assert.True(t, h.Compare(hash1, "secret123"))
	assert.True(t, h.Compare(hash2, "secret123"))
	assert.False(t, h.Compare(hash1, "secret124"))
	assert.False(t, h.Compare("not-a-hash", "secret123"))

	cost, err := bcrypt.Cost([]byte(hash1))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNew_FallsBackToDefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, New(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, New(99).cost)
	assert.Equal(t, 12, New(12).cost)
}
