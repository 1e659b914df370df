package myhashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	t.Run("Verify succeeds with correct password", func(t *testing.T) {
		hash, err := hasher.Hash("demo123")
		assert.NoError(t, err)
		assert.NotEqual(t, "demo123", hash)
		assert.True(t, hasher.Verify("demo123", hash))
	})

	t.Run("Verify fails with wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("demo123")
		assert.NoError(t, err)
		assert.False(t, hasher.Verify("wrong", hash))
	})

	t.Run("Verify fails with garbage hash", func(t *testing.T) {
		assert.False(t, hasher.Verify("demo123", "not-a-hash"))
	})

	t.Run("Same password hashes differently", func(t *testing.T) {
		first, err := hasher.Hash("demo123")
		assert.NoError(t, err)
		second, err := hasher.Hash("demo123")
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}
