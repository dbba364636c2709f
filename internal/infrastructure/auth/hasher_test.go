package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "recipebox/pkg/errors"
)

func TestHasher(t *testing.T) {
	hasher := NewHasher()

	t.Run("HashAndCheck", func(t *testing.T) {
		hash, err := hasher.Hash("secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "secret", hash)
		assert.True(t, hasher.Check("secret", hash))
		assert.False(t, hasher.Check("wrong", hash))
	})

	t.Run("SaltedHashesDiffer", func(t *testing.T) {
		first, err := hasher.Hash("secret")
		assert.NoError(t, err)
		second, err := hasher.Hash("secret")
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
		assert.True(t, hasher.Check("secret", first))
		assert.True(t, hasher.Check("secret", second))
	})

	t.Run("BlankPassword", func(t *testing.T) {
		_, err := hasher.Hash("")
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
	})

	t.Run("GarbageHash", func(t *testing.T) {
		assert.False(t, hasher.Check("secret", "not-a-bcrypt-hash"))
	})
}
