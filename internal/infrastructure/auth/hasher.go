package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	pkgerrors "recipebox/pkg/errors"
)

// Hasher wraps bcrypt. Salting is handled by bcrypt itself, so two hashes
// of the same password differ but both verify.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password must not be blank", pkgerrors.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *Hasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
