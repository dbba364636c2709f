package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	pkgerrors "recipebox/pkg/errors"
)

// PasswordHasher abstracts the hashing algorithm so models stay free of
// crypto imports. The bcrypt implementation lives in infrastructure/auth.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// User is an account holder. The password hash is write-only: it is set
// through SetPassword, checked through Authenticate, and reaches the
// database only through the row-binding methods below. It never appears
// in JSON output.
type User struct {
	ID        int64
	Username  string
	Bio       *string
	ImageURL  *string
	CreatedAt time.Time

	passwordHash string
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("%w: username must be present", pkgerrors.ErrValidation)
	}
	if u.passwordHash == "" {
		return fmt.Errorf("%w: password must be set", pkgerrors.ErrValidation)
	}
	return nil
}

// SetPassword validates and hashes the plaintext, replacing the stored hash.
func (u *User) SetPassword(plaintext string, h PasswordHasher) error {
	if strings.TrimSpace(plaintext) == "" {
		return fmt.Errorf("%w: password must not be blank", pkgerrors.ErrValidation)
	}
	hash, err := h.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	return nil
}

// Authenticate reports whether plaintext matches the stored hash. A wrong
// password is not an error, just false.
func (u *User) Authenticate(plaintext string, h PasswordHasher) bool {
	if u.passwordHash == "" {
		return false
	}
	return h.Check(plaintext, u.passwordHash)
}

// PasswordHash always panics. The hash may not be read; calling this is a
// programming error, not a recoverable condition.
func (u *User) PasswordHash() string {
	panic("models: User.PasswordHash is write-only")
}

// InsertArgs returns the column values for the users INSERT, in
// (username, password_hash, bio, image_url) order. This binding is the only
// path by which the hash leaves the struct.
func (u *User) InsertArgs() []any {
	return []any{u.Username, u.passwordHash, u.Bio, u.ImageURL}
}

// ScanRow populates u from a full users row in
// (id, username, password_hash, bio, image_url, created_at) order.
func (u *User) ScanRow(scan func(dest ...any) error) error {
	return scan(&u.ID, &u.Username, &u.passwordHash, &u.Bio, &u.ImageURL, &u.CreatedAt)
}

// MarshalJSON emits the allow-listed fields only. The hash is never
// included, and recipes are never embedded under a user.
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       int64   `json:"id"`
		Username string  `json:"username"`
		Bio      *string `json:"bio"`
		ImageURL *string `json:"image_url"`
	}{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		ImageURL: u.ImageURL,
	})
}
