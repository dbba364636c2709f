package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	pkgerrors "recipebox/pkg/errors"
)

const minInstructionsLen = 50

// Recipe belongs to at most one user. UserID is nullable: the schema
// permits orphaned recipes even though the HTTP flow always supplies an
// owner.
type Recipe struct {
	ID                int64
	Title             string
	Instructions      string
	MinutesToComplete *int
	UserID            *int64
	CreatedAt         time.Time
}

func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title must be present", pkgerrors.ErrValidation)
	}
	// Count characters, not bytes, so multibyte instructions are measured
	// the same as ASCII ones.
	if utf8.RuneCountInString(strings.TrimSpace(r.Instructions)) < minInstructionsLen {
		return fmt.Errorf("%w: instructions must be at least %d characters long", pkgerrors.ErrValidation, minInstructionsLen)
	}
	return nil
}

// MarshalJSON emits the allow-listed fields only. The owning user is never
// embedded under a recipe.
func (r Recipe) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID                int64  `json:"id"`
		Title             string `json:"title"`
		Instructions      string `json:"instructions"`
		MinutesToComplete *int   `json:"minutes_to_complete"`
		UserID            *int64 `json:"user_id"`
	}{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID,
	})
}
