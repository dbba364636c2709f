package repository

import (
	"context"

	"recipebox/internal/models"
)

type UserRepository interface {
	// Create inserts the user and fills in ID and CreatedAt. A username
	// collision surfaces as pkgerrors.ErrUsernameExists.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Delete removes the user; owned recipes go with it (FK cascade).
	Delete(ctx context.Context, id int64) error
}
