package repository

import (
	"context"

	"recipebox/internal/models"
)

type RecipeRepository interface {
	// Create inserts the recipe and fills in ID and CreatedAt.
	Create(ctx context.Context, recipe *models.Recipe) error
	// ListByUser returns the user's recipes in store-native order.
	ListByUser(ctx context.Context, userID int64) ([]models.Recipe, error)
}
