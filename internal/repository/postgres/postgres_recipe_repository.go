package repository

import (
	"context"
	"database/sql"
	"fmt"

	"recipebox/internal/models"
	pkgerrors "recipebox/pkg/errors"
)

type PostgresRecipeRepository struct {
	db *sql.DB
}

func NewPostgresRecipeRepository(db *sql.DB) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

func (r *PostgresRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe == nil {
		return pkgerrors.ErrNilRecipe
	}
	if err := recipe.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
	INSERT INTO recipes (title, instructions, minutes_to_complete, user_id)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at
	`
	err = tx.QueryRowContext(
		ctx,
		query,
		recipe.Title,
		recipe.Instructions,
		recipe.MinutesToComplete,
		recipe.UserID,
	).Scan(&recipe.ID, &recipe.CreatedAt)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *PostgresRecipeRepository) ListByUser(ctx context.Context, userID int64) ([]models.Recipe, error) {
	query := `SELECT id, title, instructions, minutes_to_complete, user_id, created_at FROM recipes WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		var recipe models.Recipe
		if err := rows.Scan(
			&recipe.ID,
			&recipe.Title,
			&recipe.Instructions,
			&recipe.MinutesToComplete,
			&recipe.UserID,
			&recipe.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	return recipes, nil
}
