// Command seed resets the database and loads a small set of sample users
// and recipes for local development.
package main

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"recipebox/internal/config"
	"recipebox/internal/infrastructure/auth"
	"recipebox/internal/models"
	core "recipebox/internal/repository/postgres"
)

type seedRecipe struct {
	title        string
	instructions string
	minutes      int
}

var samples = map[string][]seedRecipe{
	"ana": {
		{
			title:        "Tomato Soup",
			instructions: "Chop the tomatoes and onion, sweat them in olive oil, add stock, simmer for twenty minutes, then blend until smooth and season to taste.",
			minutes:      35,
		},
		{
			title:        "Garlic Bread",
			instructions: "Mix softened butter with minced garlic and parsley, spread generously over a halved baguette, and bake at 200C until golden and crisp.",
			minutes:      15,
		},
	},
	"ben": {
		{
			title:        "Overnight Oats",
			instructions: "Combine rolled oats with milk and yogurt in a jar, stir in honey and a pinch of salt, refrigerate overnight, and top with fruit before serving.",
			minutes:      10,
		},
	},
}

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := core.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Start from a clean slate; recipes go via the FK cascade.
	if _, err := db.ExecContext(ctx, `TRUNCATE users RESTART IDENTITY CASCADE`); err != nil {
		log.Fatalf("Failed to truncate tables: %v", err)
	}

	userRepo := core.NewPostgresUserRepository(db)
	recipeRepo := core.NewPostgresRecipeRepository(db)
	hasher := auth.NewHasher()

	for username, recipes := range samples {
		user := &models.User{Username: username}
		if err := user.SetPassword("password", hasher); err != nil {
			log.Fatalf("Failed to set password for %s: %v", username, err)
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to seed user %s: %v", username, err)
		}

		for _, r := range recipes {
			minutes := r.minutes
			recipe := &models.Recipe{
				Title:             r.title,
				Instructions:      r.instructions,
				MinutesToComplete: &minutes,
				UserID:            &user.ID,
			}
			if err := recipeRepo.Create(ctx, recipe); err != nil {
				log.Fatalf("Failed to seed recipe %q: %v", r.title, err)
			}
		}

		log.Printf("Seeded user %s (id %d) with %d recipes", username, user.ID, len(recipes))
	}
}
