package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	stderrors "errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"recipebox/internal/infrastructure/kafka"
	"recipebox/internal/infrastructure/session"
	"recipebox/internal/models"
	"recipebox/internal/repository"
	pkgerrors "recipebox/pkg/errors"
)

const tracerName = "recipebox"

// SignupInput carries the signup form fields. Bio and ImageURL are optional.
type SignupInput struct {
	Username string
	Password string
	Bio      *string
	ImageURL *string
}

// RecipeInput carries the recipe creation fields.
type RecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete *int
}

// RecipeBoxService is the application core: signup/login/logout sessions
// plus per-user recipe listing and creation.
type RecipeBoxService interface {
	// Signup creates the user and signs them in, returning the new session
	// token alongside the user.
	Signup(ctx context.Context, in SignupInput) (*models.User, string, error)
	// Login verifies credentials and opens a session. Unknown username and
	// wrong password both come back as ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	// CurrentUser resolves the signed-in user; a stale id (user deleted
	// since the session was opened) comes back as ErrUserNotFound.
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
	ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, userID int64, in RecipeInput) (*models.Recipe, error)
	// DeleteAccount removes the user, their recipes (cascade) and the
	// session the request arrived with.
	DeleteAccount(ctx context.Context, userID int64, token string) error
}

type recipeBoxService struct {
	users          repository.UserRepository
	recipes        repository.RecipeRepository
	sessions       session.Store
	hasher         models.PasswordHasher
	userProducer   kafka.EventProducer
	recipeProducer kafka.EventProducer
}

func NewRecipeBoxService(
	users repository.UserRepository,
	recipes repository.RecipeRepository,
	sessions session.Store,
	hasher models.PasswordHasher,
	userProducer kafka.EventProducer,
	recipeProducer kafka.EventProducer,
) *recipeBoxService {
	return &recipeBoxService{
		users:          users,
		recipes:        recipes,
		sessions:       sessions,
		hasher:         hasher,
		userProducer:   userProducer,
		recipeProducer: recipeProducer,
	}
}

func (s *recipeBoxService) Signup(ctx context.Context, in SignupInput) (*models.User, string, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "Signup")
	defer span.End()

	user := &models.User{
		Username: in.Username,
		Bio:      in.Bio,
		ImageURL: in.ImageURL,
	}
	if err := user.SetPassword(in.Password, s.hasher); err != nil {
		span.SetStatus(codes.Error, "invalid password")
		return nil, "", err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if stderrors.Is(err, pkgerrors.ErrUsernameExists) {
			span.SetStatus(codes.Error, "username already exists")
			slog.Warn("signup rejected, username taken", "username", in.Username)
			return nil, "", err
		}
		if stderrors.Is(err, pkgerrors.ErrValidation) {
			span.SetStatus(codes.Error, "validation failed")
			return nil, "", err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "user creation failed")
		slog.Error("failed to create user", "username", in.Username, "error", err)
		return nil, "", fmt.Errorf("%w: failed to create user", pkgerrors.ErrInternal)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "session creation failed")
		slog.Error("failed to open session after signup", "user_id", user.ID, "error", err)
		return nil, "", fmt.Errorf("%w: failed to open session", pkgerrors.ErrInternal)
	}

	s.publishEvent(s.userProducer, user.ID, map[string]interface{}{
		"event_type": "user_registered",
		"user_id":    user.ID,
		"username":   user.Username,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})

	slog.Info("user signed up", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

func (s *recipeBoxService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	if username == "" || password == "" {
		span.SetStatus(codes.Error, "missing credentials")
		return nil, "", pkgerrors.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		// Same answer for unknown username and wrong password.
		span.SetStatus(codes.Error, "invalid credentials")
		slog.Warn("login failed", "username", username)
		return nil, "", pkgerrors.ErrInvalidCredentials
	}

	if !user.Authenticate(password, s.hasher) {
		span.SetStatus(codes.Error, "invalid credentials")
		slog.Warn("login failed", "username", username)
		return nil, "", pkgerrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "session creation failed")
		slog.Error("failed to open session", "user_id", user.ID, "error", err)
		return nil, "", fmt.Errorf("%w: failed to open session", pkgerrors.ErrInternal)
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

func (s *recipeBoxService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		slog.Error("failed to delete session", "error", err)
		return fmt.Errorf("%w: failed to delete session", pkgerrors.ErrInternal)
	}
	return nil
}

func (s *recipeBoxService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, pkgerrors.ErrUserNotFound) {
			return nil, err
		}
		slog.Error("failed to load current user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: failed to load user", pkgerrors.ErrInternal)
	}
	return user, nil
}

func (s *recipeBoxService) ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "ListRecipes")
	defer span.End()

	recipes, err := s.recipes.ListByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "recipe listing failed")
		slog.Error("failed to list recipes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: failed to list recipes", pkgerrors.ErrInternal)
	}
	return recipes, nil
}

func (s *recipeBoxService) CreateRecipe(ctx context.Context, userID int64, in RecipeInput) (*models.Recipe, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "CreateRecipe")
	defer span.End()

	recipe := &models.Recipe{
		Title:             in.Title,
		Instructions:      in.Instructions,
		MinutesToComplete: in.MinutesToComplete,
		UserID:            &userID,
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		if stderrors.Is(err, pkgerrors.ErrValidation) {
			span.SetStatus(codes.Error, "validation failed")
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "recipe creation failed")
		slog.Error("failed to create recipe", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: failed to create recipe", pkgerrors.ErrInternal)
	}

	s.publishEvent(s.recipeProducer, recipe.ID, map[string]interface{}{
		"event_type": "recipe_created",
		"recipe_id":  recipe.ID,
		"user_id":    userID,
		"title":      recipe.Title,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	})

	slog.Info("recipe created", "recipe_id", recipe.ID, "user_id", userID)
	return recipe, nil
}

func (s *recipeBoxService) DeleteAccount(ctx context.Context, userID int64, token string) error {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "DeleteAccount")
	defer span.End()

	if err := s.users.Delete(ctx, userID); err != nil {
		if stderrors.Is(err, pkgerrors.ErrUserNotFound) {
			span.SetStatus(codes.Error, "user not found")
			return err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "user deletion failed")
		slog.Error("failed to delete user", "user_id", userID, "error", err)
		return fmt.Errorf("%w: failed to delete user", pkgerrors.ErrInternal)
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		// The account is gone; a leftover session only points at a dead id.
		slog.Error("failed to delete session after account deletion", "user_id", userID, "error", err)
	}

	s.publishEvent(s.userProducer, userID, map[string]interface{}{
		"event_type": "account_deleted",
		"user_id":    userID,
		"deleted_at": time.Now().UTC().Format(time.RFC3339),
	})

	slog.Info("account deleted", "user_id", userID)
	return nil
}

// publishEvent sends asynchronously with bounded retries so a broker outage
// never blocks or fails the request.
func (s *recipeBoxService) publishEvent(producer kafka.EventProducer, key int64, event map[string]interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal event", "event_type", event["event_type"], "error", err)
		return
	}
	go func() {
		const retries = 3
		for i := 0; i < retries; i++ {
			if err := producer.Send(context.Background(), key, payload); err == nil {
				return
			}
			time.Sleep(time.Second * time.Duration(i+1))
		}
		slog.Error("failed to send event after retries", "event_type", event["event_type"], "key", key)
	}()
}
