package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"recipebox/internal/models"
	repository "recipebox/internal/repository/postgres"
	pkgerrors "recipebox/pkg/errors"
)

// stubHasher keeps repository tests free of bcrypt work.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (stubHasher) Check(password, hash string) bool     { return "hashed:"+password == hash }

func newUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username}
	assert.NoError(t, user.SetPassword("secret", stubHasher{}))
	return user
}

func TestPostgresUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresUserRepository(db)
	ctx := context.Background()

	t.Run("NilUser", func(t *testing.T) {
		err := repo.Create(ctx, nil)
		assert.ErrorIs(t, err, pkgerrors.ErrNilUser)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success", func(t *testing.T) {
		user := newUser(t, "ana")
		createdAt := time.Now().UTC()
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, password_hash, bio, image_url) VALUES ($1, $2, $3, $4) RETURNING id, created_at`)).
			WithArgs("ana", "hashed:secret", nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))
		mock.ExpectCommit()

		err := repo.Create(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, createdAt, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		user := newUser(t, "ana")
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs("ana", "hashed:secret", nil, nil).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, pkgerrors.ErrUsernameExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BlankUsername", func(t *testing.T) {
		user := newUser(t, "   ")
		err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MissingHash", func(t *testing.T) {
		user := &models.User{Username: "ana"}
		err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackError", func(t *testing.T) {
		user := newUser(t, "ana")
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs("ana", "hashed:secret", nil, nil).
			WillReturnError(fmt.Errorf("database error"))
		mock.ExpectRollback().WillReturnError(fmt.Errorf("rollback error"))

		err := repo.Create(ctx, user)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rollback failed")
		assert.Contains(t, err.Error(), "database error")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CommitError", func(t *testing.T) {
		user := newUser(t, "ana")
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs("ana", "hashed:secret", nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now())).
			RowsWillBeClosed()
		mock.ExpectCommit().WillReturnError(fmt.Errorf("commit error"))

		err := repo.Create(ctx, user)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to commit transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresUserRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta(`SELECT id, username, password_hash, bio, image_url, created_at FROM users WHERE username = $1`)

	t.Run("Success", func(t *testing.T) {
		bio := "home cook"
		createdAt := time.Now().UTC()
		mock.ExpectQuery(query).
			WithArgs("ana").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "bio", "image_url", "created_at"}).
				AddRow(int64(1), "ana", "hashed:secret", bio, nil, createdAt))

		user, err := repo.GetByUsername(ctx, "ana")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "ana", user.Username)
		assert.Equal(t, &bio, user.Bio)
		assert.Nil(t, user.ImageURL)
		// The hash round-trips through the scan without being readable.
		assert.True(t, user.Authenticate("secret", stubHasher{}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyUsername", func(t *testing.T) {
		user, err := repo.GetByUsername(ctx, "")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, pkgerrors.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UserNotFound", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByUsername(ctx, "ghost")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, pkgerrors.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("ana").
			WillReturnError(fmt.Errorf("database error"))

		user, err := repo.GetByUsername(ctx, "ana")
		assert.Nil(t, user)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get user by username")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresUserRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta(`SELECT id, username, bio, image_url, created_at FROM users WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		createdAt := time.Now().UTC()
		mock.ExpectQuery(query).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "bio", "image_url", "created_at"}).
				AddRow(int64(1), "ana", nil, nil, createdAt))

		user, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "ana", user.Username)
		assert.Nil(t, user.Bio)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UserNotFound", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(77)).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(ctx, 77)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, pkgerrors.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()
	repo := repository.NewPostgresUserRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UserNotFound", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(int64(77)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(ctx, 77)
		assert.ErrorIs(t, err, pkgerrors.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(int64(1)).
			WillReturnError(fmt.Errorf("database error"))
		mock.ExpectRollback()

		err := repo.Delete(ctx, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete user")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
