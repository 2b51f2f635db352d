package repository

import (
	"context"
	"errors"
	"fmt"

	"adboard/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

const (
	insertUserSQL = `INSERT INTO "user" (username, password) VALUES ($1, $2) RETURNING id, registration_time`
	selectUserSQL = `SELECT id, username, password, registration_time FROM "user" WHERE id = $1`
	updateUserSQL = `UPDATE "user" SET username = $1, password = $2 WHERE id = $3`
	deleteUserSQL = `DELETE FROM "user" WHERE id = $1`
)

type userRepository struct {
	db PgxQuerier
}

// NewUserRepository creates a Postgres backed UserRepository
func NewUserRepository(db PgxQuerier) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user; the database assigns id and registration_time
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.QueryRow(ctx, insertUserSQL, user.Username, user.PasswordHash).Scan(&user.ID, &user.RegistrationTime)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", translatePgError(err))
	}
	return nil
}

// FindByID retrieves a user by ID, returning nil when it does not exist
func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRow(ctx, selectUserSQL, id).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.RegistrationTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// Update writes the mutable user columns; registration_time is never touched
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	cmdTag, err := r.db.Exec(ctx, updateUserSQL, user.Username, user.PasswordHash, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", translatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update user %d: %w", user.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a user; their advertisements go with them via ON DELETE CASCADE
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, deleteUserSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete user %d: %w", id, ErrNotFound)
	}
	return nil
}
