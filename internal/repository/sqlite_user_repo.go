package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"adboard/internal/model"
)

const (
	sqliteInsertUserSQL = `INSERT INTO "user" (username, password, registration_time) VALUES (?, ?, ?)`
	sqliteSelectUserSQL = `SELECT id, username, password, registration_time FROM "user" WHERE id = ?`
	sqliteUpdateUserSQL = `UPDATE "user" SET username = ?, password = ? WHERE id = ?`
	sqliteDeleteUserSQL = `DELETE FROM "user" WHERE id = ?`
)

// sqliteUserRepository stores users in SQLite. Timestamps are unix seconds.
type sqliteUserRepository struct {
	db *sql.DB
}

var _ UserRepository = (*sqliteUserRepository)(nil)

// NewSQLiteUserRepository creates a SQLite backed UserRepository
func NewSQLiteUserRepository(db *sql.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

func (r *sqliteUserRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now().Unix()
	res, err := r.db.ExecContext(ctx, sqliteInsertUserSQL, user.Username, user.PasswordHash, now)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", translateSQLiteError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id
	user.RegistrationTime = time.Unix(now, 0).UTC()
	return nil
}

func (r *sqliteUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var (
		user       model.User
		registered int64
	)
	err := r.db.QueryRowContext(ctx, sqliteSelectUserSQL, id).Scan(&user.ID, &user.Username, &user.PasswordHash, &registered)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	user.RegistrationTime = time.Unix(registered, 0).UTC()
	return &user, nil
}

func (r *sqliteUserRepository) Update(ctx context.Context, user *model.User) error {
	res, err := r.db.ExecContext(ctx, sqliteUpdateUserSQL, user.Username, user.PasswordHash, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", translateSQLiteError(err))
	}
	return requireAffected(res, "update user", user.ID)
}

func (r *sqliteUserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, sqliteDeleteUserSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireAffected(res, "delete user", id)
}

func requireAffected(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("failed to %s %d: %w", op, id, ErrNotFound)
	}
	return nil
}
