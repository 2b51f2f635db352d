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
	sqliteInsertAdvertisementSQL = `INSERT INTO advertisements (header, description, created_at, owner_id) VALUES (?, ?, ?, ?)`
	sqliteSelectAdvertisementSQL = `SELECT id, header, description, created_at, owner_id FROM advertisements WHERE id = ?`
	sqliteUpdateAdvertisementSQL = `UPDATE advertisements SET header = ?, description = ? WHERE id = ?`
	sqliteDeleteAdvertisementSQL = `DELETE FROM advertisements WHERE id = ?`
)

type sqliteAdvertisementRepository struct {
	db *sql.DB
}

var _ AdvertisementRepository = (*sqliteAdvertisementRepository)(nil)

// NewSQLiteAdvertisementRepository creates a SQLite backed AdvertisementRepository
func NewSQLiteAdvertisementRepository(db *sql.DB) AdvertisementRepository {
	return &sqliteAdvertisementRepository{db: db}
}

func (r *sqliteAdvertisementRepository) Create(ctx context.Context, ad *model.Advertisement) error {
	now := time.Now().Unix()
	res, err := r.db.ExecContext(ctx, sqliteInsertAdvertisementSQL, ad.Header, ad.Description, now, ad.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to create advertisement: %w", translateSQLiteError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read advertisement id: %w", err)
	}
	ad.ID = id
	ad.CreatedAt = time.Unix(now, 0).UTC()
	return nil
}

func (r *sqliteAdvertisementRepository) FindByID(ctx context.Context, id int64) (*model.Advertisement, error) {
	var (
		ad      model.Advertisement
		created int64
	)
	err := r.db.QueryRowContext(ctx, sqliteSelectAdvertisementSQL, id).Scan(&ad.ID, &ad.Header, &ad.Description, &created, &ad.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find advertisement by ID: %w", err)
	}
	ad.CreatedAt = time.Unix(created, 0).UTC()
	return &ad, nil
}

func (r *sqliteAdvertisementRepository) Update(ctx context.Context, ad *model.Advertisement) error {
	res, err := r.db.ExecContext(ctx, sqliteUpdateAdvertisementSQL, ad.Header, ad.Description, ad.ID)
	if err != nil {
		return fmt.Errorf("failed to update advertisement: %w", translateSQLiteError(err))
	}
	return requireAffected(res, "update advertisement", ad.ID)
}

func (r *sqliteAdvertisementRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, sqliteDeleteAdvertisementSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete advertisement: %w", err)
	}
	return requireAffected(res, "delete advertisement", id)
}
