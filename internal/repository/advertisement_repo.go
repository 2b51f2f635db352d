package repository

import (
	"context"
	"errors"
	"fmt"

	"adboard/internal/model"

	"github.com/jackc/pgx/v5"
)

// AdvertisementRepository defines operations for advertisement data
type AdvertisementRepository interface {
	Create(ctx context.Context, ad *model.Advertisement) error
	FindByID(ctx context.Context, id int64) (*model.Advertisement, error)
	Update(ctx context.Context, ad *model.Advertisement) error
	Delete(ctx context.Context, id int64) error
}

const (
	insertAdvertisementSQL = `INSERT INTO advertisements (header, description, owner_id)
            VALUES ($1, $2, $3) RETURNING id, created_at`
	selectAdvertisementSQL = `SELECT id, header, description, created_at, owner_id FROM advertisements WHERE id = $1`
	updateAdvertisementSQL = `UPDATE advertisements SET header = $1, description = $2 WHERE id = $3`
	deleteAdvertisementSQL = `DELETE FROM advertisements WHERE id = $1`
)

type advertisementRepository struct {
	db PgxQuerier
}

// NewAdvertisementRepository creates a Postgres backed AdvertisementRepository
func NewAdvertisementRepository(db PgxQuerier) AdvertisementRepository {
	return &advertisementRepository{db: db}
}

// Create inserts a new advertisement
func (r *advertisementRepository) Create(ctx context.Context, ad *model.Advertisement) error {
	err := r.db.QueryRow(ctx, insertAdvertisementSQL, ad.Header, ad.Description, ad.OwnerID).Scan(&ad.ID, &ad.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create advertisement: %w", translatePgError(err))
	}
	return nil
}

// FindByID retrieves an advertisement by ID, returning nil when it does not exist
func (r *advertisementRepository) FindByID(ctx context.Context, id int64) (*model.Advertisement, error) {
	ad := &model.Advertisement{}
	err := r.db.QueryRow(ctx, selectAdvertisementSQL, id).Scan(&ad.ID, &ad.Header, &ad.Description, &ad.CreatedAt, &ad.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find advertisement by ID: %w", err)
	}
	return ad, nil
}

// Update writes header and description
func (r *advertisementRepository) Update(ctx context.Context, ad *model.Advertisement) error {
	cmdTag, err := r.db.Exec(ctx, updateAdvertisementSQL, ad.Header, ad.Description, ad.ID)
	if err != nil {
		return fmt.Errorf("failed to update advertisement: %w", translatePgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update advertisement %d: %w", ad.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an advertisement
func (r *advertisementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, deleteAdvertisementSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete advertisement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete advertisement %d: %w", id, ErrNotFound)
	}
	return nil
}
