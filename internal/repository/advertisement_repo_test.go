package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"adboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvertisementRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAdvertisementRepository(mock)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(insertAdvertisementSQL)).
		WithArgs("header x", "description 2", int64(8)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), created))

	ad := &model.Advertisement{Header: "header x", Description: "description 2", OwnerID: 8}
	err := repo.Create(context.Background(), ad)

	require.NoError(t, err)
	assert.Equal(t, int64(3), ad.ID)
	assert.Equal(t, created, ad.CreatedAt)
}

func TestAdvertisementRepository_Create_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "duplicate header", code: pgUniqueViolation, wantErr: ErrUniqueViolation},
		{name: "unknown owner", code: pgForeignKeyViolation, wantErr: ErrForeignKeyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewAdvertisementRepository(mock)

			mock.ExpectQuery(regexp.QuoteMeta(insertAdvertisementSQL)).
				WithArgs("h", "d", int64(1)).
				WillReturnError(&pgconn.PgError{Code: tt.code})

			err := repo.Create(context.Background(), &model.Advertisement{Header: "h", Description: "d", OwnerID: 1})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAdvertisementRepository_FindByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAdvertisementRepository(mock)
	created := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta(selectAdvertisementSQL)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "header", "description", "created_at", "owner_id"}).
			AddRow(int64(3), "header x", "description 2", created, int64(8)))
	mock.ExpectQuery(regexp.QuoteMeta(selectAdvertisementSQL)).
		WithArgs(int64(4)).
		WillReturnError(pgx.ErrNoRows)

	ad, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, ad)
	assert.Equal(t, "header x", ad.Header)
	assert.Equal(t, int64(8), ad.OwnerID)
	assert.Equal(t, created, ad.CreatedAt)

	missing, err := repo.FindByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAdvertisementRepository_Update(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAdvertisementRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(updateAdvertisementSQL)).
		WithArgs("new_header", "description 2", int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(updateAdvertisementSQL)).
		WithArgs("taken", "description 2", int64(3)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	ad := &model.Advertisement{ID: 3, Header: "new_header", Description: "description 2"}
	assert.NoError(t, repo.Update(context.Background(), ad))

	ad.Header = "taken"
	assert.ErrorIs(t, repo.Update(context.Background(), ad), ErrUniqueViolation)
}

func TestAdvertisementRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAdvertisementRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(deleteAdvertisementSQL)).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteAdvertisementSQL)).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.Delete(context.Background(), 2))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), ErrNotFound)
}
