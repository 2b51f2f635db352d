package service_test

import (
	"context"
	"fmt"
	"testing"

	"adboard/internal/model"
	"adboard/internal/repository"
	"adboard/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdvertisementService(t *testing.T) (service.AdvertisementService, *mockAdvertisementRepository, int64) {
	t.Helper()
	users := newMockUserRepo()
	owner := &model.User{Username: "owner", PasswordHash: "hash"}
	require.NoError(t, users.Create(context.Background(), owner))

	ads := newMockAdvertisementRepo()
	return service.NewAdvertisementService(ads, users), ads, owner.ID
}

func TestAdvertisementService_CreateAndGet(t *testing.T) {
	svc, _, ownerID := newAdvertisementService(t)
	ctx := context.Background()

	ad, err := svc.CreateAdvertisement(ctx, model.CreateAdvertisementRequest{Header: "header x", Description: "description 2", OwnerID: ownerID})
	require.NoError(t, err)
	assert.Positive(t, ad.ID)

	found, err := svc.GetAdvertisement(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, "header x", found.Header)
	assert.Equal(t, ownerID, found.OwnerID)
}

func TestAdvertisementService_Create_UnknownOwner(t *testing.T) {
	svc, ads, _ := newAdvertisementService(t)

	_, err := svc.CreateAdvertisement(context.Background(), model.CreateAdvertisementRequest{Header: "h", Description: "d", OwnerID: 999999})
	assert.ErrorIs(t, err, service.ErrOwnerNotFound)
	assert.Empty(t, ads.ads)
}

func TestAdvertisementService_Create_OwnerDeletedConcurrently(t *testing.T) {
	svc, ads, ownerID := newAdvertisementService(t)
	ads.createErr = fmt.Errorf("insert: %w", repository.ErrForeignKeyViolation)

	_, err := svc.CreateAdvertisement(context.Background(), model.CreateAdvertisementRequest{Header: "h", Description: "d", OwnerID: ownerID})
	assert.ErrorIs(t, err, service.ErrOwnerNotFound)
}

func TestAdvertisementService_Create_DuplicateHeader(t *testing.T) {
	svc, _, ownerID := newAdvertisementService(t)
	ctx := context.Background()

	_, err := svc.CreateAdvertisement(ctx, model.CreateAdvertisementRequest{Header: "h", Description: "d", OwnerID: ownerID})
	require.NoError(t, err)

	_, err = svc.CreateAdvertisement(ctx, model.CreateAdvertisementRequest{Header: "h", Description: "other", OwnerID: ownerID})
	assert.ErrorIs(t, err, service.ErrAdvertisementAlreadyExists)
}

func TestAdvertisementService_Update(t *testing.T) {
	svc, ads, ownerID := newAdvertisementService(t)
	ctx := context.Background()

	ad, err := svc.CreateAdvertisement(ctx, model.CreateAdvertisementRequest{Header: "h", Description: "d", OwnerID: ownerID})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAdvertisement(ctx, ad.ID, model.UpdateAdvertisementRequest{Header: strPtr("new_header")}))

	stored := ads.ads[ad.ID]
	assert.Equal(t, "new_header", stored.Header)
	assert.Equal(t, "d", stored.Description)
	assert.Equal(t, ownerID, stored.OwnerID)
	assert.Equal(t, ad.CreatedAt, stored.CreatedAt)

	err = svc.UpdateAdvertisement(ctx, 999999, model.UpdateAdvertisementRequest{Header: strPtr("x")})
	assert.ErrorIs(t, err, service.ErrAdvertisementNotFound)
}

func TestAdvertisementService_Update_DuplicateHeader(t *testing.T) {
	svc, _, ownerID := newAdvertisementService(t)
	ctx := context.Background()

	_, err := svc.CreateAdvertisement(ctx, model.CreateAdvertisementRequest{Header: "first", Description: "d", OwnerID: ownerID})
	require.NoError(t, err)
	second, err := svc.CreateAdvertisement(ctx, model.CreateAdvertisementRequest{Header: "second", Description: "d", OwnerID: ownerID})
	require.NoError(t, err)

	err = svc.UpdateAdvertisement(ctx, second.ID, model.UpdateAdvertisementRequest{Header: strPtr("first")})
	assert.ErrorIs(t, err, service.ErrAdvertisementAlreadyExists)
}

func TestAdvertisementService_Delete(t *testing.T) {
	svc, _, ownerID := newAdvertisementService(t)
	ctx := context.Background()

	ad, err := svc.CreateAdvertisement(ctx, model.CreateAdvertisementRequest{Header: "h", Description: "d", OwnerID: ownerID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdvertisement(ctx, ad.ID))

	_, err = svc.GetAdvertisement(ctx, ad.ID)
	assert.ErrorIs(t, err, service.ErrAdvertisementNotFound)
	assert.ErrorIs(t, svc.DeleteAdvertisement(ctx, ad.ID), service.ErrAdvertisementNotFound)
}
