package service

import (
	"context"
	"errors"
	"fmt"

	"adboard/internal/model"
	"adboard/internal/repository"
)

var (
	ErrAdvertisementNotFound      = errors.New("advertisement not found")
	ErrAdvertisementAlreadyExists = errors.New("advertisement already exists")
	ErrOwnerNotFound              = errors.New("owner user does not exist")
)

// AdvertisementService provides advertisement CRUD
type AdvertisementService interface {
	GetAdvertisement(ctx context.Context, id int64) (*model.Advertisement, error)
	CreateAdvertisement(ctx context.Context, req model.CreateAdvertisementRequest) (*model.Advertisement, error)
	UpdateAdvertisement(ctx context.Context, id int64, req model.UpdateAdvertisementRequest) error
	DeleteAdvertisement(ctx context.Context, id int64) error
}

type advertisementService struct {
	repo     repository.AdvertisementRepository
	userRepo repository.UserRepository
}

// NewAdvertisementService creates a new AdvertisementService
func NewAdvertisementService(repo repository.AdvertisementRepository, userRepo repository.UserRepository) AdvertisementService {
	return &advertisementService{repo: repo, userRepo: userRepo}
}

func (s *advertisementService) GetAdvertisement(ctx context.Context, id int64) (*model.Advertisement, error) {
	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find advertisement by ID: %w", err)
	}
	if ad == nil {
		return nil, ErrAdvertisementNotFound
	}
	return ad, nil
}

// CreateAdvertisement checks the owner exists before inserting. The foreign key
// still catches an owner deleted between the check and the insert.
func (s *advertisementService) CreateAdvertisement(ctx context.Context, req model.CreateAdvertisementRequest) (*model.Advertisement, error) {
	owner, err := s.userRepo.FindByID(ctx, req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	ad := &model.Advertisement{
		Header:      req.Header,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	}
	if err := s.repo.Create(ctx, ad); err != nil {
		switch {
		case errors.Is(err, repository.ErrUniqueViolation):
			return nil, ErrAdvertisementAlreadyExists
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to create advertisement in repository: %w", err)
	}
	return ad, nil
}

func (s *advertisementService) UpdateAdvertisement(ctx context.Context, id int64, req model.UpdateAdvertisementRequest) error {
	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find advertisement for update: %w", err)
	}
	if ad == nil {
		return ErrAdvertisementNotFound
	}

	if req.Header != nil {
		ad.Header = *req.Header
	}
	if req.Description != nil {
		ad.Description = *req.Description
	}

	if err := s.repo.Update(ctx, ad); err != nil {
		switch {
		case errors.Is(err, repository.ErrUniqueViolation):
			return ErrAdvertisementAlreadyExists
		case errors.Is(err, repository.ErrNotFound):
			return ErrAdvertisementNotFound
		}
		return fmt.Errorf("failed to update advertisement in repository: %w", err)
	}
	return nil
}

func (s *advertisementService) DeleteAdvertisement(ctx context.Context, id int64) error {
	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find advertisement for deletion: %w", err)
	}
	if ad == nil {
		return ErrAdvertisementNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdvertisementNotFound
		}
		return fmt.Errorf("failed to delete advertisement in repository: %w", err)
	}
	return nil
}
