package service_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"adboard/internal/model"
	"adboard/internal/repository"
)

// mockUserRepository implements repository.UserRepository in memory
type mockUserRepository struct {
	mu     sync.Mutex
	users  map[int64]model.User
	nextID int64
	err    error
}

func newMockUserRepo() *mockUserRepository {
	return &mockUserRepository{users: make(map[int64]model.User)}
}

func (m *mockUserRepository) usernameTaken(username string, except int64) bool {
	for id, u := range m.users {
		if id != except && u.Username == username {
			return true
		}
	}
	return false
}

func (m *mockUserRepository) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	if m.usernameTaken(user.Username, 0) {
		return fmt.Errorf("insert user: %w", repository.ErrUniqueViolation)
	}
	m.nextID++
	user.ID = m.nextID
	user.RegistrationTime = time.Now().UTC()
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepository) FindByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *mockUserRepository) Update(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	if m.usernameTaken(user.Username, user.ID) {
		return repository.ErrUniqueViolation
	}
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// mockAdvertisementRepository implements repository.AdvertisementRepository in memory
type mockAdvertisementRepository struct {
	mu     sync.Mutex
	ads    map[int64]model.Advertisement
	nextID int64
	// createErr is returned from Create when set
	createErr error
}

func newMockAdvertisementRepo() *mockAdvertisementRepository {
	return &mockAdvertisementRepository{ads: make(map[int64]model.Advertisement)}
}

func (m *mockAdvertisementRepository) headerTaken(header string, except int64) bool {
	for id, ad := range m.ads {
		if id != except && ad.Header == header {
			return true
		}
	}
	return false
}

func (m *mockAdvertisementRepository) Create(_ context.Context, ad *model.Advertisement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return m.createErr
	}
	if m.headerTaken(ad.Header, 0) {
		return repository.ErrUniqueViolation
	}
	m.nextID++
	ad.ID = m.nextID
	ad.CreatedAt = time.Now().UTC()
	m.ads[ad.ID] = *ad
	return nil
}

func (m *mockAdvertisementRepository) FindByID(_ context.Context, id int64) (*model.Advertisement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ad, ok := m.ads[id]
	if !ok {
		return nil, nil
	}
	return &ad, nil
}

func (m *mockAdvertisementRepository) Update(_ context.Context, ad *model.Advertisement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ads[ad.ID]; !ok {
		return repository.ErrNotFound
	}
	if m.headerTaken(ad.Header, ad.ID) {
		return repository.ErrUniqueViolation
	}
	m.ads[ad.ID] = *ad
	return nil
}

func (m *mockAdvertisementRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ads[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.ads, id)
	return nil
}
