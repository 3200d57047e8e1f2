package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TanpaKamil/admin/internal/models"
	"github.com/TanpaKamil/admin/internal/repo"
)

// In-memory stand-ins for the mongo repositories. Error injection lets the
// tests exercise the storage failure paths without a database.

type memUserStore struct {
	mu      sync.Mutex
	users   map[string]models.User
	nextErr error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]models.User)}
}

func (s *memUserStore) add(u models.User) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users[u.ID.Hex()] = u
	return u.ID.Hex()
}

func (s *memUserStore) takeErr() error {
	err := s.nextErr
	s.nextErr = nil
	return err
}

func (s *memUserStore) List(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return nil, err
	}
	for _, u := range s.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return nil, err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := u
	return &copied, nil
}

func (s *memUserStore) UpdateStatus(_ context.Context, id string, status models.UserStatus) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return nil, err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	u.Status = status
	s.users[id] = u
	copied := u
	return &copied, nil
}

func (s *memUserStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return 0, err
	}
	return int64(len(s.users)), nil
}

type memModuleStore struct {
	mu      sync.Mutex
	modules map[string]models.Module
	nextErr error
}

func newMemModuleStore() *memModuleStore {
	return &memModuleStore{modules: make(map[string]models.Module)}
}

func (s *memModuleStore) add(m models.Module) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	s.modules[m.ID.Hex()] = m
	return m.ID.Hex()
}

func (s *memModuleStore) takeErr() error {
	err := s.nextErr
	s.nextErr = nil
	return err
}

func (s *memModuleStore) List(_ context.Context) ([]models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return nil, err
	}
	out := make([]models.Module, 0, len(s.modules))
	for _, m := range s.modules {
		out = append(out, m)
	}
	return out, nil
}

func (s *memModuleStore) GetByID(_ context.Context, id string) (*models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return nil, err
	}
	m, ok := s.modules[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := m
	return &copied, nil
}

func (s *memModuleStore) SetActive(_ context.Context, id string, active bool) (*models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return nil, err
	}
	m, ok := s.modules[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	m.IsActive = active
	s.modules[id] = m
	copied := m
	return &copied, nil
}

func (s *memModuleStore) ToggleRecommended(_ context.Context, id string) (*models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return nil, err
	}
	m, ok := s.modules[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	m.Recommended = !m.Recommended
	s.modules[id] = m
	copied := m
	return &copied, nil
}

func (s *memModuleStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return 0, err
	}
	return int64(len(s.modules)), nil
}

func (s *memModuleStore) CountByActive(_ context.Context, active bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return 0, err
	}
	var count int64
	for _, m := range s.modules {
		if m.IsActive == active {
			count++
		}
	}
	return count, nil
}
