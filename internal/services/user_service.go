package services

import (
	"context"
	"errors"

	"github.com/TanpaKamil/admin/internal/models"
	"github.com/TanpaKamil/admin/internal/repo"
	"github.com/TanpaKamil/admin/internal/utils"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// List returns every user with optional fields defaulted. The password hash
// never leaves the model's json:"-" field. An empty directory is a 404, per
// the API contract.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.StorageError("Internal Server Error")
	}
	if len(users) == 0 {
		return nil, utils.NotFound("No users found")
	}

	for i := range users {
		users[i].ApplyDefaults()
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, userError(err)
	}
	user.ApplyDefaults()
	return user, nil
}

func (s *UserService) SetStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error) {
	if !status.Valid() {
		return nil, utils.ValidationError("Invalid status value")
	}

	user, err := s.users.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, userError(err)
	}
	user.ApplyDefaults()
	return user, nil
}

func userError(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return utils.NotFound("User not found")
	}
	return utils.StorageError("Internal Server Error")
}
