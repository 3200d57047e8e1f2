package services

import (
	"context"

	"github.com/TanpaKamil/admin/internal/models"
)

// UserStore is the slice of the user repository the services need.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// ModuleStore is the slice of the module repository the services need.
type ModuleStore interface {
	List(ctx context.Context) ([]models.Module, error)
	GetByID(ctx context.Context, id string) (*models.Module, error)
	SetActive(ctx context.Context, id string, active bool) (*models.Module, error)
	ToggleRecommended(ctx context.Context, id string) (*models.Module, error)
	Count(ctx context.Context) (int64, error)
	CountByActive(ctx context.Context, active bool) (int64, error)
}
