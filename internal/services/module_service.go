package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/TanpaKamil/admin/internal/models"
	"github.com/TanpaKamil/admin/internal/repo"
	"github.com/TanpaKamil/admin/internal/utils"
)

type ModuleService struct {
	modules ModuleStore
}

func NewModuleService(modules ModuleStore) *ModuleService {
	return &ModuleService{modules: modules}
}

func (s *ModuleService) List(ctx context.Context) ([]models.ModuleSummary, error) {
	modules, err := s.modules.List(ctx)
	if err != nil {
		return nil, utils.StorageError("Internal Server Error")
	}

	summaries := make([]models.ModuleSummary, 0, len(modules))
	for i := range modules {
		summaries = append(summaries, modules[i].Summary())
	}
	return summaries, nil
}

func (s *ModuleService) Get(ctx context.Context, id string) (*models.Module, error) {
	if err := validateModuleID(id); err != nil {
		return nil, err
	}

	module, err := s.modules.GetByID(ctx, id)
	if err != nil {
		return nil, moduleError(err)
	}
	return module, nil
}

func (s *ModuleService) SetActive(ctx context.Context, id string, active bool) (*models.Module, error) {
	if err := validateModuleID(id); err != nil {
		return nil, err
	}

	module, err := s.modules.SetActive(ctx, id, active)
	if err != nil {
		return nil, moduleError(err)
	}
	return module, nil
}

func (s *ModuleService) ToggleRecommended(ctx context.Context, id string) (*models.Module, error) {
	if err := validateModuleID(id); err != nil {
		return nil, err
	}

	module, err := s.modules.ToggleRecommended(ctx, id)
	if err != nil {
		return nil, moduleError(err)
	}
	return module, nil
}

func validateModuleID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return utils.ValidationError("Invalid module ID")
	}
	return nil
}

func moduleError(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return utils.NotFound("Module not found")
	}
	return utils.StorageError("Internal Server Error")
}
