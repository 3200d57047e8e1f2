package services

import (
	"context"

	"github.com/TanpaKamil/admin/internal/utils"
)

type DashboardService struct {
	users   UserStore
	modules ModuleStore
}

type Stats struct {
	TotalUsers      int64 `json:"totalUsers"`
	ActiveModules   int64 `json:"activeModules"`
	InactiveModules int64 `json:"inactiveModules"`
	TotalModules    int64 `json:"totalModules"`
}

func NewDashboardService(users UserStore, modules ModuleStore) *DashboardService {
	return &DashboardService{users: users, modules: modules}
}

// Stats derives the four dashboard counts with independent queries. There is
// no shared snapshot: writes racing between the counts can skew them against
// each other for one response.
func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, utils.StorageError("Internal Server Error")
	}

	activeModules, err := s.modules.CountByActive(ctx, true)
	if err != nil {
		return nil, utils.StorageError("Internal Server Error")
	}

	inactiveModules, err := s.modules.CountByActive(ctx, false)
	if err != nil {
		return nil, utils.StorageError("Internal Server Error")
	}

	totalModules, err := s.modules.Count(ctx)
	if err != nil {
		return nil, utils.StorageError("Internal Server Error")
	}

	return &Stats{
		TotalUsers:      totalUsers,
		ActiveModules:   activeModules,
		InactiveModules: inactiveModules,
		TotalModules:    totalModules,
	}, nil
}
