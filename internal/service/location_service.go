package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"campus-connect/internal/dto"
	"campus-connect/internal/query"
	"campus-connect/internal/repository"
)

// ── 地图模块业务错误 ──

var (
	ErrLocationNotFound = errors.New("地点不存在")
)

// LocationService 校园地图业务接口（只读）
type LocationService interface {
	List(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LocationResponse, error)
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *locationService) List(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("列出地点失败", zap.Error(err))
		return nil, err
	}

	matched := query.SearchLocations(locations, req.Search)
	result := make([]dto.LocationResponse, 0, len(matched))
	for i := range matched {
		result = append(result, toLocationResponse(&matched[i]))
	}

	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *locationService) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("查询地点失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toLocationResponse(loc)
	return &resp, nil
}
