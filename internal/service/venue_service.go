package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"campus-connect/internal/dto"
	"campus-connect/internal/query"
	"campus-connect/internal/repository"
)

// VenueService 场地查询业务接口（只读）
type VenueService interface {
	List(ctx context.Context, req *dto.VenueListRequest) ([]dto.VenueResponse, error)
	GetByID(ctx context.Context, id string) (*dto.VenueResponse, error)
}

type venueService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewVenueService 创建 VenueService 实例
func NewVenueService(repo *repository.Repository, logger *zap.Logger) VenueService {
	return &venueService{repo: repo, logger: logger}
}

func (s *venueService) List(ctx context.Context, req *dto.VenueListRequest) ([]dto.VenueResponse, error) {
	venues, err := s.repo.Venue.List(ctx)
	if err != nil {
		s.logger.Error("查询场地列表失败", zap.Error(err))
		return nil, err
	}

	filtered := query.FilterVenues(venues, req.Type)
	result := make([]dto.VenueResponse, 0, len(filtered))
	for i := range filtered {
		result = append(result, toVenueResponse(&filtered[i]))
	}
	return result, nil
}

func (s *venueService) GetByID(ctx context.Context, id string) (*dto.VenueResponse, error) {
	v, err := s.repo.Venue.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("查询场地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toVenueResponse(v)
	return &resp, nil
}
