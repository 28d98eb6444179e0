package repository

import (
	"context"

	"campus-connect/internal/model"
)

// LocationRepository 校园地图地点数据访问接口（只读）
type LocationRepository interface {
	List(ctx context.Context) ([]model.MapLocation, error)
	GetByID(ctx context.Context, id string) (*model.MapLocation, error)
}

type locationRepo struct {
	s *Session
}

// NewLocationRepo 创建 LocationRepository 实例
func NewLocationRepo(s *Session) LocationRepository {
	return &locationRepo{s: s}
}

func (r *locationRepo) List(_ context.Context) ([]model.MapLocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return snapshot(r.s.locations, false), nil
}

func (r *locationRepo) GetByID(_ context.Context, id string) (*model.MapLocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.locations {
		if r.s.locations[i].ID == id {
			loc := r.s.locations[i]
			return &loc, nil
		}
	}
	return nil, ErrNotFound
}
