package repository

import (
	"context"

	"campus-connect/internal/model"
)

// VenueRepository 场地数据访问接口（只读）
type VenueRepository interface {
	List(ctx context.Context) ([]model.Venue, error)
	GetByID(ctx context.Context, id string) (*model.Venue, error)
}

type venueRepo struct {
	s *Session
}

// NewVenueRepo 创建 VenueRepository 实例
func NewVenueRepo(s *Session) VenueRepository {
	return &venueRepo{s: s}
}

func (r *venueRepo) List(_ context.Context) ([]model.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return snapshot(r.s.venues, true), nil
}

func (r *venueRepo) GetByID(_ context.Context, id string) (*model.Venue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.venues {
		if r.s.venues[i].ID == id {
			v := snapshot(r.s.venues[i:i+1], true)[0]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}
