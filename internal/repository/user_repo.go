package repository

import (
	"context"

	"campus-connect/internal/model"
)

// UserRepository 当前学生信息（只读）
type UserRepository interface {
	GetCurrent(ctx context.Context) (*model.User, error)
}

type userRepo struct {
	s *Session
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(s *Session) UserRepository {
	return &userRepo{s: s}
}

func (r *userRepo) GetCurrent(_ context.Context) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u := r.s.user
	return &u, nil
}
