package service

import (
	"context"

	"go.uber.org/zap"

	"campus-connect/internal/dto"
	"campus-connect/internal/repository"
)

// UserService 当前学生信息业务接口
type UserService interface {
	GetCurrentUser(ctx context.Context) (*dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	u, err := s.repo.User.GetCurrent(ctx)
	if err != nil {
		s.logger.Error("查询当前用户失败", zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}
