package service

import (
	"context"

	"go.uber.org/zap"

	"campus-connect/internal/dto"
	"campus-connect/internal/model"
	"campus-connect/internal/query"
	"campus-connect/internal/repository"
)

// AnnouncementService 公告与已读状态业务接口
type AnnouncementService interface {
	List(ctx context.Context, req *dto.AnnouncementListRequest) (*dto.AnnouncementListResponse, error)
	MarkAsRead(ctx context.Context, id string) error
	UnreadCount(ctx context.Context) (int, error)
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

// List 筛选公告；未读数与分类选项基于全部公告计算，不受筛选条件影响
func (s *announcementService) List(ctx context.Context, req *dto.AnnouncementListRequest) (*dto.AnnouncementListResponse, error) {
	all, err := s.repo.Announcement.List(ctx)
	if err != nil {
		s.logger.Error("查询公告列表失败", zap.Error(err))
		return nil, err
	}

	filtered := query.FilterAnnouncements(all, query.AnnouncementFilter{
		Category: req.Category,
		Priority: req.Priority,
		Search:   req.Search,
	})

	return &dto.AnnouncementListResponse{
		List:        toAnnouncementResponses(filtered),
		Total:       len(filtered),
		UnreadCount: query.UnreadCount(all),
		Categories:  append([]string{query.All}, query.DistinctCategories(all)...),
		Priorities:  append([]string{query.All}, model.Priorities...),
	}, nil
}

// MarkAsRead 标记已读；不存在或已读时静默成功
func (s *announcementService) MarkAsRead(ctx context.Context, id string) error {
	changed, err := s.repo.Announcement.MarkAsRead(ctx, id)
	if err != nil {
		s.logger.Error("标记公告已读失败", zap.String("id", id), zap.Error(err))
		return err
	}
	if !changed {
		s.logger.Debug("公告不存在或已读，忽略", zap.String("id", id))
	}
	return nil
}

func (s *announcementService) UnreadCount(ctx context.Context) (int, error) {
	all, err := s.repo.Announcement.List(ctx)
	if err != nil {
		s.logger.Error("查询公告列表失败", zap.Error(err))
		return 0, err
	}
	return query.UnreadCount(all), nil
}
