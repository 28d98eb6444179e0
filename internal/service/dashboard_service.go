package service

import (
	"context"

	"go.uber.org/zap"

	"campus-connect/config"
	"campus-connect/internal/dto"
	"campus-connect/internal/model"
	"campus-connect/internal/query"
	"campus-connect/internal/repository"
)

// recentAnnouncementCount 首页展示的公告条数
const recentAnnouncementCount = 3

// DashboardService 首页聚合业务接口
type DashboardService interface {
	Get(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	cfg    *config.BookingConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(cfg *config.BookingConfig, repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{cfg: cfg, repo: repo, logger: logger}
}

// Get 首页数据：统计卡片基于有效预约计算，与预约页保持一致
func (s *dashboardService) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	user, err := s.repo.User.GetCurrent(ctx)
	if err != nil {
		s.logger.Error("查询当前用户失败", zap.Error(err))
		return nil, err
	}
	announcements, err := s.repo.Announcement.List(ctx)
	if err != nil {
		s.logger.Error("查询公告列表失败", zap.Error(err))
		return nil, err
	}
	bookings, err := s.repo.Booking.List(ctx)
	if err != nil {
		s.logger.Error("查询预约列表失败", zap.Error(err))
		return nil, err
	}

	active := query.ActiveBookings(bookings)

	return &dto.DashboardResponse{
		User: toUserResponse(user),
		Stats: dto.QuickStats{
			GPA:               user.GPA,
			CreditsCompleted:  user.CreditsCompleted,
			TotalCredits:      user.TotalCredits,
			ConfirmedBookings: query.CountByStatus(active, model.BookingStatusConfirmed),
			UnreadCount:       query.UnreadCount(announcements),
		},
		RecentAnnouncements: toAnnouncementResponses(query.Recent(announcements, recentAnnouncementCount)),
		UpcomingBookings:    toBookingResponses(query.UpcomingBookings(active, s.cfg.UpcomingLimit)),
	}, nil
}
