package service

import (
	"context"

	"go.uber.org/zap"

	"campus-connect/config"
	"campus-connect/internal/repository"
	"campus-connect/pkg/mailer"
)

// Service 所有 Service 的聚合入口
type Service struct {
	User         UserService
	Dashboard    DashboardService
	Booking      BookingService
	Announcement AnnouncementService
	Venue        VenueService
	Academic     AcademicService
	Export       ExportService
	Location     LocationService

	booking *bookingService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	mail mailer.Sender,
	logger *zap.Logger,
) *Service {
	booking := newBookingService(&cfg.Booking, repo, mail, logger)

	return &Service{
		User:         NewUserService(repo, logger),
		Dashboard:    NewDashboardService(&cfg.Booking, repo, logger),
		Booking:      booking,
		Announcement: NewAnnouncementService(repo, logger),
		Venue:        NewVenueService(repo, logger),
		Academic:     NewAcademicService(repo, logger),
		Export:       NewExportService(&cfg.Export, repo, logger),
		Location:     NewLocationService(repo, logger),
		booking:      booking,
	}
}

// Shutdown 等待在途的预约通知邮件发送完成
func (s *Service) Shutdown(ctx context.Context) error {
	return s.booking.drain(ctx)
}
