package handler

import "campus-connect/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	User         *UserHandler
	Dashboard    *DashboardHandler
	Booking      *BookingHandler
	Announcement *AnnouncementHandler
	Venue        *VenueHandler
	Academic     *AcademicHandler
	Export       *ExportHandler
	Location     *LocationHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		User:         NewUserHandler(svc.User),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
		Booking:      NewBookingHandler(svc.Booking),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Venue:        NewVenueHandler(svc.Venue),
		Academic:     NewAcademicHandler(svc.Academic),
		Export:       NewExportHandler(svc.Export),
		Location:     NewLocationHandler(svc.Location),
	}
}
