package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campus-connect/config"
	"campus-connect/internal/api/handler"
	"campus-connect/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		v1.GET("/me", h.User.GetCurrentUser)
		v1.GET("/dashboard", h.Dashboard.GetDashboard)

		// 场地模块（只读）
		venues := v1.Group("/venues")
		{
			venues.GET("", h.Venue.ListVenues)
			venues.GET("/:id", h.Venue.GetVenue)
		}

		// 预约模块
		bookings := v1.Group("/bookings")
		{
			bookings.GET("", h.Booking.ListBookings)
			bookings.GET("/upcoming", h.Booking.ListUpcoming)
			bookings.POST("", h.Booking.CreateBooking)
			bookings.GET("/:id", h.Booking.GetBooking)
			bookings.DELETE("/:id", h.Booking.CancelBooking)
			bookings.GET("/:id/qrcode", h.Booking.GetQRCode)
		}

		// 公告模块
		announcements := v1.Group("/announcements")
		{
			announcements.GET("", h.Announcement.ListAnnouncements)
			announcements.GET("/unread-count", h.Announcement.GetUnreadCount)
			announcements.PUT("/:id/read", h.Announcement.MarkAsRead)
		}

		// 学业模块
		v1.GET("/courses", h.Academic.ListCourses)
		academic := v1.Group("/academic")
		{
			academic.GET("/summary", h.Academic.GetSummary)
			academic.GET("/export", h.Export.ExportTranscript)
		}

		// 校园地图
		mapGroup := v1.Group("/map")
		{
			mapGroup.GET("/locations", h.Location.ListLocations)
			mapGroup.GET("/locations/:id", h.Location.GetLocation)
		}
	}

	return r
}
