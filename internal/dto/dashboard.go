package dto

// ── 首页模块 DTO ──

// QuickStats 首页统计卡片
type QuickStats struct {
	GPA               float64 `json:"gpa"`
	CreditsCompleted  int     `json:"credits_completed"`
	TotalCredits      int     `json:"total_credits"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	UnreadCount       int     `json:"unread_count"`
}

// DashboardResponse 首页聚合响应
type DashboardResponse struct {
	User                UserResponse           `json:"user"`
	Stats               QuickStats             `json:"stats"`
	RecentAnnouncements []AnnouncementResponse `json:"recent_announcements"`
	UpcomingBookings    []BookingResponse      `json:"upcoming_bookings"`
}
