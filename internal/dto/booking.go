package dto

// ── 预约模块 DTO ──

// CreateBookingRequest 创建预约请求（对应预约表单）
// status 可被客户端传入但始终被忽略
type CreateBookingRequest struct {
	VenueID   string `json:"venue_id"   binding:"required"`
	Date      string `json:"date"       binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"   binding:"required"`
	Purpose   string `json:"purpose"    binding:"required,max=500"`
	Attendees int    `json:"attendees"  binding:"required,min=1"`
	Status    string `json:"status"`
}

// UpcomingBookingRequest 即将到来的预约查询参数
// limit 缺省时使用配置默认值，≤ 0 时返回空列表
type UpcomingBookingRequest struct {
	Limit *int `form:"limit"`
}

// BookingResponse 预约信息响应
type BookingResponse struct {
	ID        string `json:"id"`
	Venue     string `json:"venue"`
	VenueID   string `json:"venue_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
	Purpose   string `json:"purpose"`
	Attendees int    `json:"attendees"`
	CreatedAt string `json:"created_at"`
}
