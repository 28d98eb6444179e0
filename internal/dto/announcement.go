package dto

// ── 公告模块 DTO ──

// AnnouncementListRequest 公告列表查询参数
type AnnouncementListRequest struct {
	Category string `form:"category"`
	Priority string `form:"priority" binding:"omitempty,oneof=all high medium low"`
	Search   string `form:"search"   binding:"omitempty,max=100"`
}

// AnnouncementResponse 公告信息响应
type AnnouncementResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Time     string `json:"time"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	IsRead   bool   `json:"is_read"`
}

// AnnouncementListResponse 公告列表响应，附带筛选项与未读数
type AnnouncementListResponse struct {
	List        []AnnouncementResponse `json:"list"`
	Total       int                    `json:"total"`
	UnreadCount int                    `json:"unread_count"`
	Categories  []string               `json:"categories"`
	Priorities  []string               `json:"priorities"`
}

// UnreadCountResponse 未读数响应
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}
