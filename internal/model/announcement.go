package model

// 公告优先级
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Priorities 优先级筛选项（固定顺序）
var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

// Announcement 校园公告
// IsRead 只允许 false → true，由 AnnouncementRepository.MarkAsRead 独占修改
type Announcement struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Time     string `json:"time"`     // 展示用的相对时间文本
	Priority string `json:"priority"` // high | medium | low
	Category string `json:"category"`
	IsRead   bool   `json:"is_read"`
}
