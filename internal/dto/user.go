package dto

// ── 用户模块 DTO ──

// UserResponse 当前学生信息响应
type UserResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	StudentID        string  `json:"student_id"`
	GPA              float64 `json:"gpa"`
	CreditsCompleted int     `json:"credits_completed"`
	TotalCredits     int     `json:"total_credits"`
	Avatar           string  `json:"avatar,omitempty"`
}
