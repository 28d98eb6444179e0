package model

// User 当前登录学生
// CreditsCompleted ≤ TotalCredits；会话内不存在修改操作
type User struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	StudentID        string  `json:"student_id"`
	GPA              float64 `json:"gpa"` // 0.0 - 4.0
	CreditsCompleted int     `json:"credits_completed"`
	TotalCredits     int     `json:"total_credits"`
	Avatar           string  `json:"avatar,omitempty"`
}
