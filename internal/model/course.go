package model

// GradeInProgress 在修课程的成绩占位值
const GradeInProgress = "In Progress"

// Course 课程记录（只读）
type Course struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Credits    int    `json:"credits"`
	Grade      string `json:"grade"` // 字母成绩或 "In Progress"
	Semester   string `json:"semester"`
	Instructor string `json:"instructor"`
	Progress   int    `json:"progress"` // 0-100，仅在修课程有意义
}

// InProgress 是否为在修课程
func (c *Course) InProgress() bool {
	return c.Grade == GradeInProgress
}
