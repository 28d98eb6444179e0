package dto

// ── 学业模块 DTO ──

// CourseListRequest 课程列表查询参数
type CourseListRequest struct {
	Semester string `form:"semester"`
}

// CourseResponse 课程信息响应
type CourseResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Credits    int    `json:"credits"`
	Grade      string `json:"grade"`
	Semester   string `json:"semester"`
	Instructor string `json:"instructor"`
	Progress   int    `json:"progress"`
}

// CourseListResponse 课程列表响应，附带学期筛选项
type CourseListResponse struct {
	List      []CourseResponse `json:"list"`
	Total     int              `json:"total"`
	Semesters []string         `json:"semesters"`
}

// AcademicSummaryResponse 学业进度汇总
type AcademicSummaryResponse struct {
	GPA                  float64          `json:"gpa"`
	CreditsCompleted     int              `json:"credits_completed"`
	TotalCredits         int              `json:"total_credits"`
	CreditProgress       float64          `json:"credit_progress"` // 百分比 0-100
	CurrentCourses       []CourseResponse `json:"current_courses"`
	CompletedCourseCount int              `json:"completed_course_count"`
	AverageProgress      float64          `json:"average_progress"`
}
