package query

import "campus-connect/internal/model"

// FilterCourses 按学期筛选；"all" 或空串返回全部
func FilterCourses(courses []model.Course, semester string) []model.Course {
	if IsAll(semester) {
		return filter(courses, func(*model.Course) bool { return true })
	}
	return filter(courses, func(c *model.Course) bool { return c.Semester == semester })
}

// DistinctSemesters 学期筛选项，按首次出现顺序
func DistinctSemesters(courses []model.Course) []string {
	return distinct(courses, func(c *model.Course) string { return c.Semester })
}

// InProgressCourses 在修课程
func InProgressCourses(courses []model.Course) []model.Course {
	return filter(courses, func(c *model.Course) bool { return c.InProgress() })
}
