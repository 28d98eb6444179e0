package repository

import (
	"context"

	"campus-connect/internal/model"
)

// CourseRepository 课程数据访问接口（只读）
type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
}

type courseRepo struct {
	s *Session
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(s *Session) CourseRepository {
	return &courseRepo{s: s}
}

func (r *courseRepo) List(_ context.Context) ([]model.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return snapshot(r.s.courses, false), nil
}
