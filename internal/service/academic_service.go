package service

import (
	"context"

	"go.uber.org/zap"

	"campus-connect/internal/dto"
	"campus-connect/internal/model"
	"campus-connect/internal/query"
	"campus-connect/internal/repository"
)

// AcademicService 学业进度业务接口（只读）
type AcademicService interface {
	ListCourses(ctx context.Context, req *dto.CourseListRequest) (*dto.CourseListResponse, error)
	Summary(ctx context.Context) (*dto.AcademicSummaryResponse, error)
}

type academicService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAcademicService 创建 AcademicService 实例
func NewAcademicService(repo *repository.Repository, logger *zap.Logger) AcademicService {
	return &academicService{repo: repo, logger: logger}
}

func (s *academicService) ListCourses(ctx context.Context, req *dto.CourseListRequest) (*dto.CourseListResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}

	filtered := query.FilterCourses(courses, req.Semester)
	return &dto.CourseListResponse{
		List:      toCourseResponses(filtered),
		Total:     len(filtered),
		Semesters: append([]string{query.All}, query.DistinctSemesters(courses)...),
	}, nil
}

func (s *academicService) Summary(ctx context.Context) (*dto.AcademicSummaryResponse, error) {
	user, err := s.repo.User.GetCurrent(ctx)
	if err != nil {
		s.logger.Error("查询当前用户失败", zap.Error(err))
		return nil, err
	}
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}

	return buildAcademicSummary(user, courses), nil
}

// buildAcademicSummary 学分进度与在修课程平均进度
// 进度仅对在修课程有意义，已完成课程不参与平均
func buildAcademicSummary(user *model.User, courses []model.Course) *dto.AcademicSummaryResponse {
	current := query.InProgressCourses(courses)

	var creditProgress float64
	if user.TotalCredits > 0 {
		creditProgress = float64(user.CreditsCompleted) / float64(user.TotalCredits) * 100
	}

	var avg float64
	if len(current) > 0 {
		sum := 0
		for _, c := range current {
			sum += c.Progress
		}
		avg = float64(sum) / float64(len(current))
	}

	return &dto.AcademicSummaryResponse{
		GPA:                  user.GPA,
		CreditsCompleted:     user.CreditsCompleted,
		TotalCredits:         user.TotalCredits,
		CreditProgress:       creditProgress,
		CurrentCourses:       toCourseResponses(current),
		CompletedCourseCount: len(courses) - len(current),
		AverageProgress:      avg,
	}
}
