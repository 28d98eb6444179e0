package handler

import (
	"github.com/gin-gonic/gin"

	"campus-connect/internal/dto"
	"campus-connect/internal/service"
	"campus-connect/pkg/response"
)

// AcademicHandler 学业模块 HTTP 处理器
type AcademicHandler struct {
	academicSvc service.AcademicService
}

// NewAcademicHandler 创建 AcademicHandler
func NewAcademicHandler(academicSvc service.AcademicService) *AcademicHandler {
	return &AcademicHandler{academicSvc: academicSvc}
}

// ListCourses 按学期筛选课程
// GET /api/v1/courses?semester=
func (h *AcademicHandler) ListCourses(c *gin.Context) {
	var req dto.CourseListRequest
	if !bindQuery(c, &req) {
		return
	}

	result, err := h.academicSvc.ListCourses(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetSummary 获取学业进度汇总
// GET /api/v1/academic/summary
func (h *AcademicHandler) GetSummary(c *gin.Context) {
	summary, err := h.academicSvc.Summary(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}
