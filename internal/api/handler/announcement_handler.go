package handler

import (
	"github.com/gin-gonic/gin"

	"campus-connect/internal/dto"
	"campus-connect/internal/service"
	"campus-connect/pkg/response"
)

// AnnouncementHandler 公告模块 HTTP 处理器
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(announcementSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc}
}

// ListAnnouncements 按分类、优先级、关键字筛选公告
// GET /api/v1/announcements?category=&priority=&search=
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	var req dto.AnnouncementListRequest
	if !bindQuery(c, &req) {
		return
	}

	result, err := h.announcementSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetUnreadCount 获取未读公告数
// GET /api/v1/announcements/unread-count
func (h *AnnouncementHandler) GetUnreadCount(c *gin.Context) {
	n, err := h.announcementSvc.UnreadCount(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.UnreadCountResponse{UnreadCount: n})
}

// MarkAsRead 标记公告已读；不存在或已读时同样返回成功
// PUT /api/v1/announcements/:id/read
func (h *AnnouncementHandler) MarkAsRead(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.announcementSvc.MarkAsRead(ctx, c.Param("id")); err != nil {
		response.InternalError(c)
		return
	}

	n, err := h.announcementSvc.UnreadCount(ctx)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.UnreadCountResponse{UnreadCount: n})
}
