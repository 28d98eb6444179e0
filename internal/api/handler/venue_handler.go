package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-connect/internal/dto"
	"campus-connect/internal/model"
	"campus-connect/internal/query"
	"campus-connect/internal/service"
	"campus-connect/pkg/response"
)

// VenueHandler 场地模块 HTTP 处理器
type VenueHandler struct {
	venueSvc service.VenueService
}

// NewVenueHandler 创建 VenueHandler
func NewVenueHandler(venueSvc service.VenueService) *VenueHandler {
	return &VenueHandler{venueSvc: venueSvc}
}

// ListVenues 按类型筛选场地
// GET /api/v1/venues?type=
func (h *VenueHandler) ListVenues(c *gin.Context) {
	var req dto.VenueListRequest
	if !bindQuery(c, &req) {
		return
	}

	venues, err := h.venueSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	types := append([]string{query.All}, model.VenueTypes...)
	response.OKList(c, venues, len(venues), gin.H{"types": types})
}

// GetVenue 获取场地详情
// GET /api/v1/venues/:id
func (h *VenueHandler) GetVenue(c *gin.Context) {
	venue, err := h.venueSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.NotFound(c, 20001, "场地不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, venue)
}
