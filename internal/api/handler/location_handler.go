package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-connect/internal/dto"
	"campus-connect/internal/service"
	"campus-connect/pkg/response"
)

// LocationHandler 校园地图模块 HTTP 处理器
type LocationHandler struct {
	locationSvc service.LocationService
}

// NewLocationHandler 创建 LocationHandler
func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

// ListLocations 获取地点列表，支持关键字搜索
// GET /api/v1/map/locations?search=
func (h *LocationHandler) ListLocations(c *gin.Context) {
	var req dto.LocationListRequest
	if !bindQuery(c, &req) {
		return
	}

	locations, err := h.locationSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKList(c, locations, len(locations), nil)
}

// GetLocation 获取地点详情
// GET /api/v1/map/locations/:id
func (h *LocationHandler) GetLocation(c *gin.Context) {
	location, err := h.locationSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.OK(c, location)
}

// handleLocationError 统一处理地图模块业务错误
func (h *LocationHandler) handleLocationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLocationNotFound):
		response.NotFound(c, 21001, "地点不存在")
	default:
		response.InternalError(c)
	}
}
