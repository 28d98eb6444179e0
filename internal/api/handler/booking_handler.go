package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-connect/internal/dto"
	"campus-connect/internal/service"
	apperrors "campus-connect/pkg/errors"
	"campus-connect/pkg/response"
)

// BookingHandler 预约模块 HTTP 处理器
type BookingHandler struct {
	bookingSvc service.BookingService
}

// NewBookingHandler 创建 BookingHandler
func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// ListBookings 获取有效预约（不含已取消）
// GET /api/v1/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingSvc.ListActive(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKList(c, bookings, len(bookings), nil)
}

// ListUpcoming 获取即将到来的已确认预约
// GET /api/v1/bookings/upcoming?limit=
func (h *BookingHandler) ListUpcoming(c *gin.Context) {
	var req dto.UpcomingBookingRequest
	if !bindQuery(c, &req) {
		return
	}

	bookings, err := h.bookingSvc.ListUpcoming(c.Request.Context(), req.Limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKList(c, bookings, len(bookings), nil)
}

// CreateBooking 提交预约
// POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, booking)
}

// GetBooking 获取预约详情
// GET /api/v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// CancelBooking 取消预约；不存在或已取消时同样返回成功
// DELETE /api/v1/bookings/:id
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.bookingSvc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetQRCode 获取预约签到二维码（PNG）
// GET /api/v1/bookings/:id/qrcode
func (h *BookingHandler) GetQRCode(c *gin.Context) {
	png, err := h.bookingSvc.QRCode(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}

// handleBookingError 统一处理预约模块业务错误
func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	if ve, ok := apperrors.AsValidation(err); ok {
		response.Unprocessable(c, 20004, "预约参数校验失败", ve.Fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrVenueNotFound):
		response.NotFound(c, 20001, "场地不存在")
	case errors.Is(err, service.ErrVenueUnavailable):
		response.Conflict(c, 20002, "场地当前不可预约")
	case errors.Is(err, service.ErrAttendeesOutOfRange):
		response.BadRequest(c, 20003, "参与人数超出场地容量")
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, 20005, "预约不存在")
	case errors.Is(err, service.ErrBookingCancelled):
		response.Conflict(c, 20006, "预约已取消")
	default:
		response.InternalError(c)
	}
}
