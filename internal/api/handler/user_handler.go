package handler

import (
	"github.com/gin-gonic/gin"

	"campus-connect/internal/service"
	"campus-connect/pkg/response"
)

// UserHandler 当前学生 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetCurrentUser 获取当前学生信息
// GET /api/v1/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.userSvc.GetCurrentUser(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}
