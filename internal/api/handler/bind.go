package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-connect/pkg/response"
)

// bindJSON 绑定 JSON 请求体；失败时写入 400（超出 BodyLimit 时为 413）并返回 false
// 调用方应在 ok=false 时直接 return。
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "请求体过大")
			return false
		}
		response.BadRequest(c, 10001, "参数校验失败")
		return false
	}
	return true
}

// bindQuery 绑定查询参数；失败时写入 400 并返回 false
func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return false
	}
	return true
}
