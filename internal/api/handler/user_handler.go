package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"classannouncement/backend/internal/service"
	"classannouncement/backend/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetProfile 用户主页
// GET /user/:id/
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.NotFound(c, 20001, "用户不存在")
		return
	}

	profile, err := h.userSvc.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, profile)
}
