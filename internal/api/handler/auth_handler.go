package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"classannouncement/backend/internal/dto"
	"classannouncement/backend/internal/service"
	"classannouncement/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// RedirectToLogin 根路径重定向到登录页
// GET /
func (h *AuthHandler) RedirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login/")
}

// Login 学生登录，返回持久令牌与用户摘要
// POST /login/
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "请同时提供用户名和密码")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, 11001, "用户名或密码错误")
		case errors.Is(err, service.ErrStudentsOnly):
			response.Forbidden(c, 11002, "仅学生可通过此入口登录")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
