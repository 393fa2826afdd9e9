package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"classannouncement/backend/config"
	"classannouncement/backend/internal/api/handler"
	"classannouncement/backend/internal/api/middleware"
	"classannouncement/backend/internal/service"
)

// Setup 初始化并返回 Gin 路由引擎
// 路由表与原有对外约定保持一致（含尾部斜杠）
func Setup(cfg *config.Config, h *handler.Handler, svc *service.Service, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 无需认证 ──
	r.GET("/", h.Auth.RedirectToLogin)
	r.POST("/login/", h.Auth.Login)

	// ── 需要认证 ──
	authorized := r.Group("")
	authorized.Use(middleware.TokenAuth(svc.Auth))
	{
		authorized.GET("/user/:id/", h.User.GetProfile)

		authorized.GET("/board/", h.Board.ListPosts)
		authorized.POST("/board/post/", h.Board.CreatePost)

		authorized.GET("/section/:id/", h.Section.ListPosts)
		authorized.GET("/section/:id/info/", h.Section.GetDetail)
		authorized.POST("/section/:id/post/", h.Section.CreatePost)
	}

	return r
}
