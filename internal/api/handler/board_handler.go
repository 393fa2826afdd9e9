package handler

import (
	"github.com/gin-gonic/gin"

	"classannouncement/backend/internal/dto"
	"classannouncement/backend/internal/service"
	"classannouncement/backend/pkg/response"
)

// BoardHandler 全局留言板 HTTP 处理器
type BoardHandler struct {
	boardSvc service.BoardService
}

// NewBoardHandler 创建 BoardHandler
func NewBoardHandler(boardSvc service.BoardService) *BoardHandler {
	return &BoardHandler{boardSvc: boardSvc}
}

// ListPosts 全局留言列表，最新在前
// GET /board/
func (h *BoardHandler) ListPosts(c *gin.Context) {
	posts, err := h.boardSvc.GlobalPosts(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, posts)
}

// CreatePost 发布全局留言
// POST /board/post/
func (h *BoardHandler) CreatePost(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "content 不能为空")
		return
	}

	post, err := h.boardSvc.CreateGlobalPost(c.Request.Context(), callerID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, post)
}
