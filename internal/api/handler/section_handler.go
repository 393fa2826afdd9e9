package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"classannouncement/backend/internal/dto"
	"classannouncement/backend/internal/service"
	"classannouncement/backend/pkg/response"
)

// SectionHandler 班级留言板 HTTP 处理器
type SectionHandler struct {
	boardSvc service.BoardService
}

// NewSectionHandler 创建 SectionHandler
func NewSectionHandler(boardSvc service.BoardService) *SectionHandler {
	return &SectionHandler{boardSvc: boardSvc}
}

// ListPosts 班级留言列表，最新在前
// GET /section/:id/
func (h *SectionHandler) ListPosts(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	sectionID, ok := parseIDParam(c, "id")
	if !ok {
		response.NotFound(c, 30001, "班级不存在")
		return
	}

	posts, err := h.boardSvc.SectionPosts(c.Request.Context(), callerID, sectionID)
	if err != nil {
		h.writeSectionError(c, err)
		return
	}

	response.OK(c, posts)
}

// CreatePost 发布班级留言
// POST /section/:id/post/
func (h *SectionHandler) CreatePost(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	sectionID, ok := parseIDParam(c, "id")
	if !ok {
		response.NotFound(c, 30001, "班级不存在")
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "content 不能为空")
		return
	}

	post, err := h.boardSvc.CreateSectionPost(c.Request.Context(), callerID, sectionID, &req)
	if err != nil {
		h.writeSectionError(c, err)
		return
	}

	response.Created(c, post)
}

// GetDetail 班级详情（班主任、成员列表与成员数）
// GET /section/:id/info/
func (h *SectionHandler) GetDetail(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	sectionID, ok := parseIDParam(c, "id")
	if !ok {
		response.NotFound(c, 30001, "班级不存在")
		return
	}

	detail, err := h.boardSvc.SectionDetail(c.Request.Context(), callerID, sectionID)
	if err != nil {
		h.writeSectionError(c, err)
		return
	}

	response.OK(c, detail)
}

// writeSectionError 统一映射班级访问错误
// 404 与 403 必须区分：班级不存在返回 404，存在但无权限返回 403
func (h *SectionHandler) writeSectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSectionNotFound):
		response.NotFound(c, 30001, "班级不存在")
	case errors.Is(err, service.ErrSectionForbidden):
		response.Forbidden(c, 30002, "无权访问该班级")
	default:
		response.InternalError(c)
	}
}
