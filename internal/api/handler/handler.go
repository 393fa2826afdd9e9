package handler

import "classannouncement/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Board   *BoardHandler
	Section *SectionHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		User:    NewUserHandler(svc.User),
		Board:   NewBoardHandler(svc.Board),
		Section: NewSectionHandler(svc.Board),
	}
}
