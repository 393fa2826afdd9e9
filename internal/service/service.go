package service

import (
	"go.uber.org/zap"

	"classannouncement/backend/config"
	"classannouncement/backend/internal/repository"
	"classannouncement/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth  AuthService
	User  UserService
	Board BoardService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:  NewAuthService(cfg, repo, rdb, logger),
		User:  NewUserService(repo, logger),
		Board: NewBoardService(repo, logger),
	}
}
