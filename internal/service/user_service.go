package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"classannouncement/backend/internal/dto"
	"classannouncement/backend/internal/model"
	"classannouncement/backend/internal/repository"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("用户不存在")

// UserService 用户业务接口
type UserService interface {
	GetProfile(ctx context.Context, id int64) (*dto.UserDetailResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// GetProfile 用户主页：基本信息 + 留言 ID 引用
// 任意已认证用户均可查看任意用户主页，无所有权限制
func (s *userService) GetProfile(ctx context.Context, id int64) (*dto.UserDetailResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	postIDs, err := s.repo.User.ListPostIDs(ctx, user.ID)
	if err != nil {
		s.logger.Error("查询用户留言失败", zap.Error(err))
		return nil, err
	}
	if postIDs == nil {
		postIDs = []int64{}
	}

	return &dto.UserDetailResponse{
		ID:        user.ID,
		Name:      user.Name,
		Section:   user.SectionID,
		IsStudent: user.IsStudent(),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		Posts:     postIDs,
	}, nil
}

// toUserResponse 模型转用户摘要
func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Section:   u.SectionID,
		IsStudent: u.IsStudent(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
