package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classannouncement/backend/config"
	"classannouncement/backend/internal/dto"
	"classannouncement/backend/internal/model"
	"classannouncement/backend/internal/repository"
	"classannouncement/backend/pkg/redis"
	"classannouncement/backend/pkg/token"
)

// ── 认证模块业务错误 ──

var (
	// ErrInvalidCredentials 用户不存在与密码错误统一返回该错误，避免账号枚举
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	// ErrStudentsOnly 学生端登录接口拒绝非学生角色
	ErrStudentsOnly = errors.New("仅学生可通过此入口登录")
	// ErrTokenInvalid 令牌不存在或格式无效
	ErrTokenInvalid = errors.New("令牌无效")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Authenticate(ctx context.Context, key string) (*model.User, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
// rdb 可为 nil，此时令牌查询直接走数据库
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		rdb:    rdb,
		logger: logger,
	}
}

// Login 学生登录：校验凭证后签发（或复用）持久登录令牌
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. 查询用户
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 学生端入口只允许学生角色
	if !user.IsStudent() {
		return nil, ErrStudentsOnly
	}

	// 4. 获取或创建登录令牌
	newKey, err := token.NewKey()
	if err != nil {
		s.logger.Error("生成令牌失败", zap.Error(err))
		return nil, err
	}
	tok, err := s.repo.Token.GetOrCreate(ctx, user.ID, newKey)
	if err != nil {
		s.logger.Error("获取登录令牌失败", zap.Error(err))
		return nil, err
	}

	// 5. 预热令牌缓存（尽力而为，失败不影响登录）
	if s.rdb != nil {
		if err := s.rdb.CacheToken(ctx, tok.Key, user.ID, s.cfg.Auth.TokenCacheTTL); err != nil {
			s.logger.Warn("写入令牌缓存失败", zap.Error(err))
		}
	}

	return &dto.LoginResponse{
		Token:   tok.Key,
		UserID:  user.ID,
		Name:    user.Name,
		Section: user.SectionID,
	}, nil
}

// Authenticate 按令牌解析调用者身份（认证中间件使用）
func (s *authService) Authenticate(ctx context.Context, key string) (*model.User, error) {
	if len(key) != token.KeyLength {
		return nil, ErrTokenInvalid
	}

	// 1. 优先查缓存
	var userID int64
	if s.rdb != nil {
		id, hit, err := s.rdb.LookupToken(ctx, key)
		if err != nil {
			s.logger.Warn("查询令牌缓存失败", zap.Error(err))
		} else if hit {
			userID = id
		}
	}

	// 2. 缓存未命中时回源数据库并回填
	if userID == 0 {
		tok, err := s.repo.Token.GetByKey(ctx, key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTokenInvalid
			}
			s.logger.Error("查询登录令牌失败", zap.Error(err))
			return nil, err
		}
		userID = tok.UserID

		if s.rdb != nil {
			if err := s.rdb.CacheToken(ctx, key, userID, s.cfg.Auth.TokenCacheTTL); err != nil {
				s.logger.Warn("写入令牌缓存失败", zap.Error(err))
			}
		}
	}

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	return user, nil
}
