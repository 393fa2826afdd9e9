package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"classannouncement/backend/internal/model"
)

// TokenRepository 登录令牌数据访问接口
type TokenRepository interface {
	GetOrCreate(ctx context.Context, userID int64, newKey string) (*model.AuthToken, error)
	GetByKey(ctx context.Context, key string) (*model.AuthToken, error)
}

// tokenRepo TokenRepository 的 GORM 实现
type tokenRepo struct {
	db *gorm.DB
}

// NewTokenRepo 创建 TokenRepository 实例
func NewTokenRepo(db *gorm.DB) TokenRepository {
	return &tokenRepo{db: db}
}

// GetOrCreate 返回用户的登录令牌，不存在时以 newKey 创建。
// 并发首次登录时依赖 auth_tokens.user_id 唯一约束：
// INSERT 落败方收到 gorm.ErrDuplicatedKey 后回读胜出方的记录，
// 因此两个请求观察到同一个令牌值。
func (r *tokenRepo) GetOrCreate(ctx context.Context, userID int64, newKey string) (*model.AuthToken, error) {
	var tok model.AuthToken
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&tok).Error
	if err == nil {
		return &tok, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tok = model.AuthToken{UserID: userID, Key: newKey}
	err = r.db.WithContext(ctx).Create(&tok).Error
	if err == nil {
		return &tok, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	// 并发插入落败，回读已存在的令牌
	var existing model.AuthToken
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *tokenRepo) GetByKey(ctx context.Context, key string) (*model.AuthToken, error) {
	var tok model.AuthToken
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&tok).Error
	if err != nil {
		return nil, err
	}
	return &tok, nil
}
