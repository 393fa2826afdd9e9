package repository

import (
	"context"

	"gorm.io/gorm"

	"classannouncement/backend/internal/model"
)

// PostRepository 留言数据访问接口
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	ListGlobal(ctx context.Context) ([]model.Post, error)
	ListBySection(ctx context.Context, sectionID int64) ([]model.Post, error)
}

// postRepo PostRepository 的 GORM 实现
type postRepo struct {
	db *gorm.DB
}

// NewPostRepo 创建 PostRepository 实例
func NewPostRepo(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListGlobal 返回全部全局留言（section_id 为 NULL），最新在前
func (r *postRepo) ListGlobal(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("section_id IS NULL").
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

// ListBySection 返回指定班级的全部留言，最新在前
func (r *postRepo) ListBySection(ctx context.Context, sectionID int64) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("section_id = ?", sectionID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}
