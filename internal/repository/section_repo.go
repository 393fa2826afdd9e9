package repository

import (
	"context"

	"gorm.io/gorm"

	"classannouncement/backend/internal/model"
)

// SectionRepository 班级数据访问接口
type SectionRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Section, error)
	MemberIDs(ctx context.Context, sectionID int64) ([]int64, error)
	ListMembers(ctx context.Context, sectionID int64) ([]model.User, error)
}

// sectionRepo SectionRepository 的 GORM 实现
type sectionRepo struct {
	db *gorm.DB
}

// NewSectionRepo 创建 SectionRepository 实例
func NewSectionRepo(db *gorm.DB) SectionRepository {
	return &sectionRepo{db: db}
}

func (r *sectionRepo) GetByID(ctx context.Context, id int64) (*model.Section, error) {
	var section model.Section
	err := r.db.WithContext(ctx).
		Preload("Adviser").
		Where("id = ?", id).
		First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// MemberIDs 依据 users.section_id 外键实时计算成员 ID 列表
// 不读取冗余的 students 列（该列与外键之间没有同步保证）
func (r *sectionRepo) MemberIDs(ctx context.Context, sectionID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("section_id = ?", sectionID).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *sectionRepo) ListMembers(ctx context.Context, sectionID int64) ([]model.User, error) {
	var members []model.User
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("id ASC").
		Find(&members).Error
	return members, err
}
