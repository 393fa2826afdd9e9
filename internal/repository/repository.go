package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User    UserRepository
	Section SectionRepository
	Post    PostRepository
	Token   TokenRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:    NewUserRepo(db),
		Section: NewSectionRepo(db),
		Post:    NewPostRepo(db),
		Token:   NewTokenRepo(db),
	}
}
