package model

import "time"

// Post 留言表 — 对应 posts
// SectionID 为 NULL 表示全局公告板留言，否则为对应班级的内部留言。
// 创建后不可修改，默认按创建时间倒序读取。
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"                     json:"id"`
	Content   string    `gorm:"type:text;not null"                           json:"content"`
	AuthorID  int64     `gorm:"not null;index"                               json:"author_id"`
	SectionID *int64    `gorm:"index"                                        json:"section_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;<-:create" json:"created_at"`

	// 关联
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName 指定表名
func (Post) TableName() string { return "posts" }
