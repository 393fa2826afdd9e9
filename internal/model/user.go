package model

import "time"

// ── 角色枚举 ──
// 角色为封闭集合，student 角色才允许通过学生端登录接口认证

const (
	RoleStudent = "student"
	RoleAdviser = "adviser"
	RoleAdmin   = "admin"
)

// User 用户表 — 对应 users
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"                   json:"id"`
	Username     string    `gorm:"type:varchar(150);not null;uniqueIndex"     json:"username"`
	Name         string    `gorm:"type:varchar(255);not null"                 json:"name"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                 json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	SectionID    *int64    `gorm:"index"                                      json:"section_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;<-:create" json:"created_at"`

	// 关联
	Section *Section `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Posts   []Post   `gorm:"foreignKey:AuthorID"  json:"posts,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// IsStudent 判断是否为学生角色
func (u *User) IsStudent() bool { return u.Role == RoleStudent }
