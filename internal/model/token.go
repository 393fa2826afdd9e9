package model

import "time"

// AuthToken 登录令牌表 — 对应 auth_tokens（与 users 1:1）
// 以 user_id 为主键保证每个用户至多一个令牌；并发首次登录时
// 唯一约束使得只有一个 INSERT 成功，落败方回读已有记录。
type AuthToken struct {
	UserID    int64     `gorm:"primaryKey"                                   json:"user_id"`
	Key       string    `gorm:"type:char(40);not null;uniqueIndex"           json:"key"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;<-:create" json:"created_at"`
}

// TableName 指定表名
func (AuthToken) TableName() string { return "auth_tokens" }
