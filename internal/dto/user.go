package dto

// ── 用户模块响应 ──

// UserResponse 用户摘要信息（脱敏）
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Section   *int64 `json:"section"`
	IsStudent bool   `json:"is_student"`
	CreatedAt string `json:"created_at"`
}

// UserDetailResponse 用户详细信息（GET /user/:id/）
// Posts 为该用户全部留言的 ID 引用，不内联留言正文
type UserDetailResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Section   *int64  `json:"section"`
	IsStudent bool    `json:"is_student"`
	CreatedAt string  `json:"created_at"`
	Posts     []int64 `json:"posts"`
}
