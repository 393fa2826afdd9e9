package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录成功响应
// Section 为用户所属班级 ID，未分班时为 null
type LoginResponse struct {
	Token   string `json:"token"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Section *int64 `json:"section"`
}
