package dto

// ── 留言模块 DTO ──

// CreatePostRequest 发布留言请求
// 作者与归属班级由服务端强制指定，请求体中任何 author/section 字段一律忽略
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostResponse 留言响应（含作者摘要）
type PostResponse struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	Author     int64  `json:"author"`
	AuthorName string `json:"author_name"`
	Section    *int64 `json:"section"`
	CreatedAt  string `json:"created_at"`
}
