package dto

// ── 班级模块响应 ──

// SectionDetailResponse 班级详细信息（GET /section/:id/info/）
// Members 由 users.section_id 外键实时计算，不读取冗余的 students 列
type SectionDetailResponse struct {
	ID          int64          `json:"id"`
	Adviser     *UserResponse  `json:"adviser"`
	Students    []int64        `json:"students"`
	MemberCount int            `json:"member_count"`
	Members     []UserResponse `json:"members"`
}
