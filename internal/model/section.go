package model

// Section 班级表 — 对应 sections
// 成员关系以 users.section_id 外键为准；Students 列仅作为冗余缓存，
// 读取时由 users 表重新计算，不参与任何权限判断。
type Section struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	AdviserID *int64   `gorm:"index"                    json:"adviser_id,omitempty"`
	Students  IntArray `gorm:"type:int[]"               json:"students,omitempty"`

	// 关联
	Adviser *User `gorm:"foreignKey:AdviserID" json:"adviser,omitempty"`
}

// TableName 指定表名
func (Section) TableName() string { return "sections" }
