package service

import "classannouncement/backend/internal/model"

// CanAccessSection 班级访问判定
// 用户是班级成员（section_id 外键相等）或该班级的班主任时返回 true；
// 其余情况（包括用户未分班）一律返回 false。
// 只读纯谓词，作用于已加载的记录，不触发任何查询。
func CanAccessSection(user *model.User, section *model.Section) bool {
	if user == nil || section == nil {
		return false
	}
	if user.SectionID != nil && *user.SectionID == section.ID {
		return true
	}
	if section.AdviserID != nil && *section.AdviserID == user.ID {
		return true
	}
	return false
}
