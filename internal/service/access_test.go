package service

import (
	"testing"

	"classannouncement/backend/internal/model"
)

func int64ptr(n int64) *int64 { return &n }

// 访问谓词真值表：成员或班主任返回 true，其余一律 false
func TestCanAccessSection(t *testing.T) {
	section := &model.Section{ID: 10, AdviserID: int64ptr(2)}

	tests := []struct {
		name string
		user *model.User
		want bool
	}{
		{
			name: "班级成员",
			user: &model.User{ID: 1, SectionID: int64ptr(10)},
			want: true,
		},
		{
			name: "班主任",
			user: &model.User{ID: 2, SectionID: nil},
			want: true,
		},
		{
			name: "既是成员又是班主任",
			user: &model.User{ID: 2, SectionID: int64ptr(10)},
			want: true,
		},
		{
			name: "其他班级的成员",
			user: &model.User{ID: 3, SectionID: int64ptr(99)},
			want: false,
		},
		{
			name: "未分班用户",
			user: &model.User{ID: 4, SectionID: nil},
			want: false,
		},
		{
			name: "nil 用户",
			user: nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessSection(tt.user, section); got != tt.want {
				t.Errorf("期望 %v，实际 %v", tt.want, got)
			}
		})
	}
}

func TestCanAccessSection_NoAdviser(t *testing.T) {
	// 无班主任的班级：仅成员可访问
	section := &model.Section{ID: 20, AdviserID: nil}

	member := &model.User{ID: 1, SectionID: int64ptr(20)}
	if !CanAccessSection(member, section) {
		t.Error("成员应可访问无班主任的班级")
	}

	outsider := &model.User{ID: 2, SectionID: nil}
	if CanAccessSection(outsider, section) {
		t.Error("外部用户不应可访问")
	}
}

func TestCanAccessSection_NilSection(t *testing.T) {
	user := &model.User{ID: 1, SectionID: int64ptr(10)}
	if CanAccessSection(user, nil) {
		t.Error("nil 班级应返回 false")
	}
}
