package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"classannouncement/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[int64]*model.User
	posts *mockPostRepo // ListPostIDs 需要读取留言
}

func newMockUserRepo(posts *mockPostRepo) *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User), posts: posts}
}

func (m *mockUserRepo) add(user *model.User) {
	m.users[user.ID] = user
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListPostIDs(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for _, p := range m.posts.newestFirst() {
		if p.AuthorID == userID {
			ids = append(ids, p.ID)
		}
	}
	return ids, nil
}

// ── Mock SectionRepository ──

type mockSectionRepo struct {
	sections map[int64]*model.Section
	users    *mockUserRepo
}

func newMockSectionRepo(users *mockUserRepo) *mockSectionRepo {
	return &mockSectionRepo{sections: make(map[int64]*model.Section), users: users}
}

func (m *mockSectionRepo) add(section *model.Section) {
	m.sections[section.ID] = section
}

func (m *mockSectionRepo) GetByID(_ context.Context, id int64) (*model.Section, error) {
	if s, ok := m.sections[id]; ok {
		if s.AdviserID != nil {
			s.Adviser = m.users.users[*s.AdviserID]
		}
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSectionRepo) MemberIDs(_ context.Context, sectionID int64) ([]int64, error) {
	var ids []int64
	for _, u := range m.users.users {
		if u.SectionID != nil && *u.SectionID == sectionID {
			ids = append(ids, u.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *mockSectionRepo) ListMembers(_ context.Context, sectionID int64) ([]model.User, error) {
	ids, _ := m.MemberIDs(nil, sectionID)
	members := make([]model.User, 0, len(ids))
	for _, id := range ids {
		members = append(members, *m.users.users[id])
	}
	return members, nil
}

// ── Mock PostRepository ──

type mockPostRepo struct {
	posts  []*model.Post
	nextID int64
	users  map[int64]*model.User
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{nextID: 1, users: make(map[int64]*model.User)}
}

func (m *mockPostRepo) Create(_ context.Context, post *model.Post) error {
	post.ID = m.nextID
	m.nextID++
	m.posts = append(m.posts, post)
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id int64) (*model.Post, error) {
	for _, p := range m.posts {
		if p.ID == id {
			p.Author = m.users[p.AuthorID]
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// newestFirst 模拟 created_at DESC, id DESC 排序
// mock 中创建时间相同，按 ID 倒序即可
func (m *mockPostRepo) newestFirst() []*model.Post {
	sorted := make([]*model.Post, len(m.posts))
	copy(sorted, m.posts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID > sorted[j].ID })
	return sorted
}

func (m *mockPostRepo) ListGlobal(_ context.Context) ([]model.Post, error) {
	var result []model.Post
	for _, p := range m.newestFirst() {
		if p.SectionID == nil {
			p.Author = m.users[p.AuthorID]
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPostRepo) ListBySection(_ context.Context, sectionID int64) ([]model.Post, error) {
	var result []model.Post
	for _, p := range m.newestFirst() {
		if p.SectionID != nil && *p.SectionID == sectionID {
			p.Author = m.users[p.AuthorID]
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPostRepo) count() int {
	return len(m.posts)
}

// ── Mock TokenRepository ──

type mockTokenRepo struct {
	tokens map[int64]*model.AuthToken // key: user_id
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: make(map[int64]*model.AuthToken)}
}

// GetOrCreate 模拟唯一约束下的 get-or-create：
// 已存在时忽略 newKey，返回原有令牌
func (m *mockTokenRepo) GetOrCreate(_ context.Context, userID int64, newKey string) (*model.AuthToken, error) {
	if t, ok := m.tokens[userID]; ok {
		return t, nil
	}
	t := &model.AuthToken{UserID: userID, Key: newKey}
	m.tokens[userID] = t
	return t, nil
}

func (m *mockTokenRepo) GetByKey(_ context.Context, key string) (*model.AuthToken, error) {
	for _, t := range m.tokens {
		if t.Key == key {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
