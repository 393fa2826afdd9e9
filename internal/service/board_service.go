package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"classannouncement/backend/internal/dto"
	"classannouncement/backend/internal/model"
	"classannouncement/backend/internal/repository"
)

// ── 留言板模块业务错误 ──

var (
	// ErrSectionNotFound 班级不存在（404，优先于权限判定）
	ErrSectionNotFound = errors.New("班级不存在")
	// ErrSectionForbidden 调用者既非成员也非班主任（403）
	ErrSectionForbidden = errors.New("无权访问该班级")
)

// BoardService 留言板业务接口
// 全局板对所有已认证用户开放；班级板须通过 CanAccessSection 判定
type BoardService interface {
	GlobalPosts(ctx context.Context) ([]dto.PostResponse, error)
	CreateGlobalPost(ctx context.Context, callerID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	SectionPosts(ctx context.Context, callerID, sectionID int64) ([]dto.PostResponse, error)
	CreateSectionPost(ctx context.Context, callerID, sectionID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	SectionDetail(ctx context.Context, callerID, sectionID int64) (*dto.SectionDetailResponse, error)
}

type boardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBoardService 创建 BoardService 实例
func NewBoardService(repo *repository.Repository, logger *zap.Logger) BoardService {
	return &boardService{repo: repo, logger: logger}
}

// GlobalPosts 全局留言列表，最新在前
func (s *boardService) GlobalPosts(ctx context.Context) ([]dto.PostResponse, error) {
	posts, err := s.repo.Post.ListGlobal(ctx)
	if err != nil {
		s.logger.Error("查询全局留言失败", zap.Error(err))
		return nil, err
	}
	return toPostResponses(posts), nil
}

// CreateGlobalPost 发布全局留言
// 作者强制为调用者、班级强制为 NULL，请求体无法影响二者
func (s *boardService) CreateGlobalPost(ctx context.Context, callerID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	post := &model.Post{
		Content:  req.Content,
		AuthorID: callerID,
	}
	if err := s.repo.Post.Create(ctx, post); err != nil {
		s.logger.Error("创建全局留言失败", zap.Error(err))
		return nil, err
	}
	return s.loadPostResponse(ctx, post.ID)
}

// SectionPosts 班级留言列表
// 先判 404（班级不存在），再判 403（访问谓词不通过）
func (s *boardService) SectionPosts(ctx context.Context, callerID, sectionID int64) ([]dto.PostResponse, error) {
	if err := s.checkSectionAccess(ctx, callerID, sectionID); err != nil {
		return nil, err
	}

	posts, err := s.repo.Post.ListBySection(ctx, sectionID)
	if err != nil {
		s.logger.Error("查询班级留言失败", zap.Error(err))
		return nil, err
	}
	return toPostResponses(posts), nil
}

// CreateSectionPost 发布班级留言
// 作者强制为调用者、班级强制为路径中的班级 ID
func (s *boardService) CreateSectionPost(ctx context.Context, callerID, sectionID int64, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if err := s.checkSectionAccess(ctx, callerID, sectionID); err != nil {
		return nil, err
	}

	post := &model.Post{
		Content:   req.Content,
		AuthorID:  callerID,
		SectionID: &sectionID,
	}
	if err := s.repo.Post.Create(ctx, post); err != nil {
		s.logger.Error("创建班级留言失败", zap.Error(err))
		return nil, err
	}
	return s.loadPostResponse(ctx, post.ID)
}

// SectionDetail 班级详情：班主任摘要、成员列表与成员数
// 成员由 users.section_id 实时计算；students 列仅作为展示字段回带
func (s *boardService) SectionDetail(ctx context.Context, callerID, sectionID int64) (*dto.SectionDetailResponse, error) {
	if err := s.checkSectionAccess(ctx, callerID, sectionID); err != nil {
		return nil, err
	}

	section, err := s.repo.Section.GetByID(ctx, sectionID)
	if err != nil {
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	members, err := s.repo.Section.ListMembers(ctx, sectionID)
	if err != nil {
		s.logger.Error("查询班级成员失败", zap.Error(err))
		return nil, err
	}

	memberIDs := make([]int64, 0, len(members))
	memberViews := make([]dto.UserResponse, 0, len(members))
	for i := range members {
		memberIDs = append(memberIDs, members[i].ID)
		memberViews = append(memberViews, toUserResponse(&members[i]))
	}

	var adviser *dto.UserResponse
	if section.Adviser != nil {
		v := toUserResponse(section.Adviser)
		adviser = &v
	}

	return &dto.SectionDetailResponse{
		ID:          section.ID,
		Adviser:     adviser,
		Students:    memberIDs,
		MemberCount: len(memberIDs),
		Members:     memberViews,
	}, nil
}

// checkSectionAccess 统一的 404/403 判定序列
func (s *boardService) checkSectionAccess(ctx context.Context, callerID, sectionID int64) error {
	section, err := s.repo.Section.GetByID(ctx, sectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return err
	}

	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		s.logger.Error("查询调用者失败", zap.Error(err))
		return err
	}

	if !CanAccessSection(caller, section) {
		return ErrSectionForbidden
	}
	return nil
}

// loadPostResponse 重新加载留言以带出作者关联
func (s *boardService) loadPostResponse(ctx context.Context, postID int64) (*dto.PostResponse, error) {
	post, err := s.repo.Post.GetByID(ctx, postID)
	if err != nil {
		s.logger.Error("回读留言失败", zap.Error(err))
		return nil, err
	}
	resp := toPostResponse(post)
	return &resp, nil
}

// toPostResponse 模型转留言响应
func toPostResponse(p *model.Post) dto.PostResponse {
	resp := dto.PostResponse{
		ID:        p.ID,
		Content:   p.Content,
		Author:    p.AuthorID,
		Section:   p.SectionID,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.Author != nil {
		resp.AuthorName = p.Author.Name
	}
	return resp
}

func toPostResponses(posts []model.Post) []dto.PostResponse {
	result := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		result = append(result, toPostResponse(&posts[i]))
	}
	return result
}
