package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"classannouncement/backend/internal/dto"
	"classannouncement/backend/internal/model"
	"classannouncement/backend/internal/service"
	"classannouncement/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult *dto.LoginResponse
	loginErr    error
	authUser    *model.User
	authErr     error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Authenticate(_ context.Context, _ string) (*model.User, error) {
	return m.authUser, m.authErr
}

// ── Mock UserService ──

type mockUserService struct {
	profile    *dto.UserDetailResponse
	profileErr error
}

func (m *mockUserService) GetProfile(_ context.Context, _ int64) (*dto.UserDetailResponse, error) {
	return m.profile, m.profileErr
}

// ── Mock BoardService ──

type mockBoardService struct {
	globalPosts      []dto.PostResponse
	globalPostsErr   error
	createdPost      *dto.PostResponse
	createErr        error
	sectionPosts     []dto.PostResponse
	sectionPostsErr  error
	sectionDetail    *dto.SectionDetailResponse
	sectionDetailErr error
}

func (m *mockBoardService) GlobalPosts(_ context.Context) ([]dto.PostResponse, error) {
	return m.globalPosts, m.globalPostsErr
}
func (m *mockBoardService) CreateGlobalPost(_ context.Context, _ int64, _ *dto.CreatePostRequest) (*dto.PostResponse, error) {
	return m.createdPost, m.createErr
}
func (m *mockBoardService) SectionPosts(_ context.Context, _, _ int64) ([]dto.PostResponse, error) {
	return m.sectionPosts, m.sectionPostsErr
}
func (m *mockBoardService) CreateSectionPost(_ context.Context, _, _ int64, _ *dto.CreatePostRequest) (*dto.PostResponse, error) {
	return m.createdPost, m.createErr
}
func (m *mockBoardService) SectionDetail(_ context.Context, _, _ int64) (*dto.SectionDetailResponse, error) {
	return m.sectionDetail, m.sectionDetailErr
}

// ── 测试辅助 ──

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// fakeAuth 模拟认证中间件注入调用者身份
func fakeAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

// ── AuthHandler ──

func TestAuthHandler_Redirect(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	r := gin.New()
	r.GET("/", h.RedirectToLogin)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("期望 302，实际 %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login/" {
		t.Errorf("期望重定向到 /login/，实际 %s", loc)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	section := int64(10)
	mock := &mockAuthService{
		loginResult: &dto.LoginResponse{
			Token:   "0123456789abcdef0123456789abcdef01234567",
			UserID:  1,
			Name:    "测试用户",
			Section: &section,
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login/", jsonBody(dto.LoginRequest{
		Username: "stu01",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/login/", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际 %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("期望 code 0，实际 %d", resp.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login/", jsonBody(map[string]string{"username": "stu01"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/login/", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少密码应返回 400，实际 %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login/", jsonBody(dto.LoginRequest{
		Username: "stu01",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/login/", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际 %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("期望错误码 11001，实际 %d", resp.Code)
	}
}

func TestAuthHandler_Login_NonStudent(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrStudentsOnly})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login/", jsonBody(dto.LoginRequest{
		Username: "adv01",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/login/", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("非学生登录应返回 403，实际 %d", w.Code)
	}
}

// ── UserHandler ──

func TestUserHandler_GetProfile_Success(t *testing.T) {
	mock := &mockUserService{
		profile: &dto.UserDetailResponse{
			ID: 1, Name: "测试用户", IsStudent: true, Posts: []int64{3, 2, 1},
		},
	}
	h := NewUserHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/user/1/", nil)

	r := gin.New()
	r.GET("/user/:id/", fakeAuth(1), h.GetProfile)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际 %d", w.Code)
	}
}

func TestUserHandler_GetProfile_NotFound(t *testing.T) {
	h := NewUserHandler(&mockUserService{profileErr: service.ErrUserNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/user/999/", nil)

	r := gin.New()
	r.GET("/user/:id/", fakeAuth(1), h.GetProfile)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("期望 404，实际 %d", w.Code)
	}
}

func TestUserHandler_GetProfile_NonNumericID(t *testing.T) {
	h := NewUserHandler(&mockUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/user/abc/", nil)

	r := gin.New()
	r.GET("/user/:id/", fakeAuth(1), h.GetProfile)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("非数字 ID 应返回 404，实际 %d", w.Code)
	}
}

// ── BoardHandler ──

func TestBoardHandler_CreatePost_Created(t *testing.T) {
	mock := &mockBoardService{
		createdPost: &dto.PostResponse{ID: 1, Content: "hi", Author: 1, AuthorName: "测试用户"},
	}
	h := NewBoardHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/board/post/", jsonBody(dto.CreatePostRequest{Content: "hi"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/board/post/", fakeAuth(1), h.CreatePost)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("期望 201，实际 %d", w.Code)
	}
}

func TestBoardHandler_CreatePost_EmptyContent(t *testing.T) {
	h := NewBoardHandler(&mockBoardService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/board/post/", jsonBody(map[string]string{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/board/post/", fakeAuth(1), h.CreatePost)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("空 content 应返回 400，实际 %d", w.Code)
	}
}

func TestBoardHandler_CreatePost_Unauthenticated(t *testing.T) {
	h := NewBoardHandler(&mockBoardService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/board/post/", jsonBody(dto.CreatePostRequest{Content: "hi"}))
	req.Header.Set("Content-Type", "application/json")

	// 未经过认证中间件，上下文中没有 user_id
	r := gin.New()
	r.POST("/board/post/", h.CreatePost)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望 401，实际 %d", w.Code)
	}
}

func TestBoardHandler_ListPosts(t *testing.T) {
	mock := &mockBoardService{
		globalPosts: []dto.PostResponse{
			{ID: 2, Content: "后发"},
			{ID: 1, Content: "先发"},
		},
	}
	h := NewBoardHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/board/", nil)

	r := gin.New()
	r.GET("/board/", fakeAuth(1), h.ListPosts)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际 %d", w.Code)
	}
}

// ── SectionHandler ──

func TestSectionHandler_ListPosts_NotFound(t *testing.T) {
	h := NewSectionHandler(&mockBoardService{sectionPostsErr: service.ErrSectionNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/section/999/", nil)

	r := gin.New()
	r.GET("/section/:id/", fakeAuth(1), h.ListPosts)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("期望 404，实际 %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 30001 {
		t.Errorf("期望错误码 30001，实际 %d", resp.Code)
	}
}

func TestSectionHandler_ListPosts_Forbidden(t *testing.T) {
	h := NewSectionHandler(&mockBoardService{sectionPostsErr: service.ErrSectionForbidden})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/section/10/", nil)

	r := gin.New()
	r.GET("/section/:id/", fakeAuth(1), h.ListPosts)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("期望 403，实际 %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 30002 {
		t.Errorf("期望错误码 30002，实际 %d", resp.Code)
	}
}

func TestSectionHandler_CreatePost_Forbidden(t *testing.T) {
	h := NewSectionHandler(&mockBoardService{createErr: service.ErrSectionForbidden})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/section/10/post/", jsonBody(dto.CreatePostRequest{Content: "hi"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/section/:id/post/", fakeAuth(1), h.CreatePost)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("期望 403，实际 %d", w.Code)
	}
}

func TestSectionHandler_CreatePost_Created(t *testing.T) {
	section := int64(10)
	h := NewSectionHandler(&mockBoardService{
		createdPost: &dto.PostResponse{ID: 1, Content: "hi", Author: 1, Section: &section},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/section/10/post/", jsonBody(dto.CreatePostRequest{Content: "hi"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/section/:id/post/", fakeAuth(1), h.CreatePost)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("期望 201，实际 %d", w.Code)
	}
}

func TestSectionHandler_GetDetail_Success(t *testing.T) {
	h := NewSectionHandler(&mockBoardService{
		sectionDetail: &dto.SectionDetailResponse{
			ID:          10,
			Students:    []int64{3, 4},
			MemberCount: 2,
			Members:     []dto.UserResponse{{ID: 3}, {ID: 4}},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/section/10/info/", nil)

	r := gin.New()
	r.GET("/section/:id/info/", fakeAuth(3), h.GetDetail)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际 %d", w.Code)
	}
}
