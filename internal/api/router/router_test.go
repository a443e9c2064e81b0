package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bloggers/internal/api/handler"
	"bloggers/internal/config"
	"bloggers/internal/model"
	"bloggers/internal/repository"
	"bloggers/internal/service"
	"bloggers/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	r  *gin.Engine
	db *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Logger = zap.NewNop()
	config.Set(&config.Config{
		JWT: config.JWTConfig{
			Secret:      "router-test-secret",
			ExpireHours: 1,
		},
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Follow{},
		&model.Blog{},
		&model.Comment{},
		&model.Like{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	timelineRepo := repository.NewTimelineRepository(nil)

	authService := service.NewAuthService(userRepo, followRepo)
	userService := service.NewUserService(userRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	blogService := service.NewBlogService(blogRepo, followRepo)
	commentService := service.NewCommentService(commentRepo, blogRepo)
	likeService := service.NewLikeService(likeRepo, blogRepo)
	timelineService := service.NewTimelineService(blogRepo, followRepo, timelineRepo)
	searchService := service.NewSearchService(blogRepo)

	r := gin.New()
	Setup(r,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewFollowHandler(followService),
		handler.NewBlogHandler(blogService, timelineService),
		handler.NewCommentHandler(commentService),
		handler.NewLikeHandler(likeService),
		handler.NewSearchHandler(searchService),
	)

	return &testEnv{r: r, db: db}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

// register 注册用户并返回派生的用户名
func (e *testEnv) register(t *testing.T, email, password, name string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/users", "", gin.H{
		"email":    email,
		"password": password,
		"name":     name,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%s)", email, w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Username string `json:"username"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	return resp.Data.Username
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/token", "", gin.H{
		"username": username,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%s)", username, w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Access string `json:"access"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Data.Access == "" {
		t.Fatalf("expected non-empty access token")
	}
	return resp.Data.Access
}

func (e *testEnv) createBlog(t *testing.T, token, title, desc string) int64 {
	t.Helper()
	w := e.do(t, http.MethodPost, "/blogs", token, gin.H{"title": title, "desc": desc})
	if w.Code != http.StatusCreated {
		t.Fatalf("create blog: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode blog response: %v", err)
	}
	return resp.Data.ID
}

func TestRegisterDerivesUsername(t *testing.T) {
	env := newTestEnv(t)

	if got := env.register(t, "jake@gmail.com", "pass1234", "Jake"); got != "jake" {
		t.Fatalf("expected username jake, got %q", got)
	}

	if got := env.register(t, "jane.doe@example.org", "pass1234", "Jane"); got != "jane.doe" {
		t.Fatalf("expected username jane.doe, got %q", got)
	}

	// 重复邮箱
	w := env.do(t, http.MethodPost, "/users", "", gin.H{
		"email": "jake@gmail.com", "password": "other", "name": "Dup",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate email: expected 400, got %d", w.Code)
	}

	// 不同邮箱派生出相同用户名
	w = env.do(t, http.MethodPost, "/users", "", gin.H{
		"email": "jake@another.com", "password": "other", "name": "Dup",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate username: expected 400, got %d", w.Code)
	}

	// 缺少字段
	w = env.do(t, http.MethodPost, "/users", "", gin.H{"email": "x@y.com"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing fields: expected 400, got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "jake@gmail.com", "pass1234", "Jake")

	env.login(t, "jake", "pass1234")

	w := env.do(t, http.MethodPost, "/token", "", gin.H{"username": "jake", "password": "wrong"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("wrong password: expected 400, got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/token", "", gin.H{"username": "ghost", "password": "pass1234"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown user: expected 400, got %d", w.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/me"},
		{http.MethodPost, "/users/follow/jake"},
		{http.MethodDelete, "/users/unfollow/jake"},
		{http.MethodPost, "/blogs"},
		{http.MethodGet, "/blogs/my-blogs"},
		{http.MethodGet, "/blogs/1"},
		{http.MethodDelete, "/blogs/1"},
		{http.MethodPost, "/blogs/comment/1"},
		{http.MethodPost, "/blogs/like/1"},
		{http.MethodDelete, "/blogs/unlike/1"},
	}
	for _, p := range paths {
		w := env.do(t, p.method, p.path, "", gin.H{"title": "t", "desc": "d"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: expected 401, got %d", p.method, p.path, w.Code)
		}
	}

	// 未授权请求不产生数据
	var count int64
	if err := env.db.Model(&model.Blog{}).Count(&count).Error; err != nil {
		t.Fatalf("count blogs: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no blogs created, got %d", count)
	}

	// 非法 token 同样 401
	w := env.do(t, http.MethodGet, "/users/me", "not-a-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", w.Code)
	}
}

func TestBlogCreateAndDetail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "jake@gmail.com", "pass1234", "Jake")
	token := env.login(t, "jake", "pass1234")

	blogID := env.createBlog(t, token, "Test Post 1", "This is a test post")

	w := env.do(t, http.MethodGet, "/blogs/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get detail: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			ID     int64  `json:"id"`
			Title  string `json:"title"`
			Desc   string `json:"desc"`
			Author string `json:"author"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if resp.Data.ID != blogID || resp.Data.Title != "Test Post 1" ||
		resp.Data.Desc != "This is a test post" || resp.Data.Author != "jake" {
		t.Fatalf("unexpected detail: %+v", resp.Data)
	}

	// 不存在的博客
	w = env.do(t, http.MethodGet, "/blogs/999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing blog: expected 404, got %d", w.Code)
	}

	// 缺字段
	w = env.do(t, http.MethodPost, "/blogs", token, gin.H{"title": "only title"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing desc: expected 400, got %d", w.Code)
	}
}

func TestAllBlogsPublicAndOrdered(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "jake@gmail.com", "pass1234", "Jake")
	env.register(t, "jane@gmail.com", "pass1234", "Jane")
	jakeToken := env.login(t, "jake", "pass1234")
	janeToken := env.login(t, "jane", "pass1234")

	first := env.createBlog(t, jakeToken, "first", "a")
	time.Sleep(5 * time.Millisecond)
	second := env.createBlog(t, janeToken, "second", "b")
	time.Sleep(5 * time.Millisecond)
	third := env.createBlog(t, jakeToken, "third", "c")

	// jane 给 second 点赞
	if w := env.do(t, http.MethodPost, "/blogs/like/2", janeToken, nil); w.Code != http.StatusOK {
		t.Fatalf("like: expected 200, got %d", w.Code)
	}

	// 无需登录
	w := env.do(t, http.MethodGet, "/blogs/all-blogs", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("all-blogs: expected 200, got %d", w.Code)
	}
	var resp struct {
		Data struct {
			Blogs []struct {
				ID         int64 `json:"id"`
				LikesCount int64 `json:"likes_count"`
			} `json:"blogs"`
			Total int64 `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode all-blogs: %v", err)
	}
	if resp.Data.Total != 3 || len(resp.Data.Blogs) != 3 {
		t.Fatalf("expected 3 blogs, got %+v", resp.Data)
	}
	if resp.Data.Blogs[0].ID != third || resp.Data.Blogs[1].ID != second || resp.Data.Blogs[2].ID != first {
		t.Fatalf("expected newest-first order, got %+v", resp.Data.Blogs)
	}
	if resp.Data.Blogs[1].LikesCount != 1 {
		t.Fatalf("expected likes_count 1 on liked blog, got %d", resp.Data.Blogs[1].LikesCount)
	}
}

func TestMyBlogs(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "jake@gmail.com", "pass1234", "Jake")
	env.register(t, "jane@gmail.com", "pass1234", "Jane")
	jakeToken := env.login(t, "jake", "pass1234")
	janeToken := env.login(t, "jane", "pass1234")

	env.createBlog(t, jakeToken, "mine", "a")
	env.createBlog(t, janeToken, "theirs", "b")

	w := env.do(t, http.MethodGet, "/blogs/my-blogs", jakeToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("my-blogs: expected 200, got %d", w.Code)
	}
	var resp struct {
		Data struct {
			Blogs []struct {
				Title  string `json:"title"`
				Author string `json:"author"`
			} `json:"blogs"`
			Total int64 `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode my-blogs: %v", err)
	}
	if resp.Data.Total != 1 || resp.Data.Blogs[0].Author != "jake" {
		t.Fatalf("expected only jake's blogs, got %+v", resp.Data)
	}
}

func TestFollowAndUnfollow(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "jake@gmail.com", "pass1234", "Jake")
	env.register(t, "jane@gmail.com", "pass1234", "Jane")
	jakeToken := env.login(t, "jake", "pass1234")

	if w := env.do(t, http.MethodPost, "/users/follow/jane", jakeToken, nil); w.Code != http.StatusCreated {
		t.Fatalf("follow: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	// 重复关注不报错，也不产生第二条边
	if w := env.do(t, http.MethodPost, "/users/follow/jane", jakeToken, nil); w.Code != http.StatusCreated {
		t.Fatalf("repeat follow: expected 201, got %d", w.Code)
	}
	var count int64
	if err := env.db.Model(&model.Follow{}).Count(&count).Error; err != nil {
		t.Fatalf("count follows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one follow edge, got %d", count)
	}

	// 不能关注自己
	if w := env.do(t, http.MethodPost, "/users/follow/jake", jakeToken, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("self follow: expected 400, got %d", w.Code)
	}

	// 目标不存在
	if w := env.do(t, http.MethodPost, "/users/follow/ghost", jakeToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("follow unknown: expected 404, got %d", w.Code)
	}

	// /users/me 列出关注关系
	w := env.do(t, http.MethodGet, "/users/me", jakeToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	var me struct {
		Data struct {
			Username  string `json:"username"`
			Following []struct {
				Username string `json:"username"`
			} `json:"following"`
			Followers []struct {
				Username string `json:"username"`
			} `json:"followers"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me.Data.Username != "jake" {
		t.Fatalf("expected jake, got %q", me.Data.Username)
	}
	if len(me.Data.Following) != 1 || me.Data.Following[0].Username != "jane" {
		t.Fatalf("expected jake to follow jane, got %+v", me.Data.Following)
	}
	if len(me.Data.Followers) != 0 {
		t.Fatalf("expected no followers, got %+v", me.Data.Followers)
	}

	// 取关与重复取关均为 204
	if w := env.do(t, http.MethodDelete, "/users/unfollow/jane", jakeToken, nil); w.Code != http.StatusNoContent {
		t.Fatalf("unfollow: expected 204, got %d", w.Code)
	}
	if w := env.do(t, http.MethodDelete, "/users/unfollow/jane", jakeToken, nil); w.Code != http.StatusNoContent {
		t.Fatalf("repeat unfollow: expected 204, got %d", w.Code)
	}
	if w := env.do(t, http.MethodDelete, "/users/unfollow/ghost", jakeToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("unfollow unknown: expected 404, got %d", w.Code)
	}
}

func TestLikeAndUnlike(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "jake@gmail.com", "pass1234", "Jake")
	env.register(t, "jane@gmail.com", "pass1234", "Jane")
	jakeToken := env.login(t, "jake", "pass1234")
	janeToken := env.login(t, "jane", "pass1234")

	env.createBlog(t, jakeToken, "post", "body")

	w := env.do(t, http.MethodPost, "/blogs/like/1", janeToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("like: expected 200, got %d", w.Code)
	}
	var resp struct {
		Data struct {
			LikesCount int64 `json:"likes_count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode like: %v", err)
	}
	if resp.Data.LikesCount != 1 {
		t.Fatalf("expected likes_count 1, got %d", resp.Data.LikesCount)
	}

	// 重复点赞仍成功，且只有一条记录
	w = env.do(t, http.MethodPost, "/blogs/like/1", janeToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("repeat like: expected 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode repeat like: %v", err)
	}
	if resp.Data.LikesCount != 1 {
		t.Fatalf("repeat like should keep count 1, got %d", resp.Data.LikesCount)
	}

	// 点赞不存在的博客
	if w := env.do(t, http.MethodPost, "/blogs/like/999", janeToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("like missing blog: expected 404, got %d", w.Code)
	}

	// 取消点赞与重复取消均为 204
	if w := env.do(t, http.MethodDelete, "/blogs/unlike/1", janeToken, nil); w.Code != http.StatusNoContent {
		t.Fatalf("unlike: expected 204, got %d", w.Code)
	}
	if w := env.do(t, http.MethodDelete, "/blogs/unlike/1", janeToken, nil); w.Code != http.StatusNoContent {
		t.Fatalf("repeat unlike: expected 204, got %d", w.Code)
	}
	var count int64
	if err := env.db.Model(&model.Like{}).Count(&count).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no like rows, got %d", count)
	}
}

func TestCommentAndCascadeDelete(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "jake@gmail.com", "pass1234", "Jake")
	env.register(t, "jane@gmail.com", "pass1234", "Jane")
	jakeToken := env.login(t, "jake", "pass1234")
	janeToken := env.login(t, "jane", "pass1234")

	env.createBlog(t, jakeToken, "post", "body")

	w := env.do(t, http.MethodPost, "/blogs/comment/1", janeToken, gin.H{"text": "nice post"})
	if w.Code != http.StatusCreated {
		t.Fatalf("comment: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var commentResp struct {
		Data struct {
			Text string `json:"text"`
			User string `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &commentResp); err != nil {
		t.Fatalf("decode comment: %v", err)
	}
	if commentResp.Data.Text != "nice post" || commentResp.Data.User != "jane" {
		t.Fatalf("unexpected comment: %+v", commentResp.Data)
	}

	// 评论不存在的博客
	if w := env.do(t, http.MethodPost, "/blogs/comment/999", janeToken, gin.H{"text": "x"}); w.Code != http.StatusNotFound {
		t.Fatalf("comment missing blog: expected 404, got %d", w.Code)
	}

	if w := env.do(t, http.MethodPost, "/blogs/like/1", janeToken, nil); w.Code != http.StatusOK {
		t.Fatalf("like: expected 200, got %d", w.Code)
	}

	// 非作者不能删除
	if w := env.do(t, http.MethodDelete, "/blogs/1", janeToken, nil); w.Code != http.StatusForbidden {
		t.Fatalf("delete by non-author: expected 403, got %d", w.Code)
	}

	// 作者删除，评论和点赞一并清理
	if w := env.do(t, http.MethodDelete, "/blogs/1", jakeToken, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/blogs/1", jakeToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("deleted blog: expected 404, got %d", w.Code)
	}

	var comments, likes int64
	if err := env.db.Model(&model.Comment{}).Count(&comments).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if err := env.db.Model(&model.Like{}).Count(&likes).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if comments != 0 || likes != 0 {
		t.Fatalf("expected cascade delete, got %d comments %d likes", comments, likes)
	}

	// 再次删除 404
	if w := env.do(t, http.MethodDelete, "/blogs/1", jakeToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("repeat delete: expected 404, got %d", w.Code)
	}
}

func TestTimelineFallsBackToDB(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "jake@gmail.com", "pass1234", "Jake")
	env.register(t, "jane@gmail.com", "pass1234", "Jane")
	jakeToken := env.login(t, "jake", "pass1234")
	janeToken := env.login(t, "jane", "pass1234")

	if w := env.do(t, http.MethodPost, "/users/follow/jane", jakeToken, nil); w.Code != http.StatusCreated {
		t.Fatalf("follow: expected 201, got %d", w.Code)
	}
	env.createBlog(t, janeToken, "from jane", "hello")
	env.createBlog(t, jakeToken, "own post", "not in timeline")

	w := env.do(t, http.MethodGet, "/blogs/timeline", jakeToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("timeline: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Blogs []struct {
				Author string `json:"author"`
			} `json:"blogs"`
			Total int64 `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode timeline: %v", err)
	}
	if resp.Data.Total != 1 || resp.Data.Blogs[0].Author != "jane" {
		t.Fatalf("expected only jane's blog in timeline, got %+v", resp.Data)
	}
}

func TestSearchPublic(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "jake@gmail.com", "pass1234", "Jake")
	token := env.login(t, "jake", "pass1234")

	env.createBlog(t, token, "Go concurrency patterns", "channels and goroutines")
	env.createBlog(t, token, "Cooking", "pasta")

	w := env.do(t, http.MethodGet, "/blogs/search?q=goroutines", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("search: expected 200, got %d", w.Code)
	}
	var resp struct {
		Data struct {
			Blogs []struct {
				Title string `json:"title"`
			} `json:"blogs"`
			Total int64 `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if resp.Data.Total != 1 || resp.Data.Blogs[0].Title != "Go concurrency patterns" {
		t.Fatalf("unexpected search result: %+v", resp.Data)
	}

	if w := env.do(t, http.MethodGet, "/blogs/search", "", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("empty keyword: expected 400, got %d", w.Code)
	}
}

func TestAvatarUploadRequiresFile(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "jake@gmail.com", "pass1234", "Jake")
	token := env.login(t, "jake", "pass1234")

	w := env.do(t, http.MethodPost, "/users/me/avatar", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("avatar without file: expected 400, got %d", w.Code)
	}
}
