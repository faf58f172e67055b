package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"blogapi/internal/app"
	"blogapi/internal/model"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// testEnv runs the handlers against real services over in-memory stores.
type testEnv struct {
	router *gin.Engine
	users  *memUserStore
	posts  *memPostStore
}

func newTestEnv() *testEnv {
	users := newMemUserStore()
	posts := newMemPostStore()

	userHandler := NewUserHandler(app.NewUserService(users, nil))
	postHandler := NewPostHandler(app.NewPostService(posts, users, nil))

	router := gin.New()
	router.GET("/users", userHandler.List)
	router.POST("/users", userHandler.Create)
	router.GET("/users/:id", userHandler.Get)
	router.PUT("/users/:id", userHandler.Update)
	router.DELETE("/users/:id", userHandler.Delete)
	router.GET("/posts", postHandler.List)
	router.POST("/posts", postHandler.Create)
	router.GET("/posts/:id", postHandler.Get)
	router.PUT("/posts/:id", postHandler.Update)
	router.DELETE("/posts/:id", postHandler.Delete)

	return &testEnv{router: router, users: users, posts: posts}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		switch v := body.(type) {
		case string:
			reader = bytes.NewReader([]byte(v))
		default:
			payload, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(payload)
		}
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func (e *testEnv) seedUser(t *testing.T, username, email string) model.User {
	t.Helper()

	user := &model.User{Username: username, Email: email}
	require.NoError(t, e.users.Create(user))
	return *user
}

func (e *testEnv) seedPost(t *testing.T, authorID uint, title, content string) model.Post {
	t.Helper()

	post := &model.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
		Metadata: model.NewMetadata(),
	}
	require.NoError(t, e.posts.Create(post))
	return *post
}

type memUserStore struct {
	users  map[uint]model.User
	nextID uint
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uint]model.User)}
}

func (s *memUserStore) Create(user *model.User) error {
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) GetByID(id uint) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *memUserStore) GetByEmail(email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) Update(user *model.User) error {
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) Delete(id uint) (int64, error) {
	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	return 1, nil
}

func (s *memUserStore) List(offset, limit int) ([]model.User, error) {
	all := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return window(all, offset, limit), nil
}

func (s *memUserStore) Count() (int64, error) {
	return int64(len(s.users)), nil
}

type memPostStore struct {
	posts  map[uint]model.Post
	nextID uint
}

func newMemPostStore() *memPostStore {
	return &memPostStore{posts: make(map[uint]model.Post)}
}

func (s *memPostStore) Create(post *model.Post) error {
	s.nextID++
	post.ID = s.nextID
	post.CreatedAt = time.Now()
	s.posts[post.ID] = *post
	return nil
}

func (s *memPostStore) GetByID(id uint) (*model.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (s *memPostStore) Update(post *model.Post) error {
	s.posts[post.ID] = *post
	return nil
}

func (s *memPostStore) Delete(id uint) (int64, error) {
	if _, ok := s.posts[id]; !ok {
		return 0, nil
	}
	delete(s.posts, id)
	return 1, nil
}

func (s *memPostStore) List(offset, limit int) ([]model.Post, error) {
	all := make([]model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		all = append(all, post)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return window(all, offset, limit), nil
}

func (s *memPostStore) Count() (int64, error) {
	return int64(len(s.posts)), nil
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
