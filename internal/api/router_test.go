package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/wellness-companion/config"
	"github.com/d60-Lab/wellness-companion/internal/api/handler"
	"github.com/d60-Lab/wellness-companion/internal/llm"
	"github.com/d60-Lab/wellness-companion/internal/model"
	"github.com/d60-Lab/wellness-companion/internal/repository"
	"github.com/d60-Lab/wellness-companion/internal/service"
)

type staticGenerator struct {
	payload json.RawMessage
}

func (g staticGenerator) Generate(context.Context, string) (json.RawMessage, error) {
	return g.payload, nil
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.Post{}, &model.Reply{}, &model.Interaction{},
		&model.JournalEntry{}, &model.MoodEntry{}, &model.Note{},
	))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	gen := staticGenerator{payload: json.RawMessage(
		`{"response":"I hear you.","sentiment":"neutral","sentimentScore":0}`,
	)}
	opts := llm.Options{MaxAttempts: 1}

	h := handler.New(
		service.NewInteractionService(repository.NewInteractionRepository(db)),
		service.NewCommunityService(repository.NewPostRepository(db)),
		service.NewAIService(gen, opts),
		service.NewJournalService(repository.NewJournalRepository(db)),
		service.NewMoodService(repository.NewMoodRepository(db)),
		service.NewNoteService(repository.NewNoteRepository(db)),
		service.NewPollService(rdb),
		service.NewDailyService(rdb),
	)

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Server.AIRateLimit = 100
	cfg.Server.AIRateBurst = 100
	return NewRouter(cfg, h), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "identity")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestToggleInteractionEndToEnd(t *testing.T) {
	r, db := setupRouter(t)
	require.NoError(t, db.Create(&model.Post{
		ID: "post-1", AuthorID: "a", AuthorEmail: "a@example.com", Content: "c",
		BookmarkCount: 3,
	}).Error)

	body := gin.H{"userId": "user-1", "postId": "post-1", "interactionType": "bookmark"}

	w := doJSON(t, r, http.MethodPut, "/api/v1/community/posts/interactions", body)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data service.ToggleResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.EqualValues(t, 4, resp.Data.NewCount)
	require.True(t, resp.Data.UserHasInteracted)

	w = doJSON(t, r, http.MethodPut, "/api/v1/community/posts/interactions", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.EqualValues(t, 3, resp.Data.NewCount)
	require.False(t, resp.Data.UserHasInteracted)
}

func TestToggleInteractionStatusMapping(t *testing.T) {
	r, _ := setupRouter(t)

	// 未知互动类型被请求校验拦下
	w := doJSON(t, r, http.MethodPut, "/api/v1/community/posts/interactions",
		gin.H{"userId": "u", "postId": "p", "interactionType": "like"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// 帖子不存在
	w = doJSON(t, r, http.MethodPut, "/api/v1/community/posts/interactions",
		gin.H{"userId": "u", "postId": "missing", "interactionType": "repost"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAndListPostsEndToEnd(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/community/posts",
		gin.H{"userId": "u1", "authorEmail": "u1@example.com", "content": "hello world"})
	require.Equal(t, http.StatusCreated, w.Code)

	// 邮箱格式校验
	w = doJSON(t, r, http.MethodPost, "/api/v1/community/posts",
		gin.H{"userId": "u1", "authorEmail": "not-an-email", "content": "hello"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/community/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []*model.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	require.Equal(t, "hello world", resp.Data[0].Content)
}

func TestChatEndToEnd(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/chat",
		gin.H{"userInput": "I feel stuck", "history": []string{"User: hi"}})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data service.ChatResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "I hear you.", resp.Data.Response)
	require.Equal(t, "neutral", resp.Data.Sentiment)
}

func TestPollEndToEnd(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/mood-poll", gin.H{"optionId": "good"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/mood-poll", gin.H{"optionId": "nope"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/mood-poll", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data service.Poll `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	found := false
	for _, opt := range resp.Data.Options {
		if opt.ID == "good" {
			require.EqualValues(t, 1, opt.Count)
			found = true
		}
	}
	require.True(t, found)
}

func TestHealthz(t *testing.T) {
	r, _ := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
