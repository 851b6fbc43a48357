package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/wellness-companion/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// sqlite 写并发靠单连接串行化
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Post{}, &model.Reply{}, &model.Interaction{}))
	return db
}

func seedPost(t *testing.T, db *gorm.DB, bookmarks, reposts int64) *model.Post {
	t.Helper()
	post := &model.Post{
		ID:            "post-1",
		AuthorID:      "author-1",
		AuthorEmail:   "author@example.com",
		Content:       "hello",
		CreatedAt:     time.Now(),
		BookmarkCount: bookmarks,
		RepostCount:   reposts,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestToggleBookmarkRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()
	seedPost(t, db, 3, 0)

	// 从未收藏 -> 收藏：4, true
	count, interacting, err := repo.Toggle(ctx, "user-1", "post-1", model.InteractionBookmark)
	require.NoError(t, err)
	require.EqualValues(t, 4, count)
	require.True(t, interacting)

	// 再翻转 -> 取消收藏：3, false（净效果为零）
	count, interacting, err = repo.Toggle(ctx, "user-1", "post-1", model.InteractionBookmark)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
	require.False(t, interacting)

	recs, err := repo.Count(ctx, "post-1", model.InteractionBookmark)
	require.NoError(t, err)
	require.EqualValues(t, 0, recs)
}

func TestTogglePostNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInteractionRepository(db)

	_, _, err := repo.Toggle(context.Background(), "user-1", "missing", model.InteractionRepost)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 不能留下孤儿互动记录
	var cnt int64
	require.NoError(t, db.Model(&model.Interaction{}).Count(&cnt).Error)
	require.EqualValues(t, 0, cnt)
}

func TestToggleCountMatchesRecords(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()
	seedPost(t, db, 0, 0)

	// 任意翻转序列后，冗余计数与记录行数一致
	users := []string{"u1", "u2", "u3", "u4"}
	for round := 0; round < 3; round++ {
		for i, u := range users {
			if (round+i)%2 == 0 {
				_, _, err := repo.Toggle(ctx, u, "post-1", model.InteractionRepost)
				require.NoError(t, err)
			}
			_, _, err := repo.Toggle(ctx, u, "post-1", model.InteractionBookmark)
			require.NoError(t, err)
		}
	}

	for _, typ := range []model.InteractionType{model.InteractionRepost, model.InteractionBookmark} {
		var post model.Post
		require.NoError(t, db.Take(&post, "id = ?", "post-1").Error)
		recs, err := repo.Count(ctx, "post-1", typ)
		require.NoError(t, err)
		if typ == model.InteractionRepost {
			require.Equal(t, recs, post.RepostCount)
		} else {
			require.Equal(t, recs, post.BookmarkCount)
		}
	}
}

func TestToggleClampsNegativeCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()
	seedPost(t, db, 0, 0)

	// 人为制造失配：有记录但计数为 0
	require.NoError(t, db.Create(&model.Interaction{
		ID: "rec-1", PostID: "post-1", UserID: "user-1", Type: model.InteractionBookmark,
	}).Error)

	count, interacting, err := repo.Toggle(ctx, "user-1", "post-1", model.InteractionBookmark)
	require.NoError(t, err)
	require.EqualValues(t, 0, count) // 钳到 0，不再报错
	require.False(t, interacting)
}

func TestToggleConcurrentDistinctUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()
	seedPost(t, db, 0, 0)

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := repo.Toggle(ctx, fmt.Sprintf("user-%02d", i), "post-1", model.InteractionRepost)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// 无丢失更新：计数等于用户数，且与记录行数一致
	var post model.Post
	require.NoError(t, db.Take(&post, "id = ?", "post-1").Error)
	require.EqualValues(t, n, post.RepostCount)
	recs, err := repo.Count(ctx, "post-1", model.InteractionRepost)
	require.NoError(t, err)
	require.EqualValues(t, n, recs)
}

func TestListForUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInteractionRepository(db)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, db.Create(&model.Post{
			ID: id, AuthorID: "a", AuthorEmail: "a@example.com", Content: "c", CreatedAt: time.Now(),
		}).Error)
	}

	_, _, err := repo.Toggle(ctx, "user-1", "p1", model.InteractionRepost)
	require.NoError(t, err)
	_, _, err = repo.Toggle(ctx, "user-1", "p2", model.InteractionBookmark)
	require.NoError(t, err)

	res, err := repo.ListForUser(ctx, "user-1", []string{"p1", "p2", "p3"})
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.True(t, res["p1"].Reposted)
	require.False(t, res["p1"].Bookmarked)
	require.True(t, res["p2"].Bookmarked)
	require.False(t, res["p3"].Reposted)
	require.False(t, res["p3"].Bookmarked)
}
