package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/wellness-companion/internal/model"
	"github.com/d60-Lab/wellness-companion/internal/repository"
)

func setupServiceDB(t *testing.T) *gorm.DB {
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
	return db
}

func TestCreatePostReturnsCommittedRow(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewCommunityService(repository.NewPostRepository(db))
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-1", "user@example.com", "  first post  ")
	require.NoError(t, err)
	require.NotEmpty(t, post.ID)
	require.Equal(t, "first post", post.Content) // 入库前去首尾空白
	require.False(t, post.CreatedAt.IsZero())

	// 返回的就是已提交的行，无需回读
	var stored model.Post
	require.NoError(t, db.Take(&stored, "id = ?", post.ID).Error)
	require.Equal(t, post.Content, stored.Content)
}

func TestCreatePostValidation(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewCommunityService(repository.NewPostRepository(db))
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, "", "user@example.com", "hi")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.CreatePost(ctx, "user-1", "user@example.com", "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAddReplyIncrementsCount(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewCommunityService(repository.NewPostRepository(db))
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-1", "user@example.com", "parent")
	require.NoError(t, err)

	_, count, err := svc.AddReply(ctx, post.ID, "user-2", "other@example.com", "re: 1")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
	_, count, err = svc.AddReply(ctx, post.ID, "user-3", "third@example.com", "re: 2")
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	var stored model.Post
	require.NoError(t, db.Take(&stored, "id = ?", post.ID).Error)
	require.EqualValues(t, 2, stored.ReplyCount)
}

func TestAddReplyToMissingPost(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewCommunityService(repository.NewPostRepository(db))

	_, _, err := svc.AddReply(context.Background(), "missing", "user-1", "user@example.com", "hi")
	require.ErrorIs(t, err, ErrNotFound)

	// 回复不能落在不存在的帖子上
	var cnt int64
	require.NoError(t, db.Model(&model.Reply{}).Count(&cnt).Error)
	require.EqualValues(t, 0, cnt)
}

func TestListPostsNewestFirst(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewCommunityService(repository.NewPostRepository(db))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, db.Create(&model.Post{
			ID: id, AuthorID: "a", AuthorEmail: "a@example.com", Content: id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	posts, err := svc.ListPosts(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	require.Equal(t, "new", posts[0].ID)
	require.Equal(t, "old", posts[2].ID)

	// 非法分页参数回落到默认值
	posts, err = svc.ListPosts(ctx, -1, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
}
