package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/wellness-companion/internal/model"
	"github.com/d60-Lab/wellness-companion/internal/repository"
)

// CommunityService 社区帖子与回复
type CommunityService interface {
	// CreatePost 落地帖子并直接返回已提交的行（时间戳服务端生成，无需回读）
	CreatePost(ctx context.Context, authorID, authorEmail, content string) (*model.Post, error)
	ListPosts(ctx context.Context, page, pageSize int) ([]*model.Post, error)
	// AddReply 回复与父帖 reply_count 在一个事务内落地
	AddReply(ctx context.Context, postID, authorID, authorEmail, content string) (*model.Reply, int64, error)
	ListReplies(ctx context.Context, postID string, page, pageSize int) ([]*model.Reply, error)
}

type communityService struct {
	posts repository.PostRepository
}

func NewCommunityService(posts repository.PostRepository) CommunityService {
	return &communityService{posts: posts}
}

func (s *communityService) CreatePost(ctx context.Context, authorID, authorEmail, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if authorID == "" || authorEmail == "" || content == "" {
		return nil, fmt.Errorf("%w: author id, author email and content are required", ErrInvalidArgument)
	}
	now := time.Now()
	post := &model.Post{
		ID:          uuid.New().String(),
		AuthorID:    authorID,
		AuthorEmail: authorEmail,
		Content:     content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, translateRepoError(err)
	}
	return post, nil
}

func (s *communityService) ListPosts(ctx context.Context, page, pageSize int) ([]*model.Post, error) {
	offset, limit := normalizePage(page, pageSize)
	res, err := s.posts.List(ctx, offset, limit)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return res, nil
}

func (s *communityService) AddReply(ctx context.Context, postID, authorID, authorEmail, content string) (*model.Reply, int64, error) {
	content = strings.TrimSpace(content)
	if postID == "" || authorID == "" || authorEmail == "" || content == "" {
		return nil, 0, fmt.Errorf("%w: post id, author id, author email and content are required", ErrInvalidArgument)
	}
	reply := &model.Reply{
		ID:          uuid.New().String(),
		PostID:      postID,
		AuthorID:    authorID,
		AuthorEmail: authorEmail,
		Content:     content,
		CreatedAt:   time.Now(),
	}
	newCount, err := s.posts.AddReply(ctx, reply)
	if err != nil {
		return nil, 0, translateRepoError(err)
	}
	return reply, newCount, nil
}

func (s *communityService) ListReplies(ctx context.Context, postID string, page, pageSize int) ([]*model.Reply, error) {
	if postID == "" {
		return nil, fmt.Errorf("%w: post id is required", ErrInvalidArgument)
	}
	offset, limit := normalizePage(page, pageSize)
	res, err := s.posts.ListReplies(ctx, postID, offset, limit)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return res, nil
}

func normalizePage(page, pageSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return (page - 1) * pageSize, pageSize
}
