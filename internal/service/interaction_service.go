package service

import (
	"context"
	"fmt"

	"github.com/d60-Lab/wellness-companion/internal/model"
	"github.com/d60-Lab/wellness-companion/internal/repository"
)

// ToggleResult 翻转提交后的状态
type ToggleResult struct {
	NewCount          int64 `json:"newCount"`
	UserHasInteracted bool  `json:"userHasInteracted"`
}

// InteractionService 帖子互动：幂等翻转 + 冗余计数
type InteractionService interface {
	// Toggle 翻转 userID 对 postID 的 typ 互动。连续两次调用互相抵消，
	// 不提供“设置绝对状态”的操作。
	Toggle(ctx context.Context, userID, postID string, typ model.InteractionType) (*ToggleResult, error)
	// ListForUser 查询用户对一组帖子的互动状态
	ListForUser(ctx context.Context, userID string, postIDs []string) (map[string]repository.UserInteractions, error)
}

type interactionService struct {
	repo repository.InteractionRepository
}

func NewInteractionService(repo repository.InteractionRepository) InteractionService {
	return &interactionService{repo: repo}
}

func (s *interactionService) Toggle(ctx context.Context, userID, postID string, typ model.InteractionType) (*ToggleResult, error) {
	if userID == "" || postID == "" {
		return nil, fmt.Errorf("%w: user id and post id are required", ErrInvalidArgument)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: interaction type must be repost or bookmark", ErrInvalidArgument)
	}

	newCount, nowInteracting, err := s.repo.Toggle(ctx, userID, postID, typ)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return &ToggleResult{NewCount: newCount, UserHasInteracted: nowInteracting}, nil
}

func (s *interactionService) ListForUser(ctx context.Context, userID string, postIDs []string) (map[string]repository.UserInteractions, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidArgument)
	}
	res, err := s.repo.ListForUser(ctx, userID, postIDs)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return res, nil
}
