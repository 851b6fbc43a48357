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

// JournalService 日记 CRUD
type JournalService interface {
	Create(ctx context.Context, userID, title, content, originalDate string) (*model.JournalEntry, error)
	List(ctx context.Context, userID string) ([]*model.JournalEntry, error)
	Update(ctx context.Context, userID, entryID, title, content string) (*model.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID string) error
}

type journalService struct {
	repo repository.JournalRepository
}

func NewJournalService(repo repository.JournalRepository) JournalService {
	return &journalService{repo: repo}
}

func (s *journalService) Create(ctx context.Context, userID, title, content, originalDate string) (*model.JournalEntry, error) {
	if userID == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: user id and content are required", ErrInvalidArgument)
	}
	now := time.Now()
	entry := &model.JournalEntry{
		ID:           uuid.New().String(),
		UserID:       userID,
		Title:        title,
		Content:      content,
		OriginalDate: originalDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, translateRepoError(err)
	}
	return entry, nil
}

func (s *journalService) List(ctx context.Context, userID string) ([]*model.JournalEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidArgument)
	}
	res, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return res, nil
}

func (s *journalService) Update(ctx context.Context, userID, entryID, title, content string) (*model.JournalEntry, error) {
	if userID == "" || entryID == "" {
		return nil, fmt.Errorf("%w: user id and entry id are required", ErrInvalidArgument)
	}
	entry, err := s.repo.Update(ctx, userID, entryID, title, content)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return entry, nil
}

func (s *journalService) Delete(ctx context.Context, userID, entryID string) error {
	if userID == "" || entryID == "" {
		return fmt.Errorf("%w: user id and entry id are required", ErrInvalidArgument)
	}
	return translateRepoError(s.repo.Delete(ctx, userID, entryID))
}
