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

// NoteService 便签 CRUD
type NoteService interface {
	Create(ctx context.Context, userID, title, content string) (*model.Note, error)
	Get(ctx context.Context, userID, id string) (*model.Note, error)
	List(ctx context.Context, userID string) ([]*model.Note, error)
	Update(ctx context.Context, userID, id, title, content string) (*model.Note, error)
	Delete(ctx context.Context, userID, id string) error
}

type noteService struct {
	repo repository.NoteRepository
}

func NewNoteService(repo repository.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) Create(ctx context.Context, userID, title, content string) (*model.Note, error) {
	if userID == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: user id and content are required", ErrInvalidArgument)
	}
	now := time.Now()
	note := &model.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, translateRepoError(err)
	}
	return note, nil
}

func (s *noteService) Get(ctx context.Context, userID, id string) (*model.Note, error) {
	if userID == "" || id == "" {
		return nil, fmt.Errorf("%w: user id and note id are required", ErrInvalidArgument)
	}
	note, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context, userID string) ([]*model.Note, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidArgument)
	}
	res, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return res, nil
}

func (s *noteService) Update(ctx context.Context, userID, id, title, content string) (*model.Note, error) {
	if userID == "" || id == "" {
		return nil, fmt.Errorf("%w: user id and note id are required", ErrInvalidArgument)
	}
	note, err := s.repo.Update(ctx, userID, id, title, content)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return fmt.Errorf("%w: user id and note id are required", ErrInvalidArgument)
	}
	return translateRepoError(s.repo.Delete(ctx, userID, id))
}
