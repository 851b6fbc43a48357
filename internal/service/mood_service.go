package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/wellness-companion/internal/model"
	"github.com/d60-Lab/wellness-companion/internal/repository"
)

// MoodService 心情打卡
type MoodService interface {
	Log(ctx context.Context, userID, mood, emoji, originalDate string) (*model.MoodEntry, error)
	List(ctx context.Context, userID string) ([]*model.MoodEntry, error)
}

type moodService struct {
	repo repository.MoodRepository
}

func NewMoodService(repo repository.MoodRepository) MoodService {
	return &moodService{repo: repo}
}

func (s *moodService) Log(ctx context.Context, userID, mood, emoji, originalDate string) (*model.MoodEntry, error) {
	if userID == "" || mood == "" {
		return nil, fmt.Errorf("%w: user id and mood are required", ErrInvalidArgument)
	}
	entry := &model.MoodEntry{
		ID:           uuid.New().String(),
		UserID:       userID,
		Mood:         mood,
		Emoji:        emoji,
		OriginalDate: originalDate,
		LoggedAt:     time.Now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, translateRepoError(err)
	}
	return entry, nil
}

func (s *moodService) List(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidArgument)
	}
	res, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return res, nil
}
