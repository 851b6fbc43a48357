package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/wellness-companion/internal/model"
)

type MoodRepository interface {
	Create(ctx context.Context, entry *model.MoodEntry) error
	ListByUser(ctx context.Context, userID string) ([]*model.MoodEntry, error)
}

type moodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) MoodRepository { return &moodRepository{db: db} }

func (r *moodRepository) Create(ctx context.Context, entry *model.MoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *moodRepository) ListByUser(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	var res []*model.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("original_date DESC").
		Find(&res).Error
	return res, err
}
