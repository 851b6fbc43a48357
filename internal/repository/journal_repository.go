package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/wellness-companion/internal/model"
)

type JournalRepository interface {
	Create(ctx context.Context, entry *model.JournalEntry) error
	ListByUser(ctx context.Context, userID string) ([]*model.JournalEntry, error)
	Update(ctx context.Context, userID, entryID string, title, content string) (*model.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID string) error
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository { return &journalRepository{db: db} }

func (r *journalRepository) Create(ctx context.Context, entry *model.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) ListByUser(ctx context.Context, userID string) ([]*model.JournalEntry, error) {
	var res []*model.JournalEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("original_date DESC").
		Find(&res).Error
	return res, err
}

func (r *journalRepository) Update(ctx context.Context, userID, entryID, title, content string) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&entry, "id = ? AND user_id = ?", entryID, userID).Error; err != nil {
			return err
		}
		entry.Title = title
		entry.Content = content
		return tx.Save(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) Delete(ctx context.Context, userID, entryID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&model.JournalEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
