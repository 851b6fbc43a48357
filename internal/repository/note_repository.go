package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/wellness-companion/internal/model"
)

// NoteRepository 便签存储。注入式依赖，替代进程级全局数组。
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	GetByID(ctx context.Context, userID, id string) (*model.Note, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Note, error)
	Update(ctx context.Context, userID, id, title, content string) (*model.Note, error)
	Delete(ctx context.Context, userID, id string) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository { return &noteRepository{db: db} }

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) GetByID(ctx context.Context, userID, id string) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).Take(&note, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) ListByUser(ctx context.Context, userID string) ([]*model.Note, error) {
	var res []*model.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&res).Error
	return res, err
}

func (r *noteRepository) Update(ctx context.Context, userID, id, title, content string) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&note, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		note.Title = title
		note.Content = content
		return tx.Save(&note).Error
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
