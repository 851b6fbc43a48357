package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/wellness-companion/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context, offset, limit int) ([]*model.Post, error)
	// AddReply 在一个事务内落地回复并同步 reply_count
	AddReply(ctx context.Context, reply *model.Reply) (int64, error)
	ListReplies(ctx context.Context, postID string, offset, limit int) ([]*model.Reply, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Take(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, offset, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *postRepository) AddReply(ctx context.Context, reply *model.Reply) (int64, error) {
	var newCount int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var post model.Post
		if err := q.Take(&post, "id = ?", reply.PostID).Error; err != nil {
			return err
		}
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		newCount = post.ReplyCount + 1
		return tx.Model(&model.Post{}).Where("id = ?", post.ID).
			Update("reply_count", newCount).Error
	})
	if err != nil {
		return 0, translateError(err)
	}
	return newCount, nil
}

func (r *postRepository) ListReplies(ctx context.Context, postID string, offset, limit int) ([]*model.Reply, error) {
	var res []*model.Reply
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}
