package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/wellness-companion/internal/model"
	"github.com/d60-Lab/wellness-companion/pkg/logger"
)

// UserInteractions 某用户对单个帖子的互动状态
type UserInteractions struct {
	Reposted   bool `json:"reposted"`
	Bookmarked bool `json:"bookmarked"`
}

type InteractionRepository interface {
	// Toggle 翻转互动状态并同步冗余计数，整体在一个事务内完成。
	// 返回提交后的计数与用户当前状态。帖子不存在返回 gorm.ErrRecordNotFound，
	// 并发冲突返回 ErrConflict。
	Toggle(ctx context.Context, userID, postID string, typ model.InteractionType) (newCount int64, nowInteracting bool, err error)
	// ListForUser 批量查询用户对一组帖子的互动状态
	ListForUser(ctx context.Context, userID string, postIDs []string) (map[string]UserInteractions, error)
	// Count 某帖子某类型的互动记录行数（校验冗余计数用）
	Count(ctx context.Context, postID string, typ model.InteractionType) (int64, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func countColumn(typ model.InteractionType) string {
	if typ == model.InteractionRepost {
		return "repost_count"
	}
	return "bookmark_count"
}

func (r *interactionRepository) Toggle(ctx context.Context, userID, postID string, typ model.InteractionType) (int64, bool, error) {
	var (
		newCount       int64
		nowInteracting bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先锁帖子行，读-改-写在锁内串行化；帖子不存在则不产生孤儿记录
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var post model.Post
		if err := q.Take(&post, "id = ?", postID).Error; err != nil {
			return err
		}

		current := post.RepostCount
		if typ == model.InteractionBookmark {
			current = post.BookmarkCount
		}

		var rec model.Interaction
		err := tx.Take(&rec, "post_id = ? AND user_id = ? AND type = ?", postID, userID, typ).Error
		switch {
		case err == nil:
			// 已互动 -> 取消：删记录，计数 -1
			if err := tx.Delete(&rec).Error; err != nil {
				return err
			}
			newCount = current - 1
			if newCount < 0 {
				// 防御性下限：计数与记录已失配，钳到 0 并告警
				logger.Warn("interaction count desync, clamping to zero",
					zap.String("post", postID), zap.String("type", string(typ)),
					zap.Int64("count", current))
				newCount = 0
			}
			nowInteracting = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			// 未互动 -> 建立：插记录，计数 +1
			rec = model.Interaction{
				ID:     uuid.New().String(),
				PostID: postID,
				UserID: userID,
				Type:   typ,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			newCount = current + 1
			nowInteracting = true
		default:
			return err
		}

		return tx.Model(&model.Post{}).Where("id = ?", postID).
			Update(countColumn(typ), newCount).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, err
		}
		return 0, false, translateError(err)
	}
	return newCount, nowInteracting, nil
}

func (r *interactionRepository) ListForUser(ctx context.Context, userID string, postIDs []string) (map[string]UserInteractions, error) {
	result := make(map[string]UserInteractions, len(postIDs))
	for _, id := range postIDs {
		result[id] = UserInteractions{}
	}
	if len(postIDs) == 0 {
		return result, nil
	}

	var rows []model.Interaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, rec := range rows {
		cur := result[rec.PostID]
		switch rec.Type {
		case model.InteractionRepost:
			cur.Reposted = true
		case model.InteractionBookmark:
			cur.Bookmarked = true
		}
		result[rec.PostID] = cur
	}
	return result, nil
}

func (r *interactionRepository) Count(ctx context.Context, postID string, typ model.InteractionType) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Interaction{}).
		Where("post_id = ? AND type = ?", postID, typ).
		Count(&cnt).Error
	return cnt, err
}
