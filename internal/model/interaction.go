package model

import "time"

// InteractionType 帖子互动类型
type InteractionType string

const (
	InteractionRepost   InteractionType = "repost"
	InteractionBookmark InteractionType = "bookmark"
)

// Valid 仅允许 repost / bookmark
func (t InteractionType) Valid() bool {
	return t == InteractionRepost || t == InteractionBookmark
}

// Interaction 用户对帖子的互动记录，行的存在即布尔状态
type Interaction struct {
	ID     string          `gorm:"primaryKey;type:varchar(36)"`
	PostID string          `gorm:"type:varchar(36);index:idx_inter_post;index:idx_inter_unique,unique;not null"`
	UserID string          `gorm:"type:varchar(36);index:idx_inter_user;index:idx_inter_unique,unique;not null"`
	Type   InteractionType `gorm:"type:varchar(16);index:idx_inter_unique,unique;not null"`
	// 复合唯一键，同一用户对同一帖子同一类型至多一行
	// idx_inter_unique = (post_id, user_id, type)
	CreatedAt time.Time
}

func (Interaction) TableName() string { return "post_interactions" }
