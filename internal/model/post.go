package model

import "time"

// Post 社区帖子，计数列为冗余缓存（与 interactions/replies 行数保持一致）
type Post struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AuthorID    string    `json:"userId" gorm:"type:varchar(36);index:idx_post_author;not null"`
	AuthorEmail string    `json:"authorEmail" gorm:"type:varchar(255);not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"-"`

	ReplyCount    int64 `json:"replyCount" gorm:"not null;default:0"`
	RepostCount   int64 `json:"repostCount" gorm:"not null;default:0"`
	BookmarkCount int64 `json:"bookmarkCount" gorm:"not null;default:0"`
}

func (Post) TableName() string { return "posts" }

// Reply 帖子回复
type Reply struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID      string    `json:"postId" gorm:"type:varchar(36);index:idx_reply_post;not null"`
	AuthorID    string    `json:"userId" gorm:"type:varchar(36);not null"`
	AuthorEmail string    `json:"authorEmail" gorm:"type:varchar(255);not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
}

func (Reply) TableName() string { return "replies" }
