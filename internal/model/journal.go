package model

import "time"

// JournalEntry 日记（按 user_id 切分查询）
type JournalEntry struct {
	ID      string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID  string `json:"userId" gorm:"type:varchar(36);index:idx_journal_user;not null"`
	Title   string `json:"title" gorm:"type:varchar(255);not null"`
	Content string `json:"content" gorm:"type:text;not null"`
	// 客户端原始日期串，列表按它倒序
	OriginalDate string    `json:"date" gorm:"type:varchar(32);index:idx_journal_user_date"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (JournalEntry) TableName() string { return "journal_entries" }

// MoodEntry 心情打卡
type MoodEntry struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string    `json:"userId" gorm:"type:varchar(36);index:idx_mood_user;not null"`
	Mood         string    `json:"mood" gorm:"type:varchar(32);not null"`
	Emoji        string    `json:"emoji" gorm:"type:varchar(16)"`
	OriginalDate string    `json:"date" gorm:"type:varchar(32);index:idx_mood_user_date"`
	LoggedAt     time.Time `json:"loggedAt"`
}

func (MoodEntry) TableName() string { return "mood_entries" }
