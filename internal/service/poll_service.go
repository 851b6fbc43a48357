package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PollOption 每日心情投票选项
type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Count int64  `json:"count"`
}

// Poll 投票现状
type Poll struct {
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
	Day      string       `json:"day"` // YYYY-MM-DD
}

const pollQuestion = "How are you feeling overall today?"

// 固定选项集
var pollOptions = []PollOption{
	{ID: "great", Text: "😄 Great"},
	{ID: "good", Text: "🙂 Good"},
	{ID: "okay", Text: "😐 Okay"},
	{ID: "meh", Text: "😕 Not great"},
	{ID: "bad", Text: "😟 Bad"},
}

const pollKeyTTL = 48 * time.Hour

// PollService 每日心情投票。计数按天落在 redis，跨天自然清零（键带日期，48h TTL 兜底回收）。
type PollService interface {
	Current(ctx context.Context) (*Poll, error)
	// Vote 计票并返回最新状态；未知选项返回 ErrInvalidArgument
	Vote(ctx context.Context, optionID string) (*Poll, error)
}

type pollService struct {
	cache *redis.Client
	now   func() time.Time
}

func NewPollService(cache *redis.Client) PollService {
	return &pollService{cache: cache, now: time.Now}
}

func pollKey(day, optionID string) string {
	return fmt.Sprintf("poll:%s:%s", day, optionID)
}

func (s *pollService) day() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *pollService) Current(ctx context.Context) (*Poll, error) {
	day := s.day()
	keys := make([]string, len(pollOptions))
	for i, opt := range pollOptions {
		keys[i] = pollKey(day, opt.ID)
	}

	vals, err := s.cache.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, translateCacheError(err)
	}

	out := &Poll{Question: pollQuestion, Day: day, Options: make([]PollOption, len(pollOptions))}
	for i, opt := range pollOptions {
		count := int64(0)
		if str, ok := vals[i].(string); ok {
			fmt.Sscanf(str, "%d", &count)
		}
		opt.Count = count
		out.Options[i] = opt
	}
	return out, nil
}

func (s *pollService) Vote(ctx context.Context, optionID string) (*Poll, error) {
	valid := false
	for _, opt := range pollOptions {
		if opt.ID == optionID {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("%w: unknown poll option %q", ErrInvalidArgument, optionID)
	}

	day := s.day()
	key := pollKey(day, optionID)
	pipe := s.cache.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, pollKeyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, translateCacheError(err)
	}
	return s.Current(ctx)
}

// translateCacheError redis 故障对外统一为 Unavailable
func translateCacheError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
