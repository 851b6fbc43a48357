package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/wellness-companion/pkg/logger"
)

// Quote 每日名言
type Quote struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{ID: 1, Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{ID: 2, Text: "Strive not to be a success, but rather to be of value.", Author: "Albert Einstein"},
	{ID: 3, Text: "The mind is everything. What you think you become.", Author: "Buddha"},
	{ID: 4, Text: "Your time is limited, so don't waste it living someone else's life.", Author: "Steve Jobs"},
	{ID: 5, Text: "The best way to predict the future is to create it.", Author: "Peter Drucker"},
	{ID: 6, Text: "Have no fear of perfection, you'll never reach it.", Author: "Salvador Dalí"},
	{ID: 7, Text: "Life is what happens when you're busy making other plans.", Author: "John Lennon"},
}

var wellnessTips = []string{
	"Drink a glass of water right after waking up.",
	"Take five minutes for meditation or deep breathing.",
	"Stretch once an hour if you sit a lot.",
	"Write down three things you are grateful for today.",
	"Take a short walk outside if you can.",
	"Make sure you get enough sleep tonight (7-9 hours).",
	"Eat at least one serving of fresh fruit or vegetables.",
	"Call a friend or family member just to say hello.",
	"Limit your screen time, especially before bed.",
	"Do one activity you enjoy just for yourself.",
	"Plan something to look forward to this weekend.",
	"Practice saying 'no' to requests that overload you.",
	"Tidy your workspace or living area for a clearer mind.",
	"Listen to music that calms or energizes you.",
	"Try a new healthy recipe that is easy to make.",
}

// DailyService 每日名言与健康小贴士。名言按天缓存在 redis，全站当天一致；
// redis 不可用时退化为随机挑选。
type DailyService interface {
	DailyQuote(ctx context.Context) (*Quote, error)
	WellnessTip(ctx context.Context) (string, error)
}

type dailyService struct {
	cache *redis.Client
	now   func() time.Time
}

func NewDailyService(cache *redis.Client) DailyService {
	return &dailyService{cache: cache, now: time.Now}
}

func (s *dailyService) DailyQuote(ctx context.Context) (*Quote, error) {
	day := s.now().UTC().Format("2006-01-02")
	key := "quote:" + day

	if s.cache != nil {
		if idx, err := s.cache.Get(ctx, key).Int(); err == nil && idx >= 0 && idx < len(quotes) {
			q := quotes[idx]
			return &q, nil
		}
	}

	idx := rand.Intn(len(quotes))
	if s.cache != nil {
		// SetNX：并发首次请求只有一个写入成功，之后统一读缓存
		if ok, err := s.cache.SetNX(ctx, key, idx, pollKeyTTL).Result(); err != nil {
			logger.Warn("daily quote cache write failed", zap.Error(err))
		} else if !ok {
			if cached, err := s.cache.Get(ctx, key).Int(); err == nil && cached >= 0 && cached < len(quotes) {
				idx = cached
			}
		}
	}
	q := quotes[idx]
	return &q, nil
}

func (s *dailyService) WellnessTip(_ context.Context) (string, error) {
	return wellnessTips[rand.Intn(len(wellnessTips))], nil
}
