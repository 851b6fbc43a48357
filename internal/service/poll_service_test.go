package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func fixedClock(day string) func() time.Time {
	ts, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

func TestPollVoteCountsAccumulate(t *testing.T) {
	rdb := setupTestRedis(t)
	svc := &pollService{cache: rdb, now: fixedClock("2026-08-28")}
	ctx := context.Background()

	_, err := svc.Vote(ctx, "good")
	require.NoError(t, err)
	_, err = svc.Vote(ctx, "good")
	require.NoError(t, err)
	poll, err := svc.Vote(ctx, "bad")
	require.NoError(t, err)

	require.Equal(t, "2026-08-28", poll.Day)
	counts := map[string]int64{}
	for _, opt := range poll.Options {
		counts[opt.ID] = opt.Count
	}
	require.EqualValues(t, 2, counts["good"])
	require.EqualValues(t, 1, counts["bad"])
	require.EqualValues(t, 0, counts["great"])
}

func TestPollVoteUnknownOption(t *testing.T) {
	rdb := setupTestRedis(t)
	svc := &pollService{cache: rdb, now: fixedClock("2026-08-28")}

	_, err := svc.Vote(context.Background(), "ecstatic")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPollResetsAcrossDays(t *testing.T) {
	rdb := setupTestRedis(t)
	day := "2026-08-28"
	svc := &pollService{cache: rdb, now: func() time.Time { return fixedClock(day)() }}
	ctx := context.Background()

	_, err := svc.Vote(ctx, "okay")
	require.NoError(t, err)

	// 跨天后键不同，计数自然归零
	day = "2026-08-29"
	poll, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "2026-08-29", poll.Day)
	for _, opt := range poll.Options {
		require.EqualValues(t, 0, opt.Count, "option %s", opt.ID)
	}
}

func TestPollCurrentEmpty(t *testing.T) {
	rdb := setupTestRedis(t)
	svc := &pollService{cache: rdb, now: fixedClock("2026-08-28")}

	poll, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, pollQuestion, poll.Question)
	require.Len(t, poll.Options, len(pollOptions))
	for _, opt := range poll.Options {
		require.EqualValues(t, 0, opt.Count)
	}
}
