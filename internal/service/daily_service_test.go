package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDailyQuoteStableWithinDay(t *testing.T) {
	rdb := setupTestRedis(t)
	svc := &dailyService{cache: rdb, now: fixedClock("2026-08-28")}
	ctx := context.Background()

	first, err := svc.DailyQuote(ctx)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		q, err := svc.DailyQuote(ctx)
		require.NoError(t, err)
		require.Equal(t, first.ID, q.ID)
	}
}

func TestDailyQuoteWithoutCache(t *testing.T) {
	svc := &dailyService{cache: nil, now: fixedClock("2026-08-28")}

	q, err := svc.DailyQuote(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, q.Text)
	require.NotEmpty(t, q.Author)
}

func TestWellnessTipNonEmpty(t *testing.T) {
	svc := &dailyService{cache: nil, now: fixedClock("2026-08-28")}

	tip, err := svc.WellnessTip(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, tip)
}
