package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/d60-Lab/wellness-companion/config"
	"github.com/d60-Lab/wellness-companion/internal/api"
	"github.com/d60-Lab/wellness-companion/internal/api/handler"
	"github.com/d60-Lab/wellness-companion/internal/llm"
	"github.com/d60-Lab/wellness-companion/internal/repository"
	"github.com/d60-Lab/wellness-companion/internal/service"
	"github.com/d60-Lab/wellness-companion/pkg/cache"
	"github.com/d60-Lab/wellness-companion/pkg/database"
	"github.com/d60-Lab/wellness-companion/pkg/logger"
	"github.com/d60-Lab/wellness-companion/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())

	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := must(tracing.Init(ctx, cfg, "wellness-companion"))
	defer shutdownTracing(context.Background()) //nolint:errcheck

	db := must(database.InitDB(cfg))
	rdb := must(cache.InitRedis(cfg))
	gen := must(llm.NewGeminiClient(ctx, cfg.LLM))

	llmOpts := llm.Options{
		MaxAttempts: cfg.LLM.MaxAttempts,
		BaseDelay:   cfg.LLM.BaseDelay,
		Backoff:     llm.Backoff(cfg.LLM.Backoff),
	}

	// repositories & services
	interactionRepo := repository.NewInteractionRepository(db)
	postRepo := repository.NewPostRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	h := handler.New(
		service.NewInteractionService(interactionRepo),
		service.NewCommunityService(postRepo),
		service.NewAIService(gen, llmOpts),
		service.NewJournalService(journalRepo),
		service.NewMoodService(moodRepo),
		service.NewNoteService(noteRepo),
		service.NewPollService(rdb),
		service.NewDailyService(rdb),
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewRouter(cfg, h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server exited", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
