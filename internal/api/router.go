package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/wellness-companion/config"
	"github.com/d60-Lab/wellness-companion/internal/api/handler"
	"github.com/d60-Lab/wellness-companion/internal/model"
)

// RegisterValidators 注册自定义校验规则
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("interactiontype", func(fl validator.FieldLevel) bool {
			return model.InteractionType(fl.Field().String()).Valid()
		})
	}
}

// NewRouter 组装 gin 引擎与全部路由
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	RegisterValidators()

	r := gin.New()
	r.Use(
		gin.Logger(),
		gin.Recovery(),
		sentrygin.New(sentrygin.Options{Repanic: true}),
		otelgin.Middleware("wellness-companion"),
		gzip.Gzip(gzip.DefaultCompression),
	)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	v1 := r.Group("/api/v1")
	{
		community := v1.Group("/community")
		{
			community.POST("/posts", h.CreatePost)
			community.GET("/posts", h.ListPosts)
			community.POST("/posts/interactions", h.ListInteractions)
			community.PUT("/posts/interactions", h.ToggleInteraction)
			community.POST("/posts/:postId/replies", h.CreateReply)
			community.GET("/posts/:postId/replies", h.ListReplies)
		}

		// AI 路由统一限流
		ai := v1.Group("/", AIRateLimit(cfg.Server.AIRateLimit, cfg.Server.AIRateBurst))
		{
			ai.POST("chat", h.Chat)
			ai.POST("journal/prompt", h.JournalPrompt)
			ai.POST("sentiment", h.Sentiment)
			ai.POST("content/personalized", h.PersonalizedContent)
		}

		v1.POST("/journal/entries", h.CreateJournalEntry)
		v1.GET("/journal/entries", h.ListJournalEntries)
		v1.PUT("/journal/entries/:id", h.UpdateJournalEntry)
		v1.DELETE("/journal/entries/:id", h.DeleteJournalEntry)

		v1.POST("/mood/entries", h.LogMood)
		v1.GET("/mood/entries", h.ListMoods)

		v1.GET("/mood-poll", h.GetPoll)
		v1.POST("/mood-poll", h.VotePoll)

		v1.GET("/daily-quote", h.DailyQuote)
		v1.GET("/wellness-tip", h.WellnessTip)

		v1.POST("/notes", h.CreateNote)
		v1.GET("/notes", h.ListNotes)
		v1.GET("/notes/:id", h.GetNote)
		v1.PUT("/notes/:id", h.UpdateNote)
		v1.DELETE("/notes/:id", h.DeleteNote)
	}

	return r
}
