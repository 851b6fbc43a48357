package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/wellness-companion/internal/llm"
	"github.com/d60-Lab/wellness-companion/internal/service"
	"github.com/d60-Lab/wellness-companion/pkg/logger"
	"github.com/d60-Lab/wellness-companion/pkg/response"
)

// Handler 聚合全部 HTTP 处理器依赖
type Handler struct {
	interactionSvc service.InteractionService
	communitySvc   service.CommunityService
	aiSvc          service.AIService
	journalSvc     service.JournalService
	moodSvc        service.MoodService
	noteSvc        service.NoteService
	pollSvc        service.PollService
	dailySvc       service.DailyService
}

func New(
	interactionSvc service.InteractionService,
	communitySvc service.CommunityService,
	aiSvc service.AIService,
	journalSvc service.JournalService,
	moodSvc service.MoodService,
	noteSvc service.NoteService,
	pollSvc service.PollService,
	dailySvc service.DailyService,
) *Handler {
	return &Handler{
		interactionSvc: interactionSvc,
		communitySvc:   communitySvc,
		aiSvc:          aiSvc,
		journalSvc:     journalSvc,
		moodSvc:        moodSvc,
		noteSvc:        noteSvc,
		pollSvc:        pollSvc,
		dailySvc:       dailySvc,
	}
}

// fail 按错误分类映射 HTTP 状态码，未识别错误记日志并归为 500
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUnavailable), errors.Is(err, llm.ErrServiceOverloaded):
		response.Unavailable(c, err.Error())
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.ServerError(c, "internal error")
	}
}
