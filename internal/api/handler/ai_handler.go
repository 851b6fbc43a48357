package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/wellness-companion/pkg/response"
)

type chatRequest struct {
	UserInput string `json:"userInput" binding:"required"`
	// 形如 "User: ...", "AI: ..." 的扁平历史，最多取最近 6 条
	History []string `json:"history"`
}

// Chat AI 伴聊（应答 + 情绪分析一次返回）
// @Summary AI 聊天
// @Tags AI
// @Accept json
// @Produce json
// @Param request body chatRequest true "用户消息"
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/v1/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.aiSvc.Chat(c.Request.Context(), req.UserInput, req.History)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result)
}

type journalPromptRequest struct {
	Mood           string `json:"mood"`
	JournalHistory string `json:"journalHistory"`
}

// JournalPrompt 生成个性化日记引导语
// @Summary 日记引导语
// @Tags AI
// @Accept json
// @Produce json
// @Param request body journalPromptRequest true "心情与日记摘要"
// @Success 200 {object} response.Response
// @Router /api/v1/journal/prompt [post]
func (h *Handler) JournalPrompt(c *gin.Context) {
	var req journalPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	prompt, err := h.aiSvc.GenerateJournalPrompt(c.Request.Context(), req.Mood, req.JournalHistory)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"prompt": prompt})
}

type sentimentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Sentiment 文本情绪分析
// @Summary 情绪分析
// @Tags AI
// @Accept json
// @Produce json
// @Param request body sentimentRequest true "待分析文本"
// @Success 200 {object} response.Response
// @Router /api/v1/sentiment [post]
func (h *Handler) Sentiment(c *gin.Context) {
	var req sentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.aiSvc.AnalyzeSentiment(c.Request.Context(), req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result)
}

type personalizedContentRequest struct {
	Mood           string `json:"mood"`
	JournalEntries string `json:"journalEntries"`
}

// PersonalizedContent 个性化健康内容
// @Summary 个性化内容
// @Tags AI
// @Accept json
// @Produce json
// @Param request body personalizedContentRequest true "心情与日记摘要"
// @Success 200 {object} response.Response
// @Router /api/v1/content/personalized [post]
func (h *Handler) PersonalizedContent(c *gin.Context) {
	var req personalizedContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	content, err := h.aiSvc.PersonalizeContent(c.Request.Context(), req.Mood, req.JournalEntries)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"content": content})
}
