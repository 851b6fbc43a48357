package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/wellness-companion/pkg/response"
)

type createJournalRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
	Date    string `json:"date"`
}

// CreateJournalEntry 写日记
// @Summary 新建日记
// @Tags 日记
// @Accept json
// @Produce json
// @Param request body createJournalRequest true "日记内容"
// @Success 201 {object} response.Response
// @Router /api/v1/journal/entries [post]
func (h *Handler) CreateJournalEntry(c *gin.Context) {
	var req createJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	entry, err := h.journalSvc.Create(c.Request.Context(), req.UserID, req.Title, req.Content, req.Date)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, entry)
}

// ListJournalEntries 日记列表
// @Summary 日记列表
// @Tags 日记
// @Produce json
// @Param user_id query string true "用户 ID"
// @Success 200 {object} response.Response
// @Router /api/v1/journal/entries [get]
func (h *Handler) ListJournalEntries(c *gin.Context) {
	entries, err := h.journalSvc.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, entries)
}

type updateJournalRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

// UpdateJournalEntry 改日记
// @Summary 更新日记
// @Tags 日记
// @Accept json
// @Produce json
// @Param id path string true "日记 ID"
// @Param request body updateJournalRequest true "日记内容"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/journal/entries/{id} [put]
func (h *Handler) UpdateJournalEntry(c *gin.Context) {
	var req updateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	entry, err := h.journalSvc.Update(c.Request.Context(), req.UserID, c.Param("id"), req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, entry)
}

// DeleteJournalEntry 删日记
// @Summary 删除日记
// @Tags 日记
// @Produce json
// @Param id path string true "日记 ID"
// @Param user_id query string true "用户 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/journal/entries/{id} [delete]
func (h *Handler) DeleteJournalEntry(c *gin.Context) {
	if err := h.journalSvc.Delete(c.Request.Context(), c.Query("user_id"), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

type logMoodRequest struct {
	UserID string `json:"userId" binding:"required"`
	Mood   string `json:"mood" binding:"required"`
	Emoji  string `json:"emoji"`
	Date   string `json:"date"`
}

// LogMood 心情打卡
// @Summary 记录心情
// @Tags 心情
// @Accept json
// @Produce json
// @Param request body logMoodRequest true "心情"
// @Success 201 {object} response.Response
// @Router /api/v1/mood/entries [post]
func (h *Handler) LogMood(c *gin.Context) {
	var req logMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	entry, err := h.moodSvc.Log(c.Request.Context(), req.UserID, req.Mood, req.Emoji, req.Date)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, entry)
}

// ListMoods 心情记录列表
// @Summary 心情列表
// @Tags 心情
// @Produce json
// @Param user_id query string true "用户 ID"
// @Success 200 {object} response.Response
// @Router /api/v1/mood/entries [get]
func (h *Handler) ListMoods(c *gin.Context) {
	entries, err := h.moodSvc.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, entries)
}

// GetPoll 今日心情投票现状
// @Summary 查看每日投票
// @Tags 投票
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/mood-poll [get]
func (h *Handler) GetPoll(c *gin.Context) {
	poll, err := h.pollSvc.Current(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, poll)
}

type voteRequest struct {
	OptionID string `json:"optionId" binding:"required"`
}

// VotePoll 投票
// @Summary 每日投票计票
// @Tags 投票
// @Accept json
// @Produce json
// @Param request body voteRequest true "选项"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/mood-poll [post]
func (h *Handler) VotePoll(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	poll, err := h.pollSvc.Vote(c.Request.Context(), req.OptionID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, poll)
}

// DailyQuote 每日名言（全站当天一致）
// @Summary 每日名言
// @Tags 每日
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/daily-quote [get]
func (h *Handler) DailyQuote(c *gin.Context) {
	quote, err := h.dailySvc.DailyQuote(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"quote": quote})
}

// WellnessTip 随机健康小贴士
// @Summary 健康小贴士
// @Tags 每日
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/wellness-tip [get]
func (h *Handler) WellnessTip(c *gin.Context) {
	tip, err := h.dailySvc.WellnessTip(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"tip": tip})
}
