package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/wellness-companion/pkg/response"
)

type noteRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

// CreateNote 新建便签
// @Summary 新建便签
// @Tags 便签
// @Accept json
// @Produce json
// @Param request body noteRequest true "便签内容"
// @Success 201 {object} response.Response
// @Router /api/v1/notes [post]
func (h *Handler) CreateNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	note, err := h.noteSvc.Create(c.Request.Context(), req.UserID, req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, note)
}

// ListNotes 便签列表
// @Summary 便签列表
// @Tags 便签
// @Produce json
// @Param user_id query string true "用户 ID"
// @Success 200 {object} response.Response
// @Router /api/v1/notes [get]
func (h *Handler) ListNotes(c *gin.Context) {
	notes, err := h.noteSvc.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, notes)
}

// GetNote 查单条便签
// @Summary 便签详情
// @Tags 便签
// @Produce json
// @Param id path string true "便签 ID"
// @Param user_id query string true "用户 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/notes/{id} [get]
func (h *Handler) GetNote(c *gin.Context) {
	note, err := h.noteSvc.Get(c.Request.Context(), c.Query("user_id"), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, note)
}

// UpdateNote 改便签
// @Summary 更新便签
// @Tags 便签
// @Accept json
// @Produce json
// @Param id path string true "便签 ID"
// @Param request body noteRequest true "便签内容"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/notes/{id} [put]
func (h *Handler) UpdateNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	note, err := h.noteSvc.Update(c.Request.Context(), req.UserID, c.Param("id"), req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, note)
}

// DeleteNote 删便签
// @Summary 删除便签
// @Tags 便签
// @Produce json
// @Param id path string true "便签 ID"
// @Param user_id query string true "用户 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/notes/{id} [delete]
func (h *Handler) DeleteNote(c *gin.Context) {
	if err := h.noteSvc.Delete(c.Request.Context(), c.Query("user_id"), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}
