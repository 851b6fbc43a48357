package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/wellness-companion/internal/model"
	"github.com/d60-Lab/wellness-companion/pkg/response"
)

type createPostRequest struct {
	UserID      string `json:"userId" binding:"required"`
	AuthorEmail string `json:"authorEmail" binding:"required,email"`
	Content     string `json:"content" binding:"required"`
}

// CreatePost 发帖
// @Summary 发布社区帖子
// @Tags 社区
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/community/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.communitySvc.CreatePost(c.Request.Context(), req.UserID, req.AuthorEmail, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, post)
}

// ListPosts 帖子列表（新帖在前）
// @Summary 社区帖子列表
// @Tags 社区
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页条数"
// @Success 200 {object} response.Response
// @Router /api/v1/community/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	posts, err := h.communitySvc.ListPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, posts)
}

type createReplyRequest struct {
	UserID      string `json:"userId" binding:"required"`
	AuthorEmail string `json:"authorEmail" binding:"required,email"`
	Content     string `json:"content" binding:"required"`
}

// CreateReply 回帖（回复与父帖计数同事务落地）
// @Summary 回复帖子
// @Tags 社区
// @Accept json
// @Produce json
// @Param postId path string true "帖子 ID"
// @Param request body createReplyRequest true "回复内容"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/community/posts/{postId}/replies [post]
func (h *Handler) CreateReply(c *gin.Context) {
	var req createReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	reply, newCount, err := h.communitySvc.AddReply(c.Request.Context(), c.Param("postId"), req.UserID, req.AuthorEmail, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, gin.H{"reply": reply, "replyCount": newCount})
}

// ListReplies 回复列表（旧的在前）
// @Summary 帖子回复列表
// @Tags 社区
// @Produce json
// @Param postId path string true "帖子 ID"
// @Success 200 {object} response.Response
// @Router /api/v1/community/posts/{postId}/replies [get]
func (h *Handler) ListReplies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	replies, err := h.communitySvc.ListReplies(c.Request.Context(), c.Param("postId"), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, replies)
}

type toggleInteractionRequest struct {
	UserID          string `json:"userId" binding:"required"`
	PostID          string `json:"postId" binding:"required"`
	InteractionType string `json:"interactionType" binding:"required,interactiontype"`
}

// ToggleInteraction 翻转转发/收藏状态
// @Summary 切换帖子互动（repost/bookmark）
// @Tags 社区
// @Accept json
// @Produce json
// @Param request body toggleInteractionRequest true "互动信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/v1/community/posts/interactions [put]
func (h *Handler) ToggleInteraction(c *gin.Context) {
	var req toggleInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.interactionSvc.Toggle(c.Request.Context(), req.UserID, req.PostID, model.InteractionType(req.InteractionType))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result)
}

type listInteractionsRequest struct {
	UserID  string   `json:"userId" binding:"required"`
	PostIDs []string `json:"postIds" binding:"required"`
}

// ListInteractions 批量查询用户对一组帖子的互动状态
// @Summary 查询用户互动状态
// @Tags 社区
// @Accept json
// @Produce json
// @Param request body listInteractionsRequest true "查询条件"
// @Success 200 {object} response.Response
// @Router /api/v1/community/posts/interactions [post]
func (h *Handler) ListInteractions(c *gin.Context) {
	var req listInteractionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.interactionSvc.ListForUser(c.Request.Context(), req.UserID, req.PostIDs)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result)
}
