package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cms-publisher/models"
	"cms-publisher/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArticleHandler struct {
	articleService    services.ArticleService
	scheduleService   services.ScheduleService
	permissionService services.PermissionService
}

func NewArticleHandler(
	articleService services.ArticleService,
	scheduleService services.ScheduleService,
	permissionService services.PermissionService,
) *ArticleHandler {
	return &ArticleHandler{
		articleService:    articleService,
		scheduleService:   scheduleService,
		permissionService: permissionService,
	}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	caps, ok := h.resolveCaps(c)
	if !ok {
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.CreateArticle(req, caps)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	articles, total, err := h.articleService.GetArticles(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	shared := c.Query("shared") == "true"

	article, err := h.articleService.GetArticle(uint(id), shared)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Kanban(c *gin.Context) {
	board, err := h.articleService.Kanban()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft_articles":     board[models.StateDraft],
		"revision_articles":  board[models.StateRevision],
		"edited_articles":    board[models.StateEdited],
		"published_articles": board[models.StatePublished],
		"inactive_articles":  board[models.StateInactive],
	})
}

func (h *ArticleHandler) ChangeState(c *gin.Context) {
	caps, ok := h.resolveCaps(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.ChangeStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.ChangeState(uint(id), req.State, caps)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) SchedulePublication(c *gin.Context) {
	caps, ok := h.resolveCaps(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.SchedulePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.scheduleService.SchedulePublication(uint(id), req.ToPublishAt, caps)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

func (h *ArticleHandler) LikeArticle(c *gin.Context) {
	h.vote(c, models.VoteLike)
}

func (h *ArticleHandler) DislikeArticle(c *gin.Context) {
	h.vote(c, models.VoteDislike)
}

func (h *ArticleHandler) vote(c *gin.Context, vote int) {
	caps, ok := h.resolveCaps(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	article, err := h.articleService.Vote(uint(id), vote, caps)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) resolveCaps(c *gin.Context) (models.Capabilities, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return models.Capabilities{}, false
	}

	caps, err := h.permissionService.ResolveCapabilities(userID.(uint))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to resolve permissions"})
		return models.Capabilities{}, false
	}

	return caps, true
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, models.ErrScheduleConflict):
		return http.StatusConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
