package handlers

import (
	"net/http"
	"strconv"

	"cms-publisher/models"
	"cms-publisher/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService   services.CategoryService
	permissionService services.PermissionService
}

func NewCategoryHandler(categoryService services.CategoryService, permissionService services.PermissionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService:   categoryService,
		permissionService: permissionService,
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	caps, ok := h.resolveCaps(c)
	if !ok {
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.CreateCategory(req, caps)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	caps, ok := h.resolveCaps(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.GetCategories(caps)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	caps, ok := h.resolveCaps(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	category, err := h.categoryService.GetCategory(uint(id), caps)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	caps, ok := h.resolveCaps(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(uint(id), req, caps)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) resolveCaps(c *gin.Context) (models.Capabilities, bool) {
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
