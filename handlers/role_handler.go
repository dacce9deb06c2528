package handlers

import (
	"net/http"
	"strconv"

	"cms-publisher/models"
	"cms-publisher/services"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService       services.RoleService
	permissionService services.PermissionService
}

func NewRoleHandler(roleService services.RoleService, permissionService services.PermissionService) *RoleHandler {
	return &RoleHandler{
		roleService:       roleService,
		permissionService: permissionService,
	}
}

func (h *RoleHandler) GetRoles(c *gin.Context) {
	caps, ok := h.resolveCaps(c)
	if !ok {
		return
	}

	roles, err := h.roleService.GetRoles(caps)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

func (h *RoleHandler) AssignRoles(c *gin.Context) {
	caps, ok := h.resolveCaps(c)
	if !ok {
		return
	}

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req models.AssignRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.roleService.AssignRoles(uint(userID), req.RoleIDs, caps)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *RoleHandler) resolveCaps(c *gin.Context) (models.Capabilities, bool) {
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
