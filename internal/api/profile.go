package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumni-network/backend/internal/models"
	"alumni-network/backend/internal/service"
	"alumni-network/backend/pkg/logger"
)

// ProfileHandler handles profile reads and skill-tag updates
type ProfileHandler struct {
	directory *service.DirectoryService
	logger    *logger.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(directory *service.DirectoryService, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{directory: directory, logger: logger}
}

// RegisterRoutes registers the profile routes
func (h *ProfileHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/profile/:id", h.GetProfile)
	router.PUT("/profile/:id", h.UpdateProfile)
}

// GetProfile returns a user's full profile; unknown ids are a 404
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	profile, err := h.directory.Profile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile replaces the user's skill tags and college
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for profile update", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.directory.UpdateProfile(userID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
