package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumni-network/backend/internal/models"
	"alumni-network/backend/internal/service"
	"alumni-network/backend/pkg/logger"
)

// AuthHandler handles signup and login. No session or token is issued:
// callers act under plain user ids, which is a deliberate property of
// this service's scope.
type AuthHandler struct {
	directory *service.DirectoryService
	logger    *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(directory *service.DirectoryService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{directory: directory, logger: logger}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
}

// Signup handles user registration
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for signup", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.directory.Signup(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("New user created", "userID", user.ID, "username", user.Username, "role", user.Role)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"user":    user.ToResponse(),
	})
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for login", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
		return
	}

	user, err := h.directory.Login(req.Username, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		respondError(c, err)
		return
	}

	h.logger.Info("User logged in", "userID", user.ID, "username", user.Username, "role", user.Role)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.ToResponse(),
	})
}
