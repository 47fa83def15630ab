package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "alumni-network/backend/pkg/errors"
	"alumni-network/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedEngine(burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New(logger.Config{Level: logger.LevelError, JSON: true, Output: io.Discard})

	limiter := NewRateLimiter(log, RateLimiterOptions{
		Limit:          1,
		Burst:          burst,
		ExpiryDuration: time.Hour,
		KeyFunc:        func(c *gin.Context) string { return "test-client" },
	})

	engine := gin.New()
	engine.Use(apperrors.ErrorHandler())
	engine.Use(limiter.Middleware())
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return engine
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	engine := limitedEngine(3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterRejectsBeyondBurst(t *testing.T) {
	engine := limitedEngine(1)

	first := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(second, req)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}
