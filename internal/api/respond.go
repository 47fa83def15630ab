package api

import (
	"github.com/gin-gonic/gin"

	"alumni-network/backend/pkg/errors"
)

// respondError writes an error response using the service error taxonomy:
// validation failures as 400, missing records as 404, store failures as 500.
func respondError(c *gin.Context, err error) {
	appErr := errors.FromError(err)
	c.JSON(appErr.StatusCode, gin.H{
		"error": appErr.Message,
		"code":  appErr.Code,
	})
}
