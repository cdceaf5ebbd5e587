package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Paginated sends a list response with pagination metadata
func Paginated(c *gin.Context, status int, items interface{}, meta interface{}) {
	c.JSON(status, gin.H{
		"data": items,
		"meta": meta,
	})
}

// Error sends an error response. Domain sentinel errors are mapped to their
// HTTP status; anything unrecognized becomes a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.FromDomain(err)
	}

	c.JSON(appErr.Status, gin.H{
		"error": appErr.Message,
	})
}
