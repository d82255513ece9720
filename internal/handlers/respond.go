package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ashwannasleep/UX-Job-Tracker/internal/apperrors"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps a domain error to its HTTP status. Validation
// failures report the offending fields; everything else is an opaque
// 500 so storage detail never reaches the client.
func respondError(c *gin.Context, log *zap.Logger, err error, fallback string) {
	var de *apperrors.DomainError
	if errors.As(err, &de) {
		switch de.Type {
		case apperrors.ErrTypeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": de.Message})
			return
		case apperrors.ErrTypeInvalidInput:
			payload := gin.H{"message": de.Message}
			if len(de.Fields) > 0 {
				payload["errors"] = de.Fields
			}
			c.JSON(http.StatusBadRequest, payload)
			return
		}
	}

	log.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "errors": []string{err.Error()}})
}
