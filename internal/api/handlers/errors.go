package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pizzatime/storefront/internal/domain"
)

func respondError(c *gin.Context, err error, logger *zap.Logger) {
	var (
		notFound     *domain.ErrNotFound
		missing      *domain.RequiredFieldMissingError
		invalidField *domain.ErrInvalidField
		invalidMode  *domain.ErrInvalidDeliveryMode
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &missing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": missing.Fields,
		})
	case errors.As(err, &invalidField), errors.As(err, &invalidMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
