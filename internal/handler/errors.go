package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/VirtuGrowDigital/LucknowZone/internal/domain"
	"github.com/VirtuGrowDigital/LucknowZone/internal/logger"
	"github.com/VirtuGrowDigital/LucknowZone/internal/middleware"
)

// respondError maps service errors onto HTTP status codes. Validation
// failures carry field details; everything unexpected is logged and
// collapsed into a bare 500.
func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": verrs})
		return
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		return
	}

	var invalidState *domain.InvalidStateError
	if errors.As(err, &invalidState) {
		c.JSON(http.StatusConflict, gin.H{"error": invalidState.Error()})
		return
	}

	var policy *domain.PolicyError
	if errors.As(err, &policy) {
		c.JSON(http.StatusForbidden, gin.H{"error": policy.Error()})
		return
	}

	if errors.Is(err, domain.ErrProviderNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	logger.ErrorContext(c.Request.Context(), "request failed",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
