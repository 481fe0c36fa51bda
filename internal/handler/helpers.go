package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/accountd/internal/middleware"
	appErr "github.com/xxxsen/accountd/internal/pkg/errors"
	"github.com/xxxsen/accountd/internal/pkg/response"
)

func getUserID(c *gin.Context) int64 {
	value, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := value.(int64)
	return userID
}

// handleError maps classified service errors to HTTP statuses in one place.
// Anything unclassified is rendered as a generic internal error; the detail
// stays in the server log only.
func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get(middleware.ContextRequestIDKey)
	logger := logutil.GetLogger(c.Request.Context()).With(
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int64("user_id", getUserID(c)),
	)
	if ve, ok := appErr.AsValidation(err); ok {
		logger.Warn("request rejected", zap.Error(err))
		response.ErrorWithDetails(c, http.StatusBadRequest, "validation_failed", "validation failed", ve.Violations)
		return
	}
	switch {
	case errors.Is(err, appErr.ErrUnauthorized):
		logger.Warn("request rejected", zap.Error(err))
		response.Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
	case errors.Is(err, appErr.ErrNotFound):
		logger.Warn("request rejected", zap.Error(err))
		response.Error(c, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, appErr.ErrInvalid):
		logger.Warn("request rejected", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
	case errors.Is(err, appErr.ErrConflict):
		logger.Warn("request rejected", zap.Error(err))
		response.Error(c, http.StatusConflict, "conflict", "conflict")
	default:
		logger.Error("request failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "internal", "internal error")
	}
}
