package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pokedex/backend/internal/domain/shared"
	"github.com/pokedex/backend/internal/infrastructure/logger"
	"github.com/pokedex/backend/internal/interfaces/http/dto"
	"github.com/pokedex/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler writes the response envelope shared by every handler
type BaseHandler struct{}

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

// Success answers 200 with data
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error answers with an error envelope tagged with the request ID
func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, requestID(c)))
}

// ValidationError answers 400 listing every rejected field
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("Request validation failed", requestID(c), details))
}

// HandleError turns a use-case error into a response. A DomainError keeps
// its message; any other error is logged and answered with a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var de *shared.DomainError
	if !errors.As(err, &de) {
		logger.GetGinLogger(c).Error("Unhandled error", zap.Error(err))
		h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
		return
	}

	code := dto.NormalizeErrorCode(de.Code)
	status := dto.GetHTTPStatus(code)
	if status >= http.StatusInternalServerError {
		logger.GetGinLogger(c).Warn("Request failed", zap.String("code", de.Code))
	}
	h.Error(c, status, code, de.Message)
}
