package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// RespondText serves a plain-text document as a download.
func RespondText(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Session not found")
	case errors.Is(err, ErrUnknownChecklistItem):
		RespondError(c, http.StatusNotFound, "Checklist item not found")
	case errors.Is(err, ErrInvalidCategory):
		RespondError(c, http.StatusBadRequest, "Unknown checklist category")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDatabaseError):
		Logger(c).Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		Logger(c).Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// Logger returns the request-scoped logger installed by the logging middleware,
// or a no-op logger when none is present.
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get("logger"); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}
