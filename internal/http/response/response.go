package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/streamsvc/domain"
	"go.uber.org/zap"
)

const DefaultMessage = "Success"

// Envelope is the body of every successful response
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       interface{}     `json:"data"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Timestamp  string          `json:"timestamp"`
}

// PaginationMeta is the pagination block of list responses
type PaginationMeta struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// ErrorBody is the error block of failed responses
type ErrorBody struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Details    interface{} `json:"details,omitempty"`
}

// ErrorEnvelope is the body of every failed response
type ErrorEnvelope struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// Success writes data in the success envelope with the given status.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if message == "" {
		message = DefaultMessage
	}
	c.JSON(status, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: timestamp(),
	})
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// Paginated writes a list page with its pagination block.
func Paginated(c *gin.Context, data interface{}, p domain.Pagination) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: DefaultMessage,
		Data:    data,
		Pagination: &PaginationMeta{
			Page:            p.Page,
			Limit:           p.Limit,
			Total:           p.Total,
			TotalPages:      p.TotalPages,
			HasNextPage:     p.HasNextPage(),
			HasPreviousPage: p.HasPreviousPage(),
		},
		Timestamp: timestamp(),
	})
}

// Error maps err onto the error envelope and aborts the handler chain.
// Internal errors are logged with the request path.
func Error(c *gin.Context, logger *zap.Logger, err error) {
	appErr := domain.AsAppError(err)

	if appErr.Kind == domain.KindInternal && logger != nil {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}

	c.AbortWithStatusJSON(appErr.Status, ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Code:       appErr.Code,
			Message:    appErr.Message,
			StatusCode: appErr.Status,
			Details:    appErr.Details,
		},
		Timestamp: timestamp(),
	})
}
