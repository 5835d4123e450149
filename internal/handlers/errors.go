package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"courses_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidJSON = "Request body must be valid JSON"
	msgUnexpected  = "An unexpected error occurred"
)

var errUnauthenticated = service.ErrUnauthenticated

// errorResponse is the body of every 400 and 500 response.
type errorResponse struct {
	Message any      `json:"message" swaggertype:"array,string"`
	Error   struct{} `json:"error"`
}

// writeError renders err and aborts the chain. Foreign errors are unclassified.
func (h *Handler) writeError(c *gin.Context, err error) {
	kind := service.KindOf(err)

	switch kind {
	case service.KindUnauthenticated:
		c.AbortWithStatus(http.StatusUnauthorized)
	case service.KindForbidden:
		c.AbortWithStatus(http.StatusForbidden)
	case service.KindNotFound:
		c.AbortWithStatus(http.StatusNotFound)
	case service.KindValidation, service.KindConstraint:
		h.logError(c, kind, err)
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Message: clientMessages(err)})
	default:
		h.logError(c, kind, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Message: msgUnexpected})
	}
}

// clientMessages returns the client-safe messages carried by err.
func clientMessages(err error) []string {
	var serr *service.Error
	if errors.As(err, &serr) {
		return serr.Messages
	}
	return nil
}

func (h *Handler) logError(c *gin.Context, kind service.Kind, err error) {
	if !h.logErrors {
		return
	}
	h.log.Errorw("global_error_handler",
		"kind", kind.String(),
		"err", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", c.GetString(requestIDCtx),
	)
}

// recoverPanic turns a panic into the generic 500 response.
func (h *Handler) recoverPanic(c *gin.Context, rec any) {
	h.log.Errorw("panic_recovered", "panic", rec, "path", c.Request.URL.Path, "request_id", c.GetString(requestIDCtx))
	h.writeError(c, fmt.Errorf("panic: %v", rec))
}

func badJSON() error {
	return &service.Error{Kind: service.KindValidation, Messages: []string{msgInvalidJSON}}
}
