package handlers

import (
	"time"

	"courses_api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userCtx         = "user"
	requestIDCtx    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// basicAuth authenticates the request with HTTP Basic credentials and stores
// the user under userCtx. Every failure is a bare 401.
func (h *Handler) basicAuth(c *gin.Context) {
	email, password, ok := c.Request.BasicAuth()
	if !ok {
		h.log.Debugw("auth_missing_credentials", "path", c.FullPath(), "request_id", c.GetString(requestIDCtx))
		h.writeError(c, errUnauthenticated)
		return
	}

	user, err := h.services.Authenticate(c.Request.Context(), email, password)
	if err != nil {
		h.log.Infow("auth_failed", "email", email, "request_id", c.GetString(requestIDCtx))
		h.writeError(c, err)
		return
	}

	c.Set(userCtx, user)
	c.Next()
}

// currentUser returns the user stored by basicAuth, nil on public routes.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userCtx)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

// requestID reuses the caller's X-Request-ID or generates one, and echoes it.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDCtx, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (h *Handler) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"request_id", c.GetString(requestIDCtx),
	)
}
