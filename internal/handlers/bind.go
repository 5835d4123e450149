package handlers

import (
	"errors"
	"io"
	"strconv"

	"courses_api/internal/service"

	"github.com/gin-gonic/gin"
)

// decodeJSON decodes the body into dst. An empty body leaves dst zeroed so
// field validation reports what is missing.
func (h *Handler) decodeJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		h.log.Infow("bad_request_body", "path", c.Request.URL.Path, "err", err, "request_id", c.GetString(requestIDCtx))
		return badJSON()
	}
	return nil
}

// bindJSON decodes the body into dst and writes a 400 on malformed JSON.
// Returns false if the request was already handled.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := h.decodeJSON(c, dst); err != nil {
		h.writeError(c, err)
		return false
	}
	return true
}

// courseID parses :id. Anything that is not a positive integer names no course.
func (h *Handler) courseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(c, service.ErrNotFound)
		return 0, false
	}
	return id, true
}
