package handlers

import (
	"fmt"
	"net/http"

	"courses_api/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Current user
// @Description  Returns the authenticated user without credentials.
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  models.User
// @Failure      401
// @Router       /api/users [get]
func (h *Handler) getCurrentUser(c *gin.Context) {
	auth := currentUser(c)
	if auth == nil {
		h.writeError(c, errUnauthenticated)
		return
	}

	user, err := h.services.Current(c.Request.Context(), auth.EmailAddress)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Create user
// @Tags         users
// @Accept       json
// @Param        input  body  models.NewUserInput  true  "new account"
// @Success      201
// @Header       201  {string}  Location  "/api/users/{id}"
// @Failure      400  {object}  errorResponse
// @Router       /api/users [post]
func (h *Handler) createUser(c *gin.Context) {
	var input models.NewUserInput
	if ok := h.bindJSON(c, &input); !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), input)
	if err != nil {
		h.log.Infow("user_sign_up_failed", "email", input.EmailAddress, "err", err, "request_id", c.GetString(requestIDCtx))
		h.writeError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/users/%d", id))
	c.Status(http.StatusCreated)
}
