package handlers

import (
	"fmt"
	"net/http"

	"courses_api/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}   models.Course
// @Failure      500  {object}  errorResponse
// @Router       /api/courses [get]
func (h *Handler) listCourses(c *gin.Context) {
	courses, err := h.services.Courses.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// @Summary      Get course
// @Tags         courses
// @Produce      json
// @Param        id   path  int  true  "course id"
// @Success      200  {object}  models.Course
// @Failure      404
// @Router       /api/courses/{id} [get]
func (h *Handler) getCourse(c *gin.Context) {
	id, ok := h.courseID(c)
	if !ok {
		return
	}

	course, err := h.services.Courses.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// @Summary      Create course
// @Description  The authenticated user becomes the owner.
// @Tags         courses
// @Accept       json
// @Security     BasicAuth
// @Param        input  body  models.CourseInput  true  "course"
// @Success      201
// @Header       201  {string}  Location  "/api/courses/{id}"
// @Failure      400  {object}  errorResponse
// @Failure      401
// @Router       /api/courses [post]
func (h *Handler) createCourse(c *gin.Context) {
	var input models.CourseInput
	if ok := h.bindJSON(c, &input); !ok {
		return
	}

	id, err := h.services.Courses.Create(c.Request.Context(), currentUser(c), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/courses/%d", id))
	c.Status(http.StatusCreated)
}

// @Summary      Update course
// @Description  Owner only. id and userId in the body are ignored.
// @Tags         courses
// @Accept       json
// @Security     BasicAuth
// @Param        id     path  int                 true  "course id"
// @Param        input  body  models.CourseInput  true  "course"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401
// @Failure      403
// @Failure      404
// @Router       /api/courses/{id} [put]
func (h *Handler) updateCourse(c *gin.Context) {
	id, ok := h.courseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	// a malformed body is reported only to the course owner
	var input models.CourseInput
	if err := h.decodeJSON(c, &input); err != nil {
		if authErr := h.services.Courses.Authorize(ctx, currentUser(c), id); authErr != nil {
			err = authErr
		}
		h.writeError(c, err)
		return
	}

	if err := h.services.Courses.Update(ctx, currentUser(c), id, input); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Delete course
// @Tags         courses
// @Security     BasicAuth
// @Param        id   path  int  true  "course id"
// @Success      204
// @Failure      401
// @Failure      403
// @Failure      404
// @Router       /api/courses/{id} [delete]
func (h *Handler) deleteCourse(c *gin.Context) {
	id, ok := h.courseID(c)
	if !ok {
		return
	}

	if err := h.services.Courses.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
