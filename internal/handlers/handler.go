package handlers

import (
	"net/http"

	"courses_api/internal/logger"
	"courses_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const statusOK = "ok"

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services  *service.Service
	log       *logger.Logger
	logErrors bool
}

// Option tweaks a Handler at construction.
type Option func(*Handler)

// WithErrorLogging makes the error normalizer log every failure it renders.
func WithErrorLogging(enabled bool) Option {
	return func(h *Handler) { h.logErrors = enabled }
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.requestID, h.accessLog, gin.CustomRecovery(h.recoverPanic))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		h.registerUserRoutes(api)
		h.registerCourseRoutes(api)
	}

	router.NoRoute(h.routeNotFound)
	return router
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("", h.basicAuth, h.getCurrentUser)
		users.POST("", h.createUser)
	}
}

func (h *Handler) registerCourseRoutes(api *gin.RouterGroup) {
	courses := api.Group("/courses")
	{
		courses.GET("", h.listCourses)
		courses.GET("/:id", h.getCourse)
		courses.POST("", h.basicAuth, h.createCourse)
		courses.PUT("/:id", h.basicAuth, h.updateCourse)
		courses.DELETE("/:id", h.basicAuth, h.deleteCourse)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

func (h *Handler) routeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Route Not Found"})
}
