package handlers

import (
	"travel_planner/internal/logger"
	"travel_planner/internal/service"

	_ "travel_planner/docs"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options toggles optional parts of the HTTP surface.
type Options struct {
	// LegacyRoutes mounts the unauthenticated, unscoped /api routes.
	LegacyRoutes bool
	CORSOrigins  []string
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger, h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerProtectedRoutes(router)

	// Authenticates itself so browsers can pass the token as a query param.
	router.GET("/ws", h.wsConnect)

	if h.opts.LegacyRoutes {
		h.registerLegacyRoutes(router)
	}

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.POST("/signup", h.signUp)
	r.POST("/login", h.login)
}

func (h *Handler) registerProtectedRoutes(r *gin.Engine) {
	api := r.Group("/", h.authMiddleware)
	{
		trips := api.Group("/trips")
		{
			trips.GET("", h.listTrips)
			trips.POST("", h.createTrip)
			trips.GET("/:id", h.getTrip)
			trips.PUT("/:id", h.updateTrip)
			trips.DELETE("/:id", h.deleteTrip)
		}

		expenses := api.Group("/expenses")
		{
			expenses.POST("/add", h.addExpense)
			expenses.GET("/all", h.listMyExpenses)
		}

		api.GET("/me", h.getProfile)
		api.PUT("/me", h.updateProfile)
		api.GET("/summary", h.getSummary)
	}
}

// registerLegacyRoutes mounts trip and expense CRUD with no auth gate and no
// owner filtering.
func (h *Handler) registerLegacyRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		trips := api.Group("/trips")
		{
			trips.GET("", h.listTrips)
			trips.POST("", h.createTrip)
			trips.GET("/:id", h.getTrip)
			trips.PUT("/:id", h.updateTrip)
			trips.DELETE("/:id", h.deleteTrip)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", h.listExpenses)
			expenses.POST("", h.createExpense)
			expenses.GET("/:id", h.getExpense)
			expenses.PUT("/:id", h.updateExpense)
			expenses.DELETE("/:id", h.deleteExpense)
		}
	}
}
