package handlers

import (
	"time"

	"growth_decay/internal/logger"
	"growth_decay/internal/service"

	"github.com/gin-gonic/gin"

	_ "growth_decay/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	streamInterval time.Duration
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log, streamInterval: defaultInterval}
}

// WithStreamInterval sets the default delay between streamed table points.
// Out-of-range values are ignored.
func (h *Handler) WithStreamInterval(d time.Duration) *Handler {
	if d > 0 && d <= maxInterval {
		h.streamInterval = d
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Trajectory streams (HTTP upgrade) on the same port
	ws := router.Group("/ws")
	{
		ws.GET("/cooling", h.wsCooling)
		ws.GET("/decay", h.wsDecay)
	}

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerCoolingRoutes(api)
		h.registerDecayRoutes(api)
	}
}

func (h *Handler) registerCoolingRoutes(api *gin.RouterGroup) {
	cooling := api.Group("/cooling")
	{
		// Body example: {"tm":20,"c":70,"k":-0.05,"t":10}
		cooling.POST("/temperature", h.coolingTemperature)
		cooling.POST("/time", h.coolingTime)
		cooling.POST("/rate", h.coolingRate)
		cooling.POST("/offset", h.coolingOffset)
		cooling.POST("/table", h.coolingTable)
	}
}

func (h *Handler) registerDecayRoutes(api *gin.RouterGroup) {
	decay := api.Group("/decay")
	{
		// Body example: {"n0":100,"k":0.1,"t":5}
		decay.POST("/quantity", h.decayQuantity)
		decay.POST("/time", h.decayTime)
		decay.POST("/rate", h.decayRate)
		decay.POST("/initial", h.decayInitial)
		decay.POST("/half-life", h.decayHalfLife)
		decay.POST("/table", h.decayTable)
	}
}
