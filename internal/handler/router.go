package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"padel-booking/internal/handler/api"
	"padel-booking/internal/handler/middleware"
	"padel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, courtHandler *api.CourtHandler, reservationHandler *api.ReservationHandler, toolsHandler *api.ToolsHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, courtHandler, reservationHandler, toolsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, courtHandler *api.CourtHandler, reservationHandler *api.ReservationHandler, toolsHandler *api.ToolsHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		courts := apiGroup.Group("/courts")
		{
			addRoutes(courts, []route{
				{Method: http.MethodGet, Path: "", Handler: courtHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: courtHandler.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: courtHandler.Availability},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListByUser},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Cancel},
			})
		}
	}

	tools := engine.Group("/tools")
	{
		addRoutes(tools, []route{
			{Method: http.MethodGet, Path: "", Handler: toolsHandler.List},
			{Method: http.MethodPost, Path: "/:name", Handler: toolsHandler.Execute},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
