package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cinema-scheduler/internal/handler/api"
	"cinema-scheduler/internal/handler/middleware"
	"cinema-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog  *api.CatalogHandler
	Schedule *api.ScheduleHandler
	Board    *api.BoardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	jsonBody := []gin.HandlerFunc{middleware.RequireJSON()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/rooms", Handler: h.Catalog.RegisterRoom, Mw: jsonBody},
			{Method: http.MethodPost, Path: "/movies", Handler: h.Catalog.RegisterMovie, Mw: jsonBody},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/shows", Handler: h.Schedule.CreateShow, Mw: jsonBody},
			{Method: http.MethodPost, Path: "/cleaning-slots", Handler: h.Schedule.CreateCleaningSlot, Mw: jsonBody},
			{Method: http.MethodPost, Path: "/unavailabilities", Handler: h.Schedule.CreateUnavailability, Mw: jsonBody},
			{Method: http.MethodDelete, Path: "/schedule", Handler: h.Schedule.ClearSchedule},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/board", Handler: h.Board.GetBoard},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
