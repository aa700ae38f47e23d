package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/teashop-server/internal/api/http/handler"
	"github.com/dtroode/teashop-server/internal/api/http/middleware"
	"github.com/dtroode/teashop-server/internal/logger"
	"github.com/dtroode/teashop-server/internal/model"
	"github.com/dtroode/teashop-server/internal/service"
)

// Router represents the HTTP router of the tea shop.
// It wires handlers and middleware onto a gin engine.
type Router struct {
	authService    *service.Auth
	teaService     *service.Tea
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - authService: The authentication service, also used to resolve bearer tokens
//   - teaService: The tea management service
//   - contextManager: Carries the authenticated user through the request context
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	authService *service.Auth,
	teaService *service.Tea,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		teaService:     teaService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the gin engine with every route and middleware.
// Read routes are public; routes that change teas sit behind the
// authenticate middleware.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	e := gin.New()
	e.Use(logging.Recovery(), logging.Handle)
	e.NoRoute(handler.NotFound)

	e.GET("/", handler.Welcome)
	e.GET("/openapi.json", handler.OpenAPI)

	r.registerAuthRoutes(e)
	r.registerTeaRoutes(e, authenticate)

	return e
}

func (r *Router) registerAuthRoutes(e *gin.Engine) {
	authHandler := handler.NewAuth(r.authService, r.logger)
	e.POST("/token", authHandler.Token)
}

func (r *Router) registerTeaRoutes(e *gin.Engine, authenticate *middleware.Authenticate) {
	teaHandler := handler.NewTea(r.teaService, r.contextManager, r.logger)

	teas := e.Group("/teas")
	teas.GET("", teaHandler.List)

	protected := teas.Group("", authenticate.Handle)
	protected.POST("", teaHandler.Create)
	protected.PUT("/:id", teaHandler.Update)
	protected.DELETE("/:id", teaHandler.Delete)
}
