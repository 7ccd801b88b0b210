package http

import (
	"net/http"
	"sync"

	"github.com/Samitho456/prepper-frontend/config"
	"github.com/gin-gonic/gin"
)

// view is one entry of the route table. build runs on the first request
// that reaches the route, not at startup.
type view struct {
	method string
	path   string
	name   string
	build  func(h *Handler) gin.HandlerFunc
}

// views is the static route table of the shell
var views = []view{
	{method: http.MethodGet, path: "/", name: "home", build: (*Handler).homeView},
	{method: http.MethodGet, path: "/about", name: "about", build: (*Handler).aboutView},
	{method: http.MethodGet, path: "/MealPlanner", name: "mealplanner", build: (*Handler).mealPlannerView},
	{method: http.MethodGet, path: "/Recipes", name: "recipes", build: (*Handler).recipesView},
	{method: http.MethodGet, path: "/Recipe/:id", name: "recipe", build: (*Handler).recipeView},
	{method: http.MethodPost, path: "/AddRecipe", name: "addrecipe", build: (*Handler).addRecipeView},
	{method: http.MethodGet, path: "/Ingredients", name: "ingredients", build: (*Handler).ingredientsView},
}

// notFound is served for every path the table does not match
var notFound = view{name: "notfound", build: (*Handler).notFoundView}

// lazy defers building a view until it is first requested
func lazy(h *Handler, v view) gin.HandlerFunc {
	var (
		once    sync.Once
		handler gin.HandlerFunc
	)
	return func(c *gin.Context) {
		once.Do(func() {
			handler = v.build(h)
			h.logger.WithField("view", v.name).Debug("view initialised")
		})
		handler(c)
	}
}

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(handler.logger))
	router.Use(LoggerMiddleware(handler.logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)
	router.POST("/cache/clear", handler.ClearCache)

	for _, v := range views {
		router.Handle(v.method, v.path, lazy(handler, v))
	}
	router.NoRoute(lazy(handler, notFound))

	return router
}
