package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Samitho456/prepper-frontend/internal/domain"
	"github.com/Samitho456/prepper-frontend/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Version is reported by the health and about views
const Version = "1.0.0"

const serviceName = "prepper-frontend"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recipes     *usecase.RecipeStore
	ingredients *usecase.IngredientStore
	logger      logrus.FieldLogger
}

// NewHandler creates a new HTTP handler over the given stores
func NewHandler(recipes *usecase.RecipeStore, ingredients *usecase.IngredientStore, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Handler{
		recipes:     recipes,
		ingredients: ingredients,
		logger:      logger,
	}
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": Version,
	})
}

// ClearCache empties every store so the next view refetches
func (h *Handler) ClearCache(c *gin.Context) {
	h.recipes.ClearCache()
	h.ingredients.ClearCache()
	h.logger.Info("store caches cleared")
	c.Status(http.StatusNoContent)
}

// respondError maps store and client errors to HTTP statuses
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrFetchFailed):
		status = http.StatusBadGateway
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// forceRefresh reads the ?refresh=true query flag
func forceRefresh(c *gin.Context) bool {
	refresh, _ := strconv.ParseBool(c.Query("refresh"))
	return refresh
}

// orEmpty keeps empty collections encoding as [] instead of null
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
