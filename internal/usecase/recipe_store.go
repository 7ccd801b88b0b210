package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Samitho456/prepper-frontend/internal/domain"
	"github.com/Samitho456/prepper-frontend/internal/infrastructure/cache"
	"github.com/sirupsen/logrus"
)

// RecipeStore caches the recipe list
type RecipeStore struct {
	recipes *cache.Collection[domain.Recipe]
	logger  logrus.FieldLogger
}

// NewRecipeStore creates an empty recipe store reading from source
func NewRecipeStore(source domain.RecipeSource, logger logrus.FieldLogger, config StoreConfig) *RecipeStore {
	return &RecipeStore{
		recipes: cache.NewCollection(source.ListRecipes, config.ttl()),
		logger:  storeLogger(logger, "recipes"),
	}
}

// SetClock replaces the time source used for TTL checks
func (s *RecipeStore) SetClock(now func() time.Time) {
	s.recipes.SetClock(now)
}

// FetchRecipes returns the recipes, going to the API only when forced or
// when the cache is stale or empty.
func (s *RecipeStore) FetchRecipes(ctx context.Context, forceRefresh bool) ([]domain.Recipe, error) {
	items, cached, err := s.recipes.Fetch(ctx, forceRefresh)
	if err != nil {
		s.logger.WithError(err).Error("Error fetching recipes")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"count":  len(items),
		"cached": cached,
	}).Debug("recipes served")
	return items, nil
}

// GetByID looks up a recipe
func (s *RecipeStore) GetByID(id int64) (domain.Recipe, error) {
	recipe, ok := s.recipes.Get(id)
	if !ok {
		return domain.Recipe{}, fmt.Errorf("%w: recipe %d", domain.ErrNotFound, id)
	}
	return recipe, nil
}

// AllRecipes returns the cached recipes without fetching
func (s *RecipeStore) AllRecipes() []domain.Recipe {
	return s.recipes.All()
}

// AddRecipe appends a recipe
func (s *RecipeStore) AddRecipe(recipe domain.Recipe) {
	s.recipes.Add(recipe)
}

// UpdateRecipe replaces the recipe with the same id, if any
func (s *RecipeStore) UpdateRecipe(updated domain.Recipe) {
	s.recipes.Replace(updated)
}

// RemoveRecipe drops every recipe with the given id
func (s *RecipeStore) RemoveRecipe(id int64) {
	s.recipes.Remove(id)
}

// ClearCache empties the list and forgets when it was fetched
func (s *RecipeStore) ClearCache() {
	s.recipes.Clear()
}

// IsLoading reports whether a fetch is in flight
func (s *RecipeStore) IsLoading() bool {
	return s.recipes.IsLoading()
}

// IsCacheValid reports whether the recipes are within their TTL
func (s *RecipeStore) IsCacheValid() bool {
	return s.recipes.IsValid()
}
