package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Samitho456/prepper-frontend/internal/domain"
	"github.com/Samitho456/prepper-frontend/internal/infrastructure/cache"
	"github.com/sirupsen/logrus"
)

// IngredientStore caches the basic ingredient list and, independently, the
// list of ingredients enriched with nutritional profiles.
//
// Each list has its own lock; mutex additionally serializes operations that
// touch both lists so readers never observe one half of them.
type IngredientStore struct {
	ingredients  *cache.Collection[domain.Ingredient]
	withProfiles *cache.Collection[domain.IngredientWithProfiles]
	logger       logrus.FieldLogger

	mutex sync.RWMutex
}

// NewIngredientStore creates an empty ingredient store reading from source
func NewIngredientStore(
	source domain.IngredientSource,
	logger logrus.FieldLogger,
	config StoreConfig,
) *IngredientStore {
	return &IngredientStore{
		ingredients:  cache.NewCollection(source.ListIngredients, config.ttl()),
		withProfiles: cache.NewCollection(source.ListIngredientsWithProfiles, config.ttl()),
		logger:       storeLogger(logger, "ingredients"),
	}
}

// SetClock replaces the time source of both collections
func (s *IngredientStore) SetClock(now func() time.Time) {
	s.ingredients.SetClock(now)
	s.withProfiles.SetClock(now)
}

// FetchIngredients returns the basic ingredient list, going to the API only
// when forced or when the cache is stale or empty.
func (s *IngredientStore) FetchIngredients(ctx context.Context, forceRefresh bool) ([]domain.Ingredient, error) {
	items, cached, err := s.ingredients.Fetch(ctx, forceRefresh)
	if err != nil {
		s.logger.WithError(err).Error("Error fetching ingredients")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"collection": "ingredients",
		"count":      len(items),
		"cached":     cached,
	}).Debug("ingredients served")
	return items, nil
}

// FetchIngredientsWithProfiles is FetchIngredients for the profile-enriched list
func (s *IngredientStore) FetchIngredientsWithProfiles(ctx context.Context, forceRefresh bool) ([]domain.IngredientWithProfiles, error) {
	items, cached, err := s.withProfiles.Fetch(ctx, forceRefresh)
	if err != nil {
		s.logger.WithError(err).Error("Error fetching ingredients with profiles")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"collection": "ingredientsWithProfiles",
		"count":      len(items),
		"cached":     cached,
	}).Debug("ingredients with profiles served")
	return items, nil
}

// GetByID looks up a basic ingredient
func (s *IngredientStore) GetByID(id int64) (domain.Ingredient, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ing, ok := s.ingredients.Get(id)
	if !ok {
		return domain.Ingredient{}, fmt.Errorf("%w: ingredient %d", domain.ErrNotFound, id)
	}
	return ing, nil
}

// GetWithProfilesByID looks up an ingredient in the profile-enriched list
func (s *IngredientStore) GetWithProfilesByID(id int64) (domain.IngredientWithProfiles, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ing, ok := s.withProfiles.Get(id)
	if !ok {
		return domain.IngredientWithProfiles{}, fmt.Errorf("%w: ingredient %d", domain.ErrNotFound, id)
	}
	return ing, nil
}

// AllIngredients returns the cached basic ingredients without fetching
func (s *IngredientStore) AllIngredients() []domain.Ingredient {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.ingredients.All()
}

// AllIngredientsWithProfiles returns the cached enriched ingredients without fetching
func (s *IngredientStore) AllIngredientsWithProfiles() []domain.IngredientWithProfiles {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.withProfiles.All()
}

// AddIngredient appends to the basic list only. Profiles arrive through
// their own fetch.
func (s *IngredientStore) AddIngredient(ingredient domain.Ingredient) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.ingredients.Add(ingredient)
}

// UpdateIngredient replaces the ingredient in the basic list and, if it is
// already present there, in the profile-enriched list. An ingredient only
// known to one list is not copied into the other.
func (s *IngredientStore) UpdateIngredient(updated domain.Ingredient) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.ingredients.Replace(updated)
	s.withProfiles.Modify(updated.ID, func(ing *domain.IngredientWithProfiles) {
		ing.Ingredient = updated.Clone()
	})
}

// UpdateNutritionalProfile replaces the profile with the same id on the
// given ingredient. Unknown ingredient or profile ids are ignored.
func (s *IngredientStore) UpdateNutritionalProfile(ingredientID int64, profile domain.NutritionalProfile) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.withProfiles.Modify(ingredientID, func(ing *domain.IngredientWithProfiles) {
		idx := ing.ProfileIndex(profile.ID)
		if idx < 0 {
			return
		}
		ing.NutritionalProfiles[idx] = profile.Clone()
	})
}

// AddNutritionalProfile appends a profile to the given ingredient. Unknown
// ingredient ids are ignored.
func (s *IngredientStore) AddNutritionalProfile(ingredientID int64, profile domain.NutritionalProfile) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.withProfiles.Modify(ingredientID, func(ing *domain.IngredientWithProfiles) {
		ing.NutritionalProfiles = append(ing.NutritionalProfiles, profile.Clone())
	})
}

// RemoveIngredient drops the ingredient from both lists
func (s *IngredientStore) RemoveIngredient(id int64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.ingredients.Remove(id)
	s.withProfiles.Remove(id)
}

// ClearCache empties both lists and forgets when they were fetched
func (s *IngredientStore) ClearCache() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.ingredients.Clear()
	s.withProfiles.Clear()
}

// IsLoading reports whether either list is being fetched
func (s *IngredientStore) IsLoading() bool {
	return s.ingredients.IsLoading() || s.withProfiles.IsLoading()
}

// IsBasicCacheValid reports whether the basic list is within its TTL
func (s *IngredientStore) IsBasicCacheValid() bool {
	return s.ingredients.IsValid()
}

// IsProfilesCacheValid reports whether the enriched list is within its TTL
func (s *IngredientStore) IsProfilesCacheValid() bool {
	return s.withProfiles.IsValid()
}
