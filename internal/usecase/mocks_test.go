package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/Samitho456/prepper-frontend/internal/domain"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// MockCatalogClient is a mock implementation of domain.CatalogClient
type MockCatalogClient struct {
	mutex sync.Mutex

	ingredients      []domain.Ingredient
	ingredientsError error
	ingredientsCalls int

	profiles      []domain.IngredientWithProfiles
	profilesError error
	profilesCalls int

	recipes      []domain.Recipe
	recipesError error
	recipesCalls int
}

func NewMockCatalogClient() *MockCatalogClient {
	return &MockCatalogClient{}
}

func (m *MockCatalogClient) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.ingredientsCalls++
	if m.ingredientsError != nil {
		return nil, m.ingredientsError
	}
	return m.ingredients, nil
}

func (m *MockCatalogClient) ListIngredientsWithProfiles(ctx context.Context) ([]domain.IngredientWithProfiles, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.profilesCalls++
	if m.profilesError != nil {
		return nil, m.profilesError
	}
	return m.profiles, nil
}

func (m *MockCatalogClient) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.recipesCalls++
	if m.recipesError != nil {
		return nil, m.recipesError
	}
	return m.recipes, nil
}

// testClock is a manually advanced time source
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLogger() (*logrus.Logger, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func mustIngredient(t *testing.T, raw string) domain.Ingredient {
	t.Helper()
	var ing domain.Ingredient
	require.NoError(t, json.Unmarshal([]byte(raw), &ing))
	return ing
}

func mustIngredientWithProfiles(t *testing.T, raw string) domain.IngredientWithProfiles {
	t.Helper()
	var ing domain.IngredientWithProfiles
	require.NoError(t, json.Unmarshal([]byte(raw), &ing))
	return ing
}

func mustProfile(t *testing.T, raw string) domain.NutritionalProfile {
	t.Helper()
	var p domain.NutritionalProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func mustRecipe(t *testing.T, raw string) domain.Recipe {
	t.Helper()
	var r domain.Recipe
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	return r
}
