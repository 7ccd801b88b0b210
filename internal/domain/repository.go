package domain

import "context"

// IngredientSource defines the read endpoints the ingredient store depends on
type IngredientSource interface {
	ListIngredients(ctx context.Context) ([]Ingredient, error)
	ListIngredientsWithProfiles(ctx context.Context) ([]IngredientWithProfiles, error)
}

// RecipeSource defines the read endpoint the recipe store depends on
type RecipeSource interface {
	ListRecipes(ctx context.Context) ([]Recipe, error)
}

// CatalogClient is the full prepper REST API surface consumed by the stores
type CatalogClient interface {
	IngredientSource
	RecipeSource
}
