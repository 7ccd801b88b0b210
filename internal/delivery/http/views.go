package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Samitho456/prepper-frontend/internal/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) homeView() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"view":                  "home",
			"recipes":               len(h.recipes.AllRecipes()),
			"ingredients":           len(h.ingredients.AllIngredients()),
			"recipesCacheValid":     h.recipes.IsCacheValid(),
			"ingredientsCacheValid": h.ingredients.IsBasicCacheValid(),
			"profilesCacheValid":    h.ingredients.IsProfilesCacheValid(),
			"loading":               h.recipes.IsLoading() || h.ingredients.IsLoading(),
		})
	}
}

func (h *Handler) aboutView() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"view":    "about",
			"service": serviceName,
			"version": Version,
		})
	}
}

func (h *Handler) mealPlannerView() gin.HandlerFunc {
	return func(c *gin.Context) {
		refresh := forceRefresh(c)

		recipes, err := h.recipes.FetchRecipes(c.Request.Context(), refresh)
		if err != nil {
			h.respondError(c, err)
			return
		}
		ingredients, err := h.ingredients.FetchIngredientsWithProfiles(c.Request.Context(), refresh)
		if err != nil {
			h.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"view":        "mealplanner",
			"recipes":     orEmpty(recipes),
			"ingredients": orEmpty(ingredients),
		})
	}
}

func (h *Handler) recipesView() gin.HandlerFunc {
	return func(c *gin.Context) {
		recipes, err := h.recipes.FetchRecipes(c.Request.Context(), forceRefresh(c))
		if err != nil {
			h.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"view":    "recipes",
			"recipes": orEmpty(recipes),
		})
	}
}

func (h *Handler) recipeView() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			h.respondError(c, fmt.Errorf("%w: recipe id %q is not an integer", domain.ErrInvalidRequest, c.Param("id")))
			return
		}

		if _, err := h.recipes.FetchRecipes(c.Request.Context(), false); err != nil {
			h.respondError(c, err)
			return
		}

		recipe, err := h.recipes.GetByID(id)
		if err != nil {
			h.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"view":   "recipe",
			"recipe": recipe,
		})
	}
}

func (h *Handler) addRecipeView() gin.HandlerFunc {
	return func(c *gin.Context) {
		var recipe domain.Recipe
		if err := c.ShouldBindJSON(&recipe); err != nil {
			h.respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
			return
		}

		h.recipes.AddRecipe(recipe)

		c.JSON(http.StatusCreated, gin.H{
			"view":   "addrecipe",
			"recipe": recipe,
		})
	}
}

func (h *Handler) ingredientsView() gin.HandlerFunc {
	return func(c *gin.Context) {
		refresh := forceRefresh(c)

		ingredients, err := h.ingredients.FetchIngredients(c.Request.Context(), refresh)
		if err != nil {
			h.respondError(c, err)
			return
		}
		withProfiles, err := h.ingredients.FetchIngredientsWithProfiles(c.Request.Context(), refresh)
		if err != nil {
			h.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"view":                    "ingredients",
			"ingredients":             orEmpty(ingredients),
			"ingredientsWithProfiles": orEmpty(withProfiles),
		})
	}
}

func (h *Handler) notFoundView() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"view":  "notfound",
			"error": "page not found",
			"path":  c.Request.URL.Path,
		})
	}
}
