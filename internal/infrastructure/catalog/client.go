package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Samitho456/prepper-frontend/internal/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Endpoint paths as served by the prepper API
const (
	IngredientsPath         = "/api/ingredients"
	IngredientsProfilesPath = "/api/Ingredients/GetNutritionalProfiles"
	RecipesPath             = "/api/Recipes"
)

const (
	userAgent       = "Prepper/1.0"
	maxErrorBodyLen = 512
)

// ClientConfig holds transport settings for the catalog client
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables limiting
	Burst     int
}

// Client reads ingredients and recipes from the prepper REST API.
// Every call is a single attempt; retrying is left to the caller.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	logger      logrus.FieldLogger
}

// NewClient creates a new catalog API client
func NewClient(cfg ClientConfig, logger logrus.FieldLogger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		rateLimiter: rate.NewLimiter(limit, burst),
		logger:      logger.WithField("component", "catalog"),
	}
}

// ListIngredients implements domain.IngredientSource
func (c *Client) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	if err := c.getJSON(ctx, IngredientsPath, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

// ListIngredientsWithProfiles implements domain.IngredientSource
func (c *Client) ListIngredientsWithProfiles(ctx context.Context) ([]domain.IngredientWithProfiles, error) {
	var ingredients []domain.IngredientWithProfiles
	if err := c.getJSON(ctx, IngredientsProfilesPath, &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

// ListRecipes implements domain.RecipeSource
func (c *Client) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := c.getJSON(ctx, RecipesPath, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// getJSON issues one GET request and decodes a JSON body into dest.
// Every failure is wrapped in domain.ErrFetchFailed.
func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	log := c.logger.WithField("path", path)

	if err := c.rateLimiter.Wait(ctx); err != nil {
		log.WithError(err).Warn("rate limiter wait aborted")
		return fmt.Errorf("%w: rate limiter: %w", domain.ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", domain.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		log.Warn("unexpected status")
		return fmt.Errorf("%w: GET %s returned status %d: %s",
			domain.ErrFetchFailed, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		log.WithError(err).Warn("decode failed")
		return fmt.Errorf("%w: failed to decode response: %w", domain.ErrFetchFailed, err)
	}

	log.Debug("fetched")
	return nil
}
