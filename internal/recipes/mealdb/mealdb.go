// Package mealdb implements recipe lookup against TheMealDB public API.
//
// A query fans out to the ingredient filter and the free-text name search,
// merges and dedupes the hits, then fetches details for each so results carry
// an image and a source link where the API has one.
package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"shelfwise/internal/recipes"
)

const defaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// perQueryCap limits how many hits each sub-query contributes before merging.
const perQueryCap = 8

type meal struct {
	ID      string `json:"idMeal"`
	Name    string `json:"strMeal"`
	Thumb   string `json:"strMealThumb"`
	Source  string `json:"strSource"`
	Youtube string `json:"strYoutube"`
}

type mealsResponse struct {
	Meals []meal `json:"meals"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (c *Client) Find(ctx context.Context, ingredient string) ([]recipes.Recipe, error) {
	byIngredient, err := c.query(ctx, "filter.php", "i", ingredient)
	if err != nil {
		return nil, fmt.Errorf("failed to filter by ingredient: %w", err)
	}
	byName, err := c.query(ctx, "search.php", "s", ingredient)
	if err != nil {
		return nil, fmt.Errorf("failed to search by name: %w", err)
	}

	if len(byIngredient) > perQueryCap {
		byIngredient = byIngredient[:perQueryCap]
	}
	if len(byName) > perQueryCap {
		byName = byName[:perQueryCap]
	}

	merged := make([]meal, 0, len(byIngredient)+len(byName))
	seen := make(map[string]bool)
	for _, m := range append(byIngredient, byName...) {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		merged = append(merged, m)
	}
	if len(merged) > recipes.MaxResults {
		merged = merged[:recipes.MaxResults]
	}

	out := make([]recipes.Recipe, 0, len(merged))
	for _, m := range merged {
		// Filter hits lack source links; a failed detail lookup falls back to
		// the stub rather than dropping the result.
		if detailed, err := c.lookup(ctx, m.ID); err == nil && detailed != nil {
			m = *detailed
		}
		out = append(out, mapMeal(m))
	}

	return out, nil
}

func (c *Client) query(ctx context.Context, endpoint, param, value string) ([]meal, error) {
	reqURL := fmt.Sprintf("%s/%s?%s=%s", c.baseURL, endpoint, param, url.QueryEscape(value))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call themealdb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("themealdb returned status %d", resp.StatusCode)
	}

	// The API answers {"meals": null} for no hits.
	var body mealsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return body.Meals, nil
}

func (c *Client) lookup(ctx context.Context, mealID string) (*meal, error) {
	meals, err := c.query(ctx, "lookup.php", "i", mealID)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, nil
	}
	return &meals[0], nil
}

func mapMeal(m meal) recipes.Recipe {
	title := m.Name
	if title == "" {
		title = "Recipe"
	}
	link := m.Source
	if link == "" {
		link = m.Youtube
	}
	return recipes.Recipe{
		ID:     "mealdb-" + m.ID,
		Title:  title,
		Time:   "Time N/A",
		Image:  m.Thumb,
		URL:    link,
		Source: "TheMealDB",
	}
}
