package recipes

import "context"

// MaxResults caps every backend's suggestion list; the companion page shows a
// 3x3 grid.
const MaxResults = 9

// Recipe is one cooking suggestion for an expiring ingredient.
type Recipe struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Time   string `json:"time"`
	Image  string `json:"image"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// Finder looks up recipe suggestions for an ingredient keyword.
type Finder interface {
	Find(ctx context.Context, ingredient string) ([]Recipe, error)
}
