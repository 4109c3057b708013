package catalog

import (
	"sort"
	"strings"
)

// Game is a catalog item as served by the GamePix feed. The catalog is never
// persisted; games live only for the duration of a request.
type Game struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	PlayURL   string   `json:"play_url"`
	Tags      []string `json:"tags,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
}

// Filter holds the storefront's browse filters. Zero values pass everything.
type Filter struct {
	Query     string
	Category  string
	Tag       string
	MinRating float64
}

// Apply returns the games matching every set filter, preserving order.
func (f Filter) Apply(games []Game) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if f.matches(g) {
			out = append(out, g)
		}
	}
	return out
}

func (f Filter) matches(g Game) bool {
	if kw := strings.ToLower(strings.TrimSpace(f.Query)); kw != "" {
		if !strings.Contains(strings.ToLower(g.Title), kw) &&
			!strings.Contains(strings.ToLower(g.Category), kw) {
			return false
		}
	}
	if f.Category != "" && f.Category != "All" && g.Category != f.Category {
		return false
	}
	// Rating only filters games that carry one.
	if f.MinRating > 0 && g.Rating != nil && *g.Rating < f.MinRating {
		return false
	}
	if f.Tag != "" {
		found := false
		for _, t := range g.Tags {
			if t == f.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Categories returns the sorted set of categories present, prefixed with "All".
func Categories(games []Game) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, g := range games {
		if !seen[g.Category] {
			seen[g.Category] = true
			cats = append(cats, g.Category)
		}
	}
	sort.Strings(cats)
	return append([]string{"All"}, cats...)
}

// Tags returns the sorted set of tags present across the games.
func Tags(games []Game) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, g := range games {
		for _, t := range g.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
