package ui

import (
	"strings"

	"github.com/pdsagames/games-portal/internal/model"
)

// CardFilter decides which game cards are visible. A card shows iff its
// category matches (or "All" is selected) and the search query, when not
// empty, is a case-insensitive substring of the title or description.
type CardFilter struct {
	Category string
	Query    string
}

// NewCardFilter returns the filter showing everything.
func NewCardFilter() CardFilter {
	return CardFilter{Category: model.CategoryAll}
}

// Matches reports whether the game passes the filter.
func (f CardFilter) Matches(game model.Game) bool {
	if f.Category != "" && f.Category != model.CategoryAll && game.Category != f.Category {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(game.Title), query) ||
		strings.Contains(strings.ToLower(game.Description), query)
}

// Apply returns the catalog entries passing the filter, preserving order.
func (f CardFilter) Apply(games []model.Game) []model.Game {
	var visible []model.Game
	for _, g := range games {
		if f.Matches(g) {
			visible = append(visible, g)
		}
	}
	return visible
}
