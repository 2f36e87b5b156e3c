// Package view holds the screen state of the catalog browser and the pure
// transitions between states.
//
// A State is a value. Reduce takes the current State and an Event and returns
// the next State, plus at most one Request describing the data the new state
// needs. Each Request is stamped with a generation; a response is applied only
// while the state still carries that generation, so a slow response for a view
// the user already left is discarded.
package view

import (
	"strings"

	"github.com/five82/yourenergy/internal/catalog"
)

// Route is a top-level page.
type Route int

const (
	RouteHome Route = iota
	RouteFavorites
)

// ParseRoute maps a URL-style fragment ("#/home", "#/favorites") to a Route.
// Unknown and empty fragments map to RouteHome.
func ParseRoute(fragment string) Route {
	h := strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if strings.HasPrefix(h, "/favorites") {
		return RouteFavorites
	}
	return RouteHome
}

// Fragment returns the canonical fragment for r.
func (r Route) Fragment() string {
	if r == RouteFavorites {
		return "#/favorites"
	}
	return "#/home"
}

func (r Route) String() string {
	if r == RouteFavorites {
		return "Favorites"
	}
	return "Home"
}

// Mode is the kind of list shown.
type Mode int

const (
	ModeCategories Mode = iota
	ModeExercises
	ModeFavorites
)

func (m Mode) String() string {
	switch m {
	case ModeExercises:
		return "exercises"
	case ModeFavorites:
		return "favorites"
	default:
		return "categories"
	}
}

// Category is the drill-down selection.
type Category struct {
	Name   string
	Filter catalog.Filter
}

// Param returns the /exercises query parameter for the category.
func (c Category) Param() string {
	return c.Filter.Param()
}

// State is the complete screen state.
type State struct {
	Route       Route
	Mode        Mode
	Filter      catalog.Filter
	Category    Category
	HasCategory bool
	Keyword     string
	Page        int
	TotalPages  int
	Generation  uint64
}

// Initial returns the state before the first navigation.
func Initial() State {
	return State{
		Route:      RouteHome,
		Mode:       ModeCategories,
		Filter:     catalog.FilterMuscles,
		Page:       1,
		TotalPages: 1,
	}
}

// Accepts reports whether a response for generation gen is still current.
func (s State) Accepts(gen uint64) bool {
	return gen == s.Generation
}

// ShowsSearch reports whether the keyword search applies.
func (s State) ShowsSearch() bool {
	return s.Route == RouteHome && s.Mode == ModeExercises && s.HasCategory
}

// RequestKind selects the dataset to fetch.
type RequestKind int

const (
	RequestCategories RequestKind = iota
	RequestExercises
	RequestFavorites
)

// Request is the fetch a transition asks for.
type Request struct {
	Kind       RequestKind
	Generation uint64
	Filter     catalog.Filter
	Category   Category
	Keyword    string
	Page       int
}

// ExerciseQuery converts an exercises request into a catalog query.
func (r Request) ExerciseQuery(limit int) catalog.ExerciseQuery {
	return catalog.ExerciseQuery{
		Filter:   r.Category.Filter,
		Category: r.Category.Name,
		Keyword:  r.Keyword,
		Page:     r.Page,
		Limit:    limit,
	}
}
