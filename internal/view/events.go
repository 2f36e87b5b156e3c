package view

import (
	"strings"

	"github.com/five82/yourenergy/internal/catalog"
)

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// Navigate follows a route fragment.
type Navigate struct{ Fragment string }

// SelectFilter switches the filter tab.
type SelectFilter struct{ Filter catalog.Filter }

// SelectCategory drills into a category tile.
type SelectCategory struct{ Name string }

// Back leaves the drill-down and returns to the category tiles.
type Back struct{}

// Search applies a keyword to the exercise list.
type Search struct{ Keyword string }

// GoToPage selects a page.
type GoToPage struct{ Page int }

// Reload re-requests the current dataset.
type Reload struct{}

// Loaded reports a successful response. Page is the page actually shown,
// which may differ from the requested page after clamping.
type Loaded struct {
	Generation uint64
	Page       int
	TotalPages int
}

func (Navigate) isEvent()       {}
func (SelectFilter) isEvent()   {}
func (SelectCategory) isEvent() {}
func (Back) isEvent()           {}
func (Search) isEvent()         {}
func (GoToPage) isEvent()       {}
func (Reload) isEvent()         {}
func (Loaded) isEvent()         {}

// Reduce applies ev to s. It returns the next state and the request the next
// state needs, or nil when nothing has to be fetched.
func Reduce(s State, ev Event) (State, *Request) {
	switch e := ev.(type) {
	case Navigate:
		return navigate(s, ParseRoute(e.Fragment))

	case SelectFilter:
		if s.Route != RouteHome || !e.Filter.Valid() {
			return s, nil
		}
		if s.Filter == e.Filter && s.Mode == ModeCategories {
			return s, nil
		}
		s.Filter = e.Filter
		s = resetList(s, ModeCategories)
		return issue(s)

	case SelectCategory:
		name := strings.TrimSpace(e.Name)
		if s.Route != RouteHome || s.Mode != ModeCategories || name == "" {
			return s, nil
		}
		s = resetList(s, ModeExercises)
		s.Category = Category{Name: name, Filter: s.Filter}
		s.HasCategory = true
		return issue(s)

	case Back:
		if s.Route != RouteHome || s.Mode == ModeCategories {
			return s, nil
		}
		s = resetList(s, ModeCategories)
		return issue(s)

	case Search:
		if !s.ShowsSearch() {
			return s, nil
		}
		s.Keyword = strings.TrimSpace(e.Keyword)
		s.Page = 1
		return issue(s)

	case GoToPage:
		if e.Page < 1 || e.Page == s.Page {
			return s, nil
		}
		if s.TotalPages > 0 && e.Page > s.TotalPages {
			return s, nil
		}
		s.Page = e.Page
		return issue(s)

	case Reload:
		return issue(s)

	case Loaded:
		if !s.Accepts(e.Generation) {
			return s, nil
		}
		s.TotalPages = max(1, e.TotalPages)
		if e.Page > 0 {
			s.Page = e.Page
		}
		return s, nil
	}
	return s, nil
}

func navigate(s State, route Route) (State, *Request) {
	s.Route = route
	mode := ModeCategories
	if route == RouteFavorites {
		mode = ModeFavorites
	}
	s = resetList(s, mode)
	return issue(s)
}

// resetList clears the drill-down, keyword and paging.
func resetList(s State, mode Mode) State {
	s.Mode = mode
	s.Category = Category{}
	s.HasCategory = false
	s.Keyword = ""
	s.Page = 1
	s.TotalPages = 1
	return s
}

// issue advances the generation and describes the fetch for s.
func issue(s State) (State, *Request) {
	s.Generation++
	req := &Request{
		Generation: s.Generation,
		Filter:     s.Filter,
		Keyword:    s.Keyword,
		Page:       s.Page,
	}
	switch {
	case s.Route == RouteFavorites:
		req.Kind = RequestFavorites
	case s.Mode == ModeExercises && s.HasCategory:
		req.Kind = RequestExercises
		req.Category = s.Category
	default:
		req.Kind = RequestCategories
	}
	return s, req
}
