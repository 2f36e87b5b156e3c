package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/five82/yourenergy/internal/catalog"
)

func TestParseRoute(t *testing.T) {
	cases := map[string]Route{
		"":              RouteHome,
		"#":             RouteHome,
		"#/home":        RouteHome,
		"#/favorites":   RouteFavorites,
		"/favorites?x":  RouteFavorites,
		"#/something":   RouteHome,
		"#/favourites":  RouteHome,
		"  #/favorites": RouteFavorites,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseRoute(in), "ParseRoute(%q)", in)
	}
	require.Equal(t, "#/favorites", RouteFavorites.Fragment())
	require.Equal(t, "#/home", RouteHome.Fragment())
}

func TestNavigateResetsAndRequests(t *testing.T) {
	s := Initial()
	s, req := Reduce(s, Navigate{Fragment: "#/favorites"})
	require.NotNil(t, req)
	require.Equal(t, RequestFavorites, req.Kind)
	require.Equal(t, ModeFavorites, s.Mode)
	require.Equal(t, 1, s.Page)

	s, req = Reduce(s, Navigate{Fragment: "#/nowhere"})
	require.NotNil(t, req)
	require.Equal(t, RequestCategories, req.Kind)
	require.Equal(t, RouteHome, s.Route)
	require.Equal(t, ModeCategories, s.Mode)
}

// drillToPage3 returns a state showing page 3 of the "abs" muscle category.
func drillToPage3(t *testing.T) State {
	t.Helper()
	s, _ := Reduce(Initial(), Navigate{Fragment: "#/home"})
	s, req := Reduce(s, SelectCategory{Name: "abs"})
	require.NotNil(t, req)
	s, _ = Reduce(s, Loaded{Generation: req.Generation, TotalPages: 5})
	s, req = Reduce(s, GoToPage{Page: 3})
	require.NotNil(t, req)
	require.Equal(t, 3, req.Page)
	require.Equal(t, RequestExercises, req.Kind)
	return s
}

func TestSelectFilterFromPage3ResetsToPage1(t *testing.T) {
	s := drillToPage3(t)
	require.Equal(t, 3, s.Page)

	s, req := Reduce(s, SelectFilter{Filter: catalog.FilterEquipment})
	require.NotNil(t, req)
	require.Equal(t, 1, s.Page)
	require.Equal(t, 1, req.Page)
	require.Equal(t, ModeCategories, s.Mode)
	require.False(t, s.HasCategory)
	require.Empty(t, s.Keyword)
	require.Equal(t, RequestCategories, req.Kind)
	require.Equal(t, catalog.FilterEquipment, req.Filter)
}

func TestSelectFilterSameTabInCategoriesIsNoop(t *testing.T) {
	s, _ := Reduce(Initial(), Navigate{Fragment: "#/home"})
	next, req := Reduce(s, SelectFilter{Filter: catalog.FilterMuscles})
	require.Nil(t, req)
	require.Equal(t, s, next)

	// Same tab from the drill-down goes back to the tiles.
	s = drillToPage3(t)
	s, req = Reduce(s, SelectFilter{Filter: catalog.FilterMuscles})
	require.NotNil(t, req)
	require.Equal(t, ModeCategories, s.Mode)
}

func TestSelectFilterIgnoredOnFavorites(t *testing.T) {
	s, _ := Reduce(Initial(), Navigate{Fragment: "#/favorites"})
	next, req := Reduce(s, SelectFilter{Filter: catalog.FilterEquipment})
	require.Nil(t, req)
	require.Equal(t, s, next)
}

func TestSelectCategoryUsesFilterParam(t *testing.T) {
	s, _ := Reduce(Initial(), Navigate{Fragment: "#/home"})
	s, _ = Reduce(s, SelectFilter{Filter: catalog.FilterBodyParts})
	s, req := Reduce(s, SelectCategory{Name: "waist"})
	require.NotNil(t, req)
	require.Equal(t, RequestExercises, req.Kind)
	require.Equal(t, "bodypart", req.Category.Param())

	q := req.ExerciseQuery(10)
	require.Equal(t, "waist", q.Category)
	require.Equal(t, catalog.FilterBodyParts, q.Filter)
	require.Equal(t, 10, q.Limit)
	require.True(t, s.ShowsSearch())
}

func TestSearchOnlyInExercisesMode(t *testing.T) {
	s, _ := Reduce(Initial(), Navigate{Fragment: "#/home"})
	_, req := Reduce(s, Search{Keyword: "curl"})
	require.Nil(t, req)

	s = drillToPage3(t)
	s, req = Reduce(s, Search{Keyword: "  curl "})
	require.NotNil(t, req)
	require.Equal(t, "curl", s.Keyword)
	require.Equal(t, 1, s.Page)
	require.Equal(t, "curl", req.Keyword)
}

func TestBackReturnsToCategories(t *testing.T) {
	s := drillToPage3(t)
	s, req := Reduce(s, Back{})
	require.NotNil(t, req)
	require.Equal(t, ModeCategories, s.Mode)
	require.Equal(t, 1, s.Page)

	_, req = Reduce(s, Back{})
	require.Nil(t, req)
}

func TestGoToPageSameOrOutOfRangeIsNoop(t *testing.T) {
	s := drillToPage3(t)
	_, req := Reduce(s, GoToPage{Page: 3})
	require.Nil(t, req)
	_, req = Reduce(s, GoToPage{Page: 0})
	require.Nil(t, req)
	_, req = Reduce(s, GoToPage{Page: 6})
	require.Nil(t, req)
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	s, first := Reduce(Initial(), Navigate{Fragment: "#/home"})
	s, second := Reduce(s, SelectFilter{Filter: catalog.FilterEquipment})
	require.Greater(t, second.Generation, first.Generation)

	require.False(t, s.Accepts(first.Generation))
	next, _ := Reduce(s, Loaded{Generation: first.Generation, TotalPages: 9})
	require.Equal(t, s, next)

	next, _ = Reduce(s, Loaded{Generation: second.Generation, TotalPages: 4})
	require.Equal(t, 4, next.TotalPages)
}

func TestLoadedClampsPage(t *testing.T) {
	s, req := Reduce(Initial(), Navigate{Fragment: "#/favorites"})
	s, _ = Reduce(s, Loaded{Generation: req.Generation, Page: 2, TotalPages: 2})
	require.Equal(t, 2, s.Page)

	s, _ = Reduce(s, Loaded{Generation: s.Generation, TotalPages: 0})
	require.Equal(t, 1, s.TotalPages)
}

func TestReloadKeepsPosition(t *testing.T) {
	s := drillToPage3(t)
	next, req := Reduce(s, Reload{})
	require.NotNil(t, req)
	require.Equal(t, 3, req.Page)
	require.Equal(t, s.Generation+1, next.Generation)
}
