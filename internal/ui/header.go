package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/yourenergy/internal/catalog"
	"github.com/five82/yourenergy/internal/quote"
	"github.com/five82/yourenergy/internal/state"
	"github.com/five82/yourenergy/internal/view"
)

// renderHeader renders the title bar with the route tabs.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	logo := styles.Logo.Render("YOUR ENERGY")
	routes := []view.Route{view.RouteHome, view.RouteFavorites}
	parts := make([]string, 0, len(routes))
	for _, r := range routes {
		if r == m.view.Route {
			parts = append(parts, styles.ActiveTab.Render(r.String()))
		} else {
			parts = append(parts, styles.Tab.Render(r.String()))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, logo, "  ", strings.Join(parts, " "))

	right := ""
	if m.snapshot.IsOffline() {
		right = styles.DangerText.Render("offline")
	}

	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderQuote renders the quote of the day line. A quote from an earlier day
// is never shown.
func (m Model) renderQuote() string {
	styles := m.theme.Styles()
	if m.snapshot.NeedsRefresh(quote.Day(m.now())) {
		return styles.FaintText.Render("  Quote of the day is loading...")
	}
	q := m.snapshot.Quote
	suffix := ""
	if m.snapshot.Source == state.SourceCache && m.snapshot.Failures > 0 {
		suffix = " (cached)"
	}
	limit := max(20, m.width-len([]rune(q.Author))-len(suffix)-8)
	return "  " + styles.Text.Italic(true).Render("\""+truncate(q.Text, limit)+"\"") +
		styles.MutedText.Render("  "+q.Author) + styles.FaintText.Render(suffix)
}

// renderTabs renders the filter tabs on home and the page title on favorites.
func (m Model) renderTabs() string {
	styles := m.theme.Styles()

	if m.view.Route == view.RouteFavorites {
		return styles.AccentText.Bold(true).Render("  Favorites")
	}

	tabs := make([]string, 0, len(catalog.Filters))
	for i, f := range catalog.Filters {
		label := string(rune('1'+i)) + " " + string(f)
		if f == m.view.Filter {
			tabs = append(tabs, styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, styles.Tab.Render(label))
		}
	}
	line := " " + strings.Join(tabs, " ")

	if m.view.Mode == view.ModeExercises && m.view.HasCategory {
		crumb := styles.MutedText.Render("  Exercises / ") + styles.AccentText.Render(titleCase(m.view.Category.Name))
		line += crumb
		switch {
		case m.searching:
			line += "  " + m.search.View()
		case m.view.Keyword != "":
			line += styles.MutedText.Render("  search: ") + styles.Text.Render(m.view.Keyword)
		}
	}
	return line
}
