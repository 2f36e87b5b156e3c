package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/yourenergy/internal/catalog"
	"github.com/five82/yourenergy/internal/pager"
	"github.com/five82/yourenergy/internal/view"
)

// emptyFavoritesText is shown when the favorites page has nothing to list.
const emptyFavoritesText = "It appears that you haven't added any exercises to your favorites yet. " +
	"To get started, you can add exercises to your favorites for easier access in the future."

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderQuote())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	content := m.renderContent()
	b.WriteString(lipgloss.NewStyle().Height(max(1, m.height-chromeLines)).Render(content))
	b.WriteString("\n")

	b.WriteString(m.renderPager())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent renders the list for the current mode, or the loading and
// error states in its place.
func (m Model) renderContent() string {
	styles := m.theme.Styles()

	switch {
	case m.loading:
		return "  " + m.spinner.View() + styles.MutedText.Render(" Loading...")
	case m.err != nil:
		return "  " + styles.DangerText.Render(m.err.Error())
	}

	switch m.view.Mode {
	case view.ModeExercises:
		if len(m.exercises) == 0 {
			return styles.MutedText.Render("  No exercises found.")
		}
		return m.renderExercises(true)
	case view.ModeFavorites:
		if len(m.exercises) == 0 {
			width := max(20, min(m.width-4, 80))
			return lipgloss.NewStyle().Width(width).PaddingLeft(2).Render(styles.MutedText.Render(emptyFavoritesText))
		}
		return m.renderExercises(false)
	default:
		if len(m.categories) == 0 {
			return styles.MutedText.Render("  No categories found.")
		}
		return m.renderCategories()
	}
}

// tileColumns returns the number of category tiles per row.
func (m Model) tileColumns() int {
	switch {
	case m.narrow:
		return max(1, min(2, m.width/tileWidth))
	case m.width >= LayoutWideWidth:
		return max(1, min(4, m.width/tileWidth))
	default:
		return max(1, min(3, m.width/tileWidth))
	}
}

func (m Model) renderCategories() string {
	styles := m.theme.Styles()
	cols := m.tileColumns()

	tiles := make([]string, len(m.categories))
	for i, c := range m.categories {
		body := styles.Text.Bold(true).Render(truncate(titleCase(c.Name), tileWidth-6)) + "\n" +
			styles.MutedText.Render(string(c.Filter))
		style := styles.Tile
		if i == m.cursor {
			style = styles.SelectedTile
		}
		tiles[i] = style.Width(tileWidth - 2).Render(body)
	}

	rows := make([]string, 0, (len(tiles)+cols-1)/cols)
	for start := 0; start < len(tiles); start += cols {
		end := min(len(tiles), start+cols)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles[start:end]...))
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderExercises renders exercise cards. Ratings are shown on the category
// list and replaced by a remove hint on favorites.
func (m Model) renderExercises(showRating bool) string {
	styles := m.theme.Styles()
	nameWidth := max(20, m.width-40)

	var b strings.Builder
	for i, ex := range m.exercises {
		selected := i == m.cursor
		marker := "  "
		if selected {
			marker = styles.AccentText.Render("› ")
		}

		badge := styles.FaintText.Render("WORKOUT")
		var extra string
		if showRating {
			extra = styles.Star.Render(stars(ex.ClampedRating())) + " " + styles.MutedText.Render(formatRating(ex.ClampedRating()))
		} else if selected {
			extra = styles.FaintText.Render("x remove")
		}

		name := truncate(titleCase(ex.Name), nameWidth)
		if selected {
			name = styles.Selected.Render(" " + name + " ")
		} else {
			name = styles.Text.Bold(true).Render(" " + name + " ")
		}

		b.WriteString(marker)
		b.WriteString(badge)
		b.WriteString("  ")
		b.WriteString(name)
		if extra != "" {
			b.WriteString("  ")
			b.WriteString(extra)
		}
		b.WriteString("\n")
		b.WriteString("    ")
		b.WriteString(m.exerciseMeta(ex))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) exerciseMeta(ex catalog.Exercise) string {
	styles := m.theme.Styles()
	parts := []string{
		styles.MutedText.Render("Burned calories: ") + styles.Text.Render(fmt.Sprintf("%d / %d min", int(ex.BurnedCalories), int(ex.Time))),
		styles.MutedText.Render("Body part: ") + styles.Text.Render(titleCase(ex.BodyPart)),
		styles.MutedText.Render("Target: ") + styles.Text.Render(titleCase(ex.Target)),
	}
	return strings.Join(parts, "  ")
}

// renderPager renders the page-number bar.
func (m Model) renderPager() string {
	styles := m.theme.Styles()
	controls := pager.Controls(m.view.Page, m.view.TotalPages, m.config.PageButtons, m.config.PinPageEdges)
	if len(controls) == 0 {
		return ""
	}
	parts := make([]string, 0, len(controls)+2)
	parts = append(parts, styles.FaintText.Render(ternary(m.view.Page > 1, "‹", " ")))
	for _, c := range controls {
		switch {
		case c.Ellipsis:
			parts = append(parts, styles.FaintText.Render("…"))
		case c.Active:
			parts = append(parts, styles.ActiveTab.Render(fmt.Sprint(c.Page)))
		default:
			parts = append(parts, styles.MutedText.Render(fmt.Sprint(c.Page)))
		}
	}
	parts = append(parts, styles.FaintText.Render(ternary(m.view.Page < m.view.TotalPages, "›", " ")))
	return "  " + strings.Join(parts, " ")
}

// renderFooter shows the current flash message or the key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.flash != "" {
		if m.flashErr {
			return styles.Footer.Render(styles.DangerText.Render(m.flash))
		}
		return styles.Footer.Render(styles.SuccessText.Render(m.flash))
	}

	hints := []string{"enter open", "backspace back", "←/→ page", "H/F home/favorites", "s subscribe", "? help", "q quit"}
	if m.view.ShowsSearch() {
		hints = append([]string{"/ search"}, hints...)
	}
	if m.view.Mode == view.ModeFavorites {
		hints = append([]string{"x remove"}, hints...)
	}
	return styles.Footer.Render(strings.Join(hints, "  "))
}
