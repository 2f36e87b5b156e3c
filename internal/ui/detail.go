package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/yourenergy/internal/catalog"
	"github.com/five82/yourenergy/internal/favorites"
)

// detailModal shows one exercise with its favorite and rating actions.
type detailModal struct {
	exercise catalog.Exercise
	favs     *favorites.Set
	favorite bool
	width    int
	body     viewport.Model
}

func newDetailModal(ex catalog.Exercise, favs *favorites.Set, width, height int) *detailModal {
	inner := modalWidth(width)
	vp := viewport.New(inner, max(4, height-18))
	vp.SetContent(renderDescription(ex.Description, inner))
	return &detailModal{
		exercise: ex,
		favs:     favs,
		favorite: favs.IsFavorite(ex.ID),
		width:    inner,
		body:     vp,
	}
}

// renderDescription word-wraps the description through glamour. Plain
// wrapping is used when glamour cannot render it.
func renderDescription(text string, width int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "No description."
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := r.Render(text); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

func (d *detailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch {
	case key.Matches(km, keys.Escape), key.Matches(km, keys.Back), key.Matches(km, keys.Quit):
		return d, nil, true

	case key.Matches(km, keys.ToggleFavorite):
		d.favorite = d.favs.Toggle(d.exercise.ID)
		return d, emit(favoritesChangedMsg{id: d.exercise.ID, added: d.favorite}), false

	case key.Matches(km, keys.Rate):
		return d, emit(openRatingMsg{exercise: d.exercise}), true

	case key.Matches(km, keys.Up):
		d.body.ScrollUp(1)
		return d, nil, false

	case key.Matches(km, keys.Down):
		d.body.ScrollDown(1)
		return d, nil, false
	}
	return d, nil, false
}

func (d *detailModal) favoriteLabel() string {
	return ternary(d.favorite, "Remove from favorites", "Add to favorites")
}

func (d *detailModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	ex := d.exercise

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(titleCase(ex.Name)))
	b.WriteString("\n")
	b.WriteString(styles.Star.Render(stars(ex.ClampedRating())))
	b.WriteString(" ")
	b.WriteString(styles.MutedText.Render(formatRating(ex.ClampedRating())))
	b.WriteString("\n\n")

	fields := []struct{ label, value string }{
		{"Target", ex.Target},
		{"Body Part", ex.BodyPart},
		{"Equipment", ex.Equipment},
		{"Popular", fmt.Sprint(int(ex.Popularity))},
		{"Burned Calories", fmt.Sprintf("%d/%d min", int(ex.BurnedCalories), int(ex.Time))},
	}
	for _, f := range fields {
		b.WriteString(styles.MutedText.Render(padRight(f.label, 17)))
		b.WriteString(styles.Text.Render(titleCase(f.value)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(d.body.View())
	b.WriteString("\n\n")

	actions := []string{
		styles.AccentText.Render("[a]") + " " + styles.Text.Render(d.favoriteLabel()),
		styles.AccentText.Render("[r]") + " " + styles.Text.Render("Give a rating"),
		styles.FaintText.Render("[esc] Close"),
	}
	b.WriteString(strings.Join(actions, "   "))

	return styles.Modal.Width(d.width + 4).Render(b.String())
}
