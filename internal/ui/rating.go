package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/yourenergy/internal/catalog"
	"github.com/five82/yourenergy/internal/forms"
)

const (
	ratingFocusStars = iota
	ratingFocusEmail
	ratingFocusComment
	ratingFieldCount
)

// ratingModal collects a 1..5 star rating with email and comment.
type ratingModal struct {
	ctx        context.Context
	api        catalog.API
	exercise   catalog.Exercise
	stars      int
	focus      int
	email      textinput.Model
	comment    textinput.Model
	err        string
	submitting bool
}

func newRatingModal(ctx context.Context, api catalog.API, ex catalog.Exercise) *ratingModal {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = ""
	email.CharLimit = 254

	comment := textinput.New()
	comment.Placeholder = "Your comment"
	comment.Prompt = ""
	comment.CharLimit = 500

	return &ratingModal{
		ctx:      ctx,
		api:      api,
		exercise: ex,
		email:    email,
		comment:  comment,
	}
}

func (r *ratingModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case ratedMsg:
		if msg.id != r.exercise.ID {
			return r, nil, false
		}
		r.submitting = false
		if msg.err != nil {
			r.err = msg.err.Error()
			return r, nil, false
		}
		// Back to the exercise, which now carries the new rating.
		return r, tea.Batch(
			emit(flashMsg{text: forms.RatedMessage}),
			emit(openDetailMsg{id: r.exercise.ID}),
		), true

	case tea.KeyMsg:
		return r.handleKey(msg, keys)
	}

	var cmd tea.Cmd
	switch r.focus {
	case ratingFocusEmail:
		r.email, cmd = r.email.Update(msg)
	case ratingFocusComment:
		r.comment, cmd = r.comment.Update(msg)
	}
	return r, cmd, false
}

func (r *ratingModal) handleKey(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Escape):
		return r, nil, true

	case key.Matches(msg, keys.Submit):
		return r, r.submit(), false

	case key.Matches(msg, keys.NextField):
		return r, r.setFocus((r.focus + 1) % ratingFieldCount), false

	case key.Matches(msg, keys.PrevField):
		return r, r.setFocus((r.focus + ratingFieldCount - 1) % ratingFieldCount), false
	}

	if r.focus == ratingFocusStars {
		switch s := msg.String(); s {
		case "1", "2", "3", "4", "5":
			r.stars = int(s[0] - '0')
		case "left", "h":
			r.stars = max(1, r.stars-1)
		case "right", "l":
			r.stars = min(5, r.stars+1)
		}
		return r, nil, false
	}

	var cmd tea.Cmd
	if r.focus == ratingFocusEmail {
		r.email, cmd = r.email.Update(msg)
	} else {
		r.comment, cmd = r.comment.Update(msg)
	}
	return r, cmd, false
}

func (r *ratingModal) setFocus(focus int) tea.Cmd {
	r.focus = focus
	r.email.Blur()
	r.comment.Blur()
	switch focus {
	case ratingFocusEmail:
		return r.email.Focus()
	case ratingFocusComment:
		return r.comment.Focus()
	}
	return nil
}

// submit validates the form and sends it. Invalid forms never reach the API.
func (r *ratingModal) submit() tea.Cmd {
	if r.submitting {
		return nil
	}
	form := forms.Rating{Stars: r.stars, Email: r.email.Value(), Comment: r.comment.Value()}
	if err := form.Validate(); err != nil {
		r.err = err.Error()
		return nil
	}
	r.err = ""
	r.submitting = true
	return rateCmd(r.ctx, r.api, r.exercise.ID, form.Request())
}

func (r *ratingModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	inner := modalWidth(width)
	r.email.Width = inner - 2
	r.comment.Width = inner - 2

	label := func(text string, focused bool) string {
		if focused {
			return styles.AccentText.Bold(true).Render("› " + text)
		}
		return styles.MutedText.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Rating"))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(titleCase(r.exercise.Name)))
	b.WriteString("\n\n")

	b.WriteString(label("Stars", r.focus == ratingFocusStars))
	b.WriteString("\n  ")
	b.WriteString(styles.Star.Render(stars(float64(r.stars))))
	b.WriteString(" ")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d.0", r.stars)))
	b.WriteString("\n\n")

	b.WriteString(label("Email", r.focus == ratingFocusEmail))
	b.WriteString("\n  ")
	b.WriteString(r.email.View())
	b.WriteString("\n\n")

	b.WriteString(label("Comment", r.focus == ratingFocusComment))
	b.WriteString("\n  ")
	b.WriteString(r.comment.View())
	b.WriteString("\n\n")

	switch {
	case r.submitting:
		b.WriteString(styles.InfoText.Render("Sending..."))
	case r.err != "":
		b.WriteString(styles.DangerText.Render(r.err))
	default:
		b.WriteString(styles.FaintText.Render("1-5 stars  tab next field  enter send  esc cancel"))
	}

	return styles.Modal.Width(inner + 4).Render(b.String())
}
