package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/yourenergy/internal/catalog"
	"github.com/five82/yourenergy/internal/forms"
)

// subscribeModal is the newsletter sign-up form.
type subscribeModal struct {
	ctx        context.Context
	api        catalog.API
	email      textinput.Model
	err        string
	submitting bool
}

func newSubscribeModal(ctx context.Context, api catalog.API) *subscribeModal {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = ""
	email.CharLimit = 254
	email.Focus()
	return &subscribeModal{ctx: ctx, api: api, email: email}
}

func (s *subscribeModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case subscribedMsg:
		s.submitting = false
		if msg.err != nil {
			s.err = msg.err.Error()
			return s, nil, false
		}
		return s, emit(flashMsg{text: forms.SubscribedMessage}), true

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Escape):
			return s, nil, true
		case key.Matches(msg, keys.Submit):
			return s, s.submit(), false
		}
	}

	var cmd tea.Cmd
	s.email, cmd = s.email.Update(msg)
	return s, cmd, false
}

func (s *subscribeModal) submit() tea.Cmd {
	if s.submitting {
		return nil
	}
	form := forms.Subscription{Email: s.email.Value()}
	if err := form.Validate(); err != nil {
		s.err = err.Error()
		return nil
	}
	s.err = ""
	s.submitting = true
	return subscribeCmd(s.ctx, s.api, strings.TrimSpace(form.Email))
}

func (s *subscribeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	inner := modalWidth(width)
	s.email.Width = inner - 2

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Subscribe"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Get new exercises and motivation by email."))
	b.WriteString("\n\n  ")
	b.WriteString(s.email.View())
	b.WriteString("\n\n")

	switch {
	case s.submitting:
		b.WriteString(styles.InfoText.Render("Sending..."))
	case s.err != "":
		b.WriteString(styles.DangerText.Render(s.err))
	default:
		b.WriteString(styles.FaintText.Render("enter send  esc cancel"))
	}

	return styles.Modal.Width(inner + 4).Render(b.String())
}
