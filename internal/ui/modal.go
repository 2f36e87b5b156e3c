package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a dialog drawn over the main screen. Update reports closed=true
// when the dialog is done and should be dropped.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

func (m Model) renderModal() string {
	return m.overlay(m.modal.View(m.theme, m.width, m.height))
}

// overlay centers content on a blank screen.
func (m Model) overlay(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// modalWidth returns the inner content width of a modal for a terminal of
// the given width.
func modalWidth(width int) int {
	w := min(modalMaxWidth, width-4)
	// border and horizontal padding
	return max(20, w-6)
}
