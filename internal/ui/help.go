package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpKeyWidth = 12

// renderHelp draws the shortcut overlay from the key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(helpKeyWidth)

	blocks := []string{
		styles.Text.Bold(true).Render("Keyboard Shortcuts") + "\n" +
			styles.FaintText.Render(strings.Repeat("─", 36)),
	}
	for _, g := range m.keys.groups() {
		lines := []string{styles.AccentText.Bold(true).Render(g.title)}
		for _, b := range g.bindings {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			lines = append(lines, keyStyle.Render(h.Key)+styles.Text.Render(h.Desc))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return m.overlay(styles.Modal.Width(46).Render(strings.Join(blocks, "\n\n")))
}
