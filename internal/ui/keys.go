package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Routes
	RouteHome      key.Binding
	RouteFavorites key.Binding

	// Filters
	FilterMuscles   key.Binding
	FilterBodyParts key.Binding
	FilterEquipment key.Binding
	CycleFilter     key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	PrevPage key.Binding
	NextPage key.Binding

	// Actions
	Search         key.Binding
	RemoveFavorite key.Binding
	Subscribe      key.Binding
	ToggleFavorite key.Binding
	Rate           key.Binding

	// Forms
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),

		// Routes
		RouteHome: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "Home"),
		),
		RouteFavorites: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "Favorites"),
		),

		// Filters
		FilterMuscles: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Muscles"),
		),
		FilterBodyParts: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Body parts"),
		),
		FilterEquipment: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Equipment"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle filter"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "Back to categories"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("left/[", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("right/]", "Next page"),
		),

		// Actions
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search exercises"),
		),
		RemoveFavorite: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Remove favorite"),
		),
		Subscribe: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Subscribe"),
		),
		ToggleFavorite: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add/remove favorite"),
		),
		Rate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Rate exercise"),
		),

		// Forms
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Send"),
		),
	}
}

// bindingGroup is a titled set of bindings shown together in the help overlay.
type bindingGroup struct {
	title    string
	bindings []key.Binding
}

func (k keyMap) groups() []bindingGroup {
	return []bindingGroup{
		{"Navigation", []key.Binding{k.RouteHome, k.RouteFavorites, k.Up, k.Down, k.Open, k.Back, k.PrevPage, k.NextPage}},
		{"Catalog", []key.Binding{k.FilterMuscles, k.FilterBodyParts, k.FilterEquipment, k.CycleFilter, k.Search, k.RemoveFavorite}},
		{"Exercise", []key.Binding{k.ToggleFavorite, k.Rate, k.Escape}},
		{"Forms", []key.Binding{k.NextField, k.PrevField, k.Submit}},
		{"General", []key.Binding{k.Subscribe, k.CycleTheme, k.Help, k.Quit}},
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	groups := k.groups()
	out := make([][]key.Binding, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.bindings)
	}
	return out
}
