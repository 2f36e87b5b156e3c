package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/yourenergy/internal/catalog"
	"github.com/five82/yourenergy/internal/config"
	"github.com/five82/yourenergy/internal/favorites"
	"github.com/five82/yourenergy/internal/forms"
	"github.com/five82/yourenergy/internal/prefs"
	"github.com/five82/yourenergy/internal/state"
	"github.com/five82/yourenergy/internal/view"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	API       catalog.API
	Favorites *favorites.Set
	Snapshots *state.Store
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Route     string // start fragment; empty means home
	Log       *zap.Logger
	Now       func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	api       catalog.API
	favs      *favorites.Set
	snapshots *state.Store
	config    config.Config
	prefs     prefs.Prefs
	prefsPath string
	log       *zap.Logger
	keys      keyMap
	now       func() time.Time

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	narrow bool

	// Screen state and the data it shows
	view       view.State
	pending    *view.Request
	loading    bool
	err        error
	categories []catalog.Category
	exercises  []catalog.Exercise // exercises or favorites, depending on mode
	cursor     int

	spinner   spinner.Model
	search    textinput.Model
	searching bool

	modal    Modal
	showHelp bool

	snapshot state.Snapshot
	flash    string
	flashErr bool
	flashID  int
}

// New creates a new Bubble Tea model. The first request is issued by Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	favs := opts.Favorites
	if favs == nil {
		favs = favorites.New(nil)
	}

	userPrefs := opts.Prefs
	if userPrefs.Theme == "" {
		userPrefs = prefs.Defaults()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "/ "
	search.CharLimit = 64

	m := Model{
		ctx:       ctx,
		api:       opts.API,
		favs:      favs,
		snapshots: opts.Snapshots,
		config:    opts.Config,
		prefs:     userPrefs,
		prefsPath: prefsPath,
		log:       log,
		keys:      DefaultKeyMap(),
		now:       now,
		theme:     GetTheme(userPrefs.Theme),
		view:      view.Initial(),
		spinner:   sp,
		search:    search,
	}
	if m.snapshots != nil {
		m.snapshot = m.snapshots.Snapshot()
	}

	next, req := view.Reduce(m.view, view.Navigate{Fragment: opts.Route})
	m.view = next
	m.pending = req
	m.loading = req != nil
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen, snapshotTickCmd()}
	if m.pending != nil {
		cmds = append(cmds, m.spinner.Tick, m.fetchCmd(*m.pending))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		narrow := m.prefs.Narrow(m.width, LayoutCompactWidth)
		changed := m.ready && narrow != m.narrow
		m.narrow = narrow
		if !m.ready && narrow {
			// The first request assumed the wide page sizes.
			changed = true
		}
		m.ready = true
		m.search.Width = max(10, m.width/3)
		var cmd tea.Cmd
		if changed {
			cmd = m.apply(view.Reload{})
		}
		return m, cmd

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotTickMsg:
		if m.snapshots != nil {
			m.snapshot = m.snapshots.Snapshot()
		}
		return m, snapshotTickCmd()

	case categoriesMsg:
		if !m.view.Accepts(msg.gen) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.err = nil
		m.categories = msg.page.Results
		m.view, _ = view.Reduce(m.view, view.Loaded{Generation: msg.gen, Page: int(msg.page.Page), TotalPages: int(msg.page.TotalPages)})
		m.clampCursor()
		return m, nil

	case exercisesMsg:
		if !m.view.Accepts(msg.gen) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.err = nil
		m.exercises = msg.page.Results
		m.view, _ = view.Reduce(m.view, view.Loaded{Generation: msg.gen, Page: int(msg.page.Page), TotalPages: int(msg.page.TotalPages)})
		m.clampCursor()
		return m, nil

	case favoritesMsg:
		if !m.view.Accepts(msg.gen) {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.exercises = msg.items
		m.view, _ = view.Reduce(m.view, view.Loaded{Generation: msg.gen, Page: msg.page, TotalPages: msg.totalPages})
		m.clampCursor()
		return m, nil

	case detailMsg:
		if msg.err == nil && msg.exercise == nil {
			msg.err = errors.New("exercise not found")
		}
		if msg.err != nil {
			m.log.Warn("load exercise failed", zap.String("id", msg.id), zap.Error(msg.err))
			cmd := m.flashCmd(msg.err.Error(), true)
			return m, cmd
		}
		m.modal = newDetailModal(*msg.exercise, m.favs, m.width, m.height)
		return m, nil

	case openDetailMsg:
		return m, m.detailCmd(msg.id)

	case openRatingMsg:
		m.modal = newRatingModal(m.ctx, m.api, msg.exercise)
		return m, textinput.Blink

	case favoritesChangedMsg:
		text := "Removed from favorites"
		if msg.added {
			text = "Added to favorites"
		}
		cmds := []tea.Cmd{m.flashCmd(text, false)}
		if m.view.Route == view.RouteFavorites {
			cmds = append(cmds, m.apply(view.Reload{}))
		}
		return m, tea.Batch(cmds...)

	case ratedMsg:
		if r, ok := m.modal.(*ratingModal); ok && r.exercise.ID == msg.id {
			break
		}
		// The form was closed while the request was in flight.
		if msg.err != nil {
			m.log.Warn("rate exercise failed", zap.String("id", msg.id), zap.Error(msg.err))
			cmd := m.flashCmd(msg.err.Error(), true)
			return m, cmd
		}
		cmd := m.flashCmd(forms.RatedMessage, false)
		return m, cmd

	case subscribedMsg:
		if _, ok := m.modal.(*subscribeModal); ok {
			break
		}
		if msg.err != nil {
			m.log.Warn("subscribe failed", zap.Error(msg.err))
			cmd := m.flashCmd(msg.err.Error(), true)
			return m, cmd
		}
		cmd := m.flashCmd(forms.SubscribedMessage, false)
		return m, cmd

	case flashMsg:
		cmd := m.flashCmd(msg.text, msg.isErr)
		return m, cmd

	case clearFlashMsg:
		if msg.id == m.flashID {
			m.flash = ""
			m.flashErr = false
		}
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		m.modal = modal
		if closed {
			m.modal = nil
		}
		return m, cmd
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.renderModal()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		m.modal = modal
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
			m.log.Warn("save prefs failed", zap.Error(err))
		}
		return m, nil

	case key.Matches(msg, m.keys.RouteHome):
		cmd = m.apply(view.Navigate{Fragment: view.RouteHome.Fragment()})

	case key.Matches(msg, m.keys.RouteFavorites):
		cmd = m.apply(view.Navigate{Fragment: view.RouteFavorites.Fragment()})

	case key.Matches(msg, m.keys.FilterMuscles):
		cmd = m.apply(view.SelectFilter{Filter: catalog.FilterMuscles})

	case key.Matches(msg, m.keys.FilterBodyParts):
		cmd = m.apply(view.SelectFilter{Filter: catalog.FilterBodyParts})

	case key.Matches(msg, m.keys.FilterEquipment):
		cmd = m.apply(view.SelectFilter{Filter: catalog.FilterEquipment})

	case key.Matches(msg, m.keys.CycleFilter):
		cmd = m.apply(view.SelectFilter{Filter: nextFilter(m.view.Filter)})

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		cmd = m.open()

	case key.Matches(msg, m.keys.Back):
		cmd = m.apply(view.Back{})

	case key.Matches(msg, m.keys.PrevPage):
		cmd = m.apply(view.GoToPage{Page: m.view.Page - 1})

	case key.Matches(msg, m.keys.NextPage):
		cmd = m.apply(view.GoToPage{Page: m.view.Page + 1})

	case key.Matches(msg, m.keys.Search):
		if !m.view.ShowsSearch() {
			return m, nil
		}
		m.searching = true
		m.search.SetValue(m.view.Keyword)
		m.search.CursorEnd()
		cmd = m.search.Focus()

	case key.Matches(msg, m.keys.RemoveFavorite):
		cmd = m.removeFavorite()

	case key.Matches(msg, m.keys.Subscribe):
		m.modal = newSubscribeModal(m.ctx, m.api)
		cmd = textinput.Blink
	}

	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.searching = false
		m.search.Blur()
		cmd := m.apply(view.Search{Keyword: m.search.Value()})
		return m, cmd
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// apply feeds ev through the view reducer and starts the fetch the new state
// needs, if any.
func (m *Model) apply(ev view.Event) tea.Cmd {
	next, req := view.Reduce(m.view, ev)
	m.view = next
	if req == nil {
		return nil
	}
	m.loading = true
	m.err = nil
	m.cursor = 0
	return tea.Batch(m.spinner.Tick, m.fetchCmd(*req))
}

// open drills into the selected category or opens the selected exercise.
func (m *Model) open() tea.Cmd {
	if m.loading || m.err != nil {
		return nil
	}
	switch m.view.Mode {
	case view.ModeCategories:
		if m.cursor < len(m.categories) {
			return m.apply(view.SelectCategory{Name: m.categories[m.cursor].Name})
		}
	default:
		if m.cursor < len(m.exercises) {
			return m.detailCmd(m.exercises[m.cursor].ID)
		}
	}
	return nil
}

func (m *Model) removeFavorite() tea.Cmd {
	if m.view.Mode != view.ModeFavorites || m.cursor >= len(m.exercises) {
		return nil
	}
	ex := m.exercises[m.cursor]
	if !m.favs.Remove(ex.ID) {
		return nil
	}
	return tea.Batch(
		m.flashCmd("Removed "+titleCase(ex.Name)+" from favorites", false),
		m.apply(view.Reload{}),
	)
}

func (m *Model) setError(err error) {
	m.err = err
	m.categories = nil
	m.exercises = nil
	m.cursor = 0
	m.log.Warn("request failed", zap.String("mode", m.view.Mode.String()), zap.Error(err))
}

func (m *Model) flashCmd(text string, isErr bool) tea.Cmd {
	m.flash = text
	m.flashErr = isErr
	m.flashID++
	id := m.flashID
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{id: id}
	})
}

func (m *Model) itemCount() int {
	if m.view.Mode == view.ModeCategories {
		return len(m.categories)
	}
	return len(m.exercises)
}

func (m *Model) clampCursor() {
	if n := m.itemCount(); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

// limits returns the page sizes for the current layout.
func (m Model) limits() config.PageLimits {
	return m.config.PageLimits(m.narrow)
}

func nextFilter(current catalog.Filter) catalog.Filter {
	for i, f := range catalog.Filters {
		if f == current {
			return catalog.Filters[(i+1)%len(catalog.Filters)]
		}
	}
	return catalog.Filters[0]
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
