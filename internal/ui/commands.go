package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/yourenergy/internal/catalog"
	"github.com/five82/yourenergy/internal/view"
)

// Messages

type snapshotTickMsg time.Time

// categoriesMsg, exercisesMsg and favoritesMsg carry the generation of the
// request that produced them.
type categoriesMsg struct {
	gen  uint64
	page catalog.CategoryPage
	err  error
}

type exercisesMsg struct {
	gen  uint64
	page catalog.ExercisePage
	err  error
}

type favoritesMsg struct {
	gen        uint64
	items      []catalog.Exercise
	page       int
	totalPages int
}

type detailMsg struct {
	id       string
	exercise *catalog.Exercise
	err      error
}

type openDetailMsg struct{ id string }

type openRatingMsg struct{ exercise catalog.Exercise }

type favoritesChangedMsg struct {
	id    string
	added bool
}

type ratedMsg struct {
	id  string
	err error
}

type subscribedMsg struct{ err error }

type flashMsg struct {
	text  string
	isErr bool
}

type clearFlashMsg struct{ id int }

var errNoAPI = errors.New("catalog API not configured")

// Commands

func snapshotTickCmd() tea.Cmd {
	return tea.Tick(SnapshotInterval, func(t time.Time) tea.Msg {
		return snapshotTickMsg(t)
	})
}

// fetchCmd performs the request described by req.
func (m Model) fetchCmd(req view.Request) tea.Cmd {
	ctx, api, favs, limits := m.ctx, m.api, m.favs, m.limits()

	switch req.Kind {
	case view.RequestExercises:
		query := req.ExerciseQuery(limits.Exercises)
		return func() tea.Msg {
			if api == nil {
				return exercisesMsg{gen: req.Generation, err: errNoAPI}
			}
			ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
			defer cancel()
			page, err := api.FetchExercises(ctx, query)
			return exercisesMsg{gen: req.Generation, page: page, err: err}
		}

	case view.RequestFavorites:
		return func() tea.Msg {
			ids, total, current := favs.Page(req.Page, limits.Favorites)
			msg := favoritesMsg{gen: req.Generation, page: current, totalPages: total}
			if api == nil || len(ids) == 0 {
				return msg
			}
			ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
			defer cancel()
			// Entries that failed to load are skipped.
			for _, ex := range api.FetchExercisesByID(ctx, ids) {
				if ex != nil {
					msg.items = append(msg.items, *ex)
				}
			}
			return msg
		}

	default:
		return func() tea.Msg {
			if api == nil {
				return categoriesMsg{gen: req.Generation, err: errNoAPI}
			}
			ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
			defer cancel()
			page, err := api.FetchCategories(ctx, req.Filter, req.Page, limits.Categories)
			return categoriesMsg{gen: req.Generation, page: page, err: err}
		}
	}
}

func (m Model) detailCmd(id string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		if api == nil {
			return detailMsg{id: id, err: errNoAPI}
		}
		ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()
		ex, err := api.FetchExercise(ctx, id)
		return detailMsg{id: id, exercise: ex, err: err}
	}
}

func rateCmd(ctx context.Context, api catalog.API, id string, req catalog.RatingRequest) tea.Cmd {
	return func() tea.Msg {
		if api == nil {
			return ratedMsg{id: id, err: errNoAPI}
		}
		ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()
		return ratedMsg{id: id, err: api.Rate(ctx, id, req)}
	}
}

func subscribeCmd(ctx context.Context, api catalog.API, email string) tea.Cmd {
	return func() tea.Msg {
		if api == nil {
			return subscribedMsg{err: errNoAPI}
		}
		ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()
		return subscribedMsg{err: api.Subscribe(ctx, email)}
	}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
