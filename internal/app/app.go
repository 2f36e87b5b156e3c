package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/yourenergy/internal/catalog"
	"github.com/five82/yourenergy/internal/config"
	"github.com/five82/yourenergy/internal/favorites"
	"github.com/five82/yourenergy/internal/logging"
	"github.com/five82/yourenergy/internal/prefs"
	"github.com/five82/yourenergy/internal/quote"
	"github.com/five82/yourenergy/internal/state"
	"github.com/five82/yourenergy/internal/store"
	"github.com/five82/yourenergy/internal/ui"
)

// Options configure the yourenergy application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/yourenergy/prefs.toml
	Route      string // start fragment, "#/home" or "#/favorites"
	Verbose    bool
}

// Environment holds the shared services built from config.
type Environment struct {
	Config    config.Config
	Log       *zap.Logger
	Store     store.Store
	Client    *catalog.Client
	Favorites *favorites.Set
	Quotes    *quote.Service
}

// NewEnvironment loads config and opens the log, store and client.
func NewEnvironment(opts Options) (*Environment, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logging.NewOrNop(cfg.LogPath(), opts.Verbose)

	client, err := catalog.NewClient(cfg.APIBaseURL,
		catalog.WithTimeout(cfg.RequestTimeout),
		catalog.WithLogger(log),
	)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("init catalog client: %w", err)
	}

	st := store.OpenOrMemory(cfg.StorePath(), log)
	if opts.Verbose {
		if lister, ok := st.(interface{ Keys() []string }); ok {
			log.Debug("store opened", zap.String("path", cfg.StorePath()), zap.Strings("keys", lister.Keys()))
		}
	}
	return &Environment{
		Config:    cfg,
		Log:       log,
		Store:     st,
		Client:    client,
		Favorites: favorites.New(st),
		Quotes:    &quote.Service{Store: st, Fetcher: client},
	}, nil
}

// Close releases the store and flushes the log.
func (e *Environment) Close() {
	if c, ok := e.Store.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			e.Log.Warn("close store", zap.Error(err))
		}
	}
	_ = e.Log.Sync()
}

// Run boots the yourenergy TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := NewEnvironment(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	userPrefs := prefs.Load(opts.PrefsPath)
	env.Log.Info("starting",
		zap.String("api", env.Client.BaseURL()),
		zap.String("route", opts.Route),
		zap.String("theme", userPrefs.Theme),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snapshots := seedSnapshots(env.Quotes)
	done := StartRefresher(ctx, snapshots, env.Quotes, env.Config.QuoteRefresh, env.Log)

	err = ui.Run(ui.Options{
		Context:   ctx,
		API:       env.Client,
		Favorites: env.Favorites,
		Snapshots: snapshots,
		Config:    env.Config,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Route:     opts.Route,
		Log:       env.Log,
	})

	cancel()
	<-done
	return err
}

// seedSnapshots prepares the shared snapshot with today's cached quote, if
// there is one.
func seedSnapshots(quotes *quote.Service) *state.Store {
	snapshots := &state.Store{}
	if cached, ok := quotes.Cached(); ok {
		snapshots.Seed(cached, quotes.Date())
	}
	return snapshots
}
