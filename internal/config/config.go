package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/yourenergy/internal/catalog"
	"github.com/five82/yourenergy/internal/pager"
)

// Config captures the settings yourenergy reads from config.toml.
type Config struct {
	APIBaseURL     string
	DataDir        string
	PageButtons    int
	PinPageEdges   bool
	RequestTimeout time.Duration
	QuoteRefresh   time.Duration
	Limits         Limits
}

// Limits holds page sizes for each list and layout.
type Limits struct {
	Wide   PageLimits
	Narrow PageLimits
}

// PageLimits are the page sizes of one layout.
type PageLimits struct {
	Categories int `toml:"categories"`
	Exercises  int `toml:"exercises"`
	Favorites  int `toml:"favorites"`
}

const (
	defaultConfigPath     = "~/.config/yourenergy/config.toml"
	defaultDataDir        = "~/.local/share/yourenergy"
	defaultRequestTimeout = 10 * time.Second
	defaultQuoteRefresh   = 15 * time.Minute
)

var (
	defaultWide   = PageLimits{Categories: 12, Exercises: 10, Favorites: 10}
	defaultNarrow = PageLimits{Categories: 9, Exercises: 8, Favorites: 8}
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBaseURL:     catalog.DefaultBaseURL,
		DataDir:        mustExpand(defaultDataDir),
		PageButtons:    pager.DefaultBudget,
		PinPageEdges:   true,
		RequestTimeout: defaultRequestTimeout,
		QuoteRefresh:   defaultQuoteRefresh,
		Limits:         Limits{Wide: defaultWide, Narrow: defaultNarrow},
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL            string      `toml:"api_base_url"`
		DataDir               string      `toml:"data_dir"`
		PageButtons           *int        `toml:"page_buttons"`
		PinPageEdges          *bool       `toml:"pin_page_edges"`
		RequestTimeoutSeconds int         `toml:"request_timeout_seconds"`
		QuoteRefreshMinutes   int         `toml:"quote_refresh_minutes"`
		Wide                  *PageLimits `toml:"wide"`
		Narrow                *PageLimits `toml:"narrow"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = mustExpand(v)
	}
	if raw.PageButtons != nil {
		// Zero or negative shows every page.
		cfg.PageButtons = *raw.PageButtons
	}
	if raw.PinPageEdges != nil {
		cfg.PinPageEdges = *raw.PinPageEdges
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	if raw.QuoteRefreshMinutes > 0 {
		cfg.QuoteRefresh = time.Duration(raw.QuoteRefreshMinutes) * time.Minute
	}
	if raw.Wide != nil {
		cfg.Limits.Wide = mergeLimits(defaultWide, *raw.Wide)
	}
	if raw.Narrow != nil {
		cfg.Limits.Narrow = mergeLimits(defaultNarrow, *raw.Narrow)
	}

	return cfg, nil
}

// StorePath returns the preference database path.
func (c Config) StorePath() string {
	return filepath.Join(c.dataDir(), "prefs.db")
}

// LogPath returns the application log file path.
func (c Config) LogPath() string {
	return filepath.Join(c.dataDir(), "yourenergy.log")
}

// PageLimits returns the limits for the narrow or wide layout.
func (c Config) PageLimits(narrow bool) PageLimits {
	if narrow {
		return mergeLimits(defaultNarrow, c.Limits.Narrow)
	}
	return mergeLimits(defaultWide, c.Limits.Wide)
}

func (c Config) dataDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir)
	}
	return c.DataDir
}

func mergeLimits(base, override PageLimits) PageLimits {
	if override.Categories > 0 {
		base.Categories = override.Categories
	}
	if override.Exercises > 0 {
		base.Exercises = override.Exercises
	}
	if override.Favorites > 0 {
		base.Favorites = override.Favorites
	}
	return base
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
