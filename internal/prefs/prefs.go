// Package prefs persists small user choices made inside the TUI, such as the
// colour theme. They live apart from the config file so the UI can rewrite
// them without touching hand-edited settings.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/yourenergy/internal/config"
)

// Layout values.
const (
	LayoutAuto    = "auto"
	LayoutCompact = "compact"
	LayoutWide    = "wide"
)

const (
	defaultPrefsPath = "~/.config/yourenergy/prefs.toml"
	defaultTheme     = "Energy"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme  string `toml:"theme"`
	Layout string `toml:"layout"`
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, Layout: LayoutAuto}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path, or the default path when empty. A missing
// or broken file is not an error; defaults fill whatever cannot be read.
func Load(path string) Prefs {
	resolved, err := resolve(path)
	if err != nil {
		return Defaults()
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Defaults()
	}
	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults()
	}
	return p.normalized()
}

// Save writes p to path through a temporary file so a crash never leaves a
// half-written prefs file behind.
func Save(path string, p Prefs) error {
	resolved, err := resolve(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// Narrow reports whether the compact page sizes apply for a terminal of the
// given width.
func (p Prefs) Narrow(width, threshold int) bool {
	switch p.Layout {
	case LayoutCompact:
		return true
	case LayoutWide:
		return false
	default:
		return width > 0 && width < threshold
	}
}

func (p Prefs) normalized() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	switch p.Layout {
	case LayoutCompact, LayoutWide:
	default:
		p.Layout = LayoutAuto
	}
	return p
}

func resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
