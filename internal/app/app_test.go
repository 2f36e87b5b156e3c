package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/yourenergy/internal/favorites"
	"github.com/five82/yourenergy/internal/quote"
	"github.com/five82/yourenergy/internal/store"
)

func writeTestConfig(t *testing.T, baseURL string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	dataDir := filepath.Join(dir, "data")
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf("api_base_url = %q\ndata_dir = %q\nrequest_timeout_seconds = 3\n", baseURL, dataDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path, dataDir
}

func TestNewEnvironment_PersistsFavoritesAcrossSessions(t *testing.T) {
	cfgPath, dataDir := writeTestConfig(t, "http://127.0.0.1:1/api")

	env, err := NewEnvironment(Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("NewEnvironment: %v", err)
	}
	if _, ok := env.Store.(*store.SQLite); !ok {
		t.Fatalf("store = %T, want *store.SQLite", env.Store)
	}
	if got := env.Client.BaseURL(); got != "http://127.0.0.1:1/api/" {
		t.Fatalf("BaseURL = %q", got)
	}
	env.Favorites.Add("ex1")
	env.Favorites.Add("ex2")
	env.Close()

	if _, err := os.Stat(filepath.Join(dataDir, "prefs.db")); err != nil {
		t.Fatalf("prefs.db not created: %v", err)
	}

	env, err = NewEnvironment(Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("NewEnvironment reopen: %v", err)
	}
	defer env.Close()
	if got := env.Favorites.IDs(); len(got) != 2 || got[0] != "ex1" || got[1] != "ex2" {
		t.Fatalf("IDs after reopen = %v, want [ex1 ex2]", got)
	}
}

func TestNewEnvironment_InvalidBaseURL(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, "http://")
	if _, err := NewEnvironment(Options{ConfigPath: cfgPath}); err == nil {
		t.Fatal("expected error for base URL without host")
	}
}

func TestSeedSnapshots_OnlyTodaysCachedQuote(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		wantSeed bool
	}{
		{"same day", "2026-10-19", true},
		{"previous day", "2026-10-18", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := store.NewMemory()
			data, err := json.Marshal(quote.Quote{Date: tt.date, Text: "Cached quote", Author: "Old"})
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			mem.Set(quote.Key, string(data))
			svc := &quote.Service{
				Store: mem,
				Now:   func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) },
			}

			snap := seedSnapshots(svc).Snapshot()
			if snap.HasQuote != tt.wantSeed {
				t.Fatalf("HasQuote = %v, want %v", snap.HasQuote, tt.wantSeed)
			}
		})
	}
}

func TestNewEnvironment_VerboseLogsStoredKeys(t *testing.T) {
	cfgPath, dataDir := writeTestConfig(t, "http://127.0.0.1:1/api")

	env, err := NewEnvironment(Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("NewEnvironment: %v", err)
	}
	env.Favorites.Add("ex1")
	env.Close()

	env, err = NewEnvironment(Options{ConfigPath: cfgPath, Verbose: true})
	if err != nil {
		t.Fatalf("NewEnvironment verbose: %v", err)
	}
	env.Close()

	data, err := os.ReadFile(filepath.Join(dataDir, "yourenergy.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	want := fmt.Sprintf(`"keys":[%q]`, favorites.Key)
	if !strings.Contains(string(data), want) {
		t.Fatalf("log does not list stored keys:\n%s", data)
	}
}
