// Package favorites keeps the locally persisted set of favorite exercise IDs.
package favorites

import (
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/five82/yourenergy/internal/pager"
	"github.com/five82/yourenergy/internal/store"
)

// Key is the preference key holding the JSON array of favorite IDs.
const Key = "yourEnergyFavorites"

// Set mediates every favorites change. The list card, the detail modal and the
// favorites page all go through the same Set.
type Set struct {
	mu    sync.Mutex
	store store.Store
}

// New returns a Set persisted in s.
func New(s store.Store) *Set {
	return &Set{store: s}
}

// IDs returns the favorite IDs in insertion order.
func (f *Set) IDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// Len returns the number of favorites.
func (f *Set) Len() int {
	return len(f.IDs())
}

// IsFavorite reports whether id is a favorite.
func (f *Set) IsFavorite(id string) bool {
	return slices.Contains(f.IDs(), strings.TrimSpace(id))
}

// Toggle flips membership of id and returns the new membership.
func (f *Set) Toggle(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := f.read()
	if slices.Contains(ids, id) {
		f.write(slices.DeleteFunc(ids, func(x string) bool { return x == id }))
		return false
	}
	f.write(append(ids, id))
	return true
}

// Add makes id a favorite. It reports whether the set changed.
func (f *Set) Add(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := f.read()
	if slices.Contains(ids, id) {
		return false
	}
	f.write(append(ids, id))
	return true
}

// Remove drops id from the favorites. It reports whether the set changed.
func (f *Set) Remove(id string) bool {
	id = strings.TrimSpace(id)
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := f.read()
	if !slices.Contains(ids, id) {
		return false
	}
	f.write(slices.DeleteFunc(ids, func(x string) bool { return x == id }))
	return true
}

// Page returns the IDs on the requested page along with the total page count
// and the page number after clamping.
func (f *Set) Page(page, limit int) ([]string, int, int) {
	return pager.Slice(f.IDs(), page, limit)
}

func (f *Set) read() []string {
	if f.store == nil {
		return nil
	}
	raw, ok := f.store.Get(Key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var decoded []any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil
	}
	ids := make([]string, 0, len(decoded))
	for _, v := range decoded {
		if id := normalize(v); id != "" {
			ids = append(ids, id)
		}
	}
	return dedupe(ids)
}

func (f *Set) write(ids []string) {
	if f.store == nil {
		return
	}
	data, err := json.Marshal(dedupe(ids))
	if err != nil {
		return
	}
	f.store.Set(Key, string(data))
}

// normalize accepts the string IDs written by this package as well as numeric
// IDs written by older clients.
func normalize(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		data, _ := json.Marshal(x)
		return string(data)
	default:
		return ""
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
