package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/yourenergy/internal/quote"
)

// offlineAfter is the number of consecutive failed refreshes after which the
// API is reported offline.
const offlineAfter = 2

// Source tells where the current quote came from.
type Source int

const (
	SourceNone Source = iota
	SourceCache
	SourceAPI
)

func (s Source) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceAPI:
		return "api"
	default:
		return "none"
	}
}

// Snapshot is the background data visible to the UI at one instant.
type Snapshot struct {
	Quote       quote.Quote
	HasQuote    bool
	Source      Source
	LastRefresh time.Time // last attempt, successful or not
	LastSuccess time.Time
	LastError   error
	Failures    int    // consecutive failed refreshes
	Version     uint64 // bumped on every change
}

// IsOffline reports whether the API has been unreachable for several refreshes.
func (s Snapshot) IsOffline() bool {
	return s.Failures >= offlineAfter
}

// NeedsRefresh reports whether the held quote is missing or not for today.
func (s Snapshot) NeedsRefresh(today string) bool {
	return !s.HasQuote || s.Quote.Date != today
}

// Store guards the snapshot shared by the refresher and the UI. The zero
// value is ready to use.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
	now  func() time.Time
}

// Seed installs a quote read from the local cache before the first refresh.
// Quotes stamped for a day other than today are dropped, and a quote obtained
// from the API is never replaced. Seed reports whether q was installed.
func (s *Store) Seed(q quote.Quote, today string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.Source == SourceAPI || q.Date != today {
		return false
	}
	s.snap.Quote = q
	s.snap.HasQuote = true
	s.snap.Source = SourceCache
	s.snap.Version++
	return true
}

// Record stores a successful refresh. A quote served from the same-day cache
// made no network call, so it leaves the failure count and LastSuccess alone.
func (s *Store) Record(q quote.Quote, src Source) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	s.snap.LastRefresh = now
	s.snap.Version++
	s.snap.Quote = q
	s.snap.HasQuote = true
	s.snap.Source = src
	if src != SourceAPI {
		return
	}
	s.snap.LastSuccess = now
	s.snap.LastError = nil
	s.snap.Failures = 0
}

// Fail stores a failed refresh. The previous quote is kept and the failure
// counts towards IsOffline.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.LastRefresh = s.clock()
	s.snap.Version++
	s.snap.LastError = err
	s.snap.Failures++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snap
	if snap.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snap.LastError)
	}
	return snap
}

func (s *Store) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
