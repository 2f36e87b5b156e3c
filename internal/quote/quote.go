// Package quote caches the quote of the day for one calendar day.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/five82/yourenergy/internal/catalog"
	"github.com/five82/yourenergy/internal/store"
)

// Key is the preference key holding the cached quote.
const Key = "yourEnergyQuoteCacheV1"

const dateLayout = "2006-01-02"

// Fetcher retrieves a fresh quote.
type Fetcher interface {
	FetchQuote(ctx context.Context) (catalog.Quote, error)
}

// Quote is a quote together with the day it is valid for.
type Quote struct {
	Date   string `json:"date"`
	Text   string `json:"quote"`
	Author string `json:"author"`
}

// Service returns the quote of the day, fetching at most once per day.
type Service struct {
	Store   store.Store
	Fetcher Fetcher
	// Now defaults to time.Now.
	Now func() time.Time
}

// Today returns the quote for the current day. A cached quote stamped with
// today's date is returned without a network call and fromCache set.
func (s *Service) Today(ctx context.Context) (q Quote, fromCache bool, err error) {
	today := s.Date()
	if cached, ok := s.Cached(); ok && cached.Date == today {
		return cached, true, nil
	}
	if s.Fetcher == nil {
		return Quote{}, false, fmt.Errorf("no quote source")
	}

	fresh, err := s.Fetcher.FetchQuote(ctx)
	if err != nil {
		return Quote{}, false, fmt.Errorf("fetch quote: %w", err)
	}
	q = Quote{Date: today, Text: strings.TrimSpace(fresh.Text), Author: strings.TrimSpace(fresh.Author)}
	if q.Text == "" {
		return Quote{}, false, fmt.Errorf("fetch quote: empty quote")
	}
	if s.Store != nil {
		if data, err := json.Marshal(q); err == nil {
			s.Store.Set(Key, string(data))
		}
	}
	return q, false, nil
}

// Cached returns the stored quote regardless of its date. Entries missing a
// quote or author are treated as absent.
func (s *Service) Cached() (Quote, bool) {
	if s.Store == nil {
		return Quote{}, false
	}
	raw, ok := s.Store.Get(Key)
	if !ok {
		return Quote{}, false
	}
	var q Quote
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		return Quote{}, false
	}
	if q.Date == "" || q.Text == "" || q.Author == "" {
		return Quote{}, false
	}
	return q, true
}

// Date returns the calendar day a quote fetched now would be stamped with.
func (s *Service) Date() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Day(now())
}

// Day formats t as a quote date. Dates use UTC so the cache rolls over at the
// same instant as the stamp written by the web client.
func Day(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
