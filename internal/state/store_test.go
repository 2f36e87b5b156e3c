package state

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/five82/yourenergy/internal/quote"
)

const today = "2026-10-19"

func TestStore_ZeroValue(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	require.False(t, snap.HasQuote)
	require.Equal(t, SourceNone, snap.Source)
	require.False(t, snap.IsOffline())
	require.True(t, snap.NeedsRefresh(today))
}

func TestStore_RecordFromAPI(t *testing.T) {
	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	s := Store{now: func() time.Time { return at }}

	s.Record(quote.Quote{Date: today, Text: "Move", Author: "A"}, SourceAPI)

	snap := s.Snapshot()
	require.True(t, snap.HasQuote)
	require.Equal(t, "Move", snap.Quote.Text)
	require.Equal(t, SourceAPI, snap.Source)
	require.Equal(t, at, snap.LastSuccess)
	require.Equal(t, at, snap.LastRefresh)
	require.NoError(t, snap.LastError)
	require.False(t, snap.NeedsRefresh(today))
	require.True(t, snap.NeedsRefresh("2026-10-20"))
}

func TestStore_CacheHitKeepsFailureState(t *testing.T) {
	var s Store
	s.Fail(errors.New("offline"))

	s.Record(quote.Quote{Date: today, Text: "Cached", Author: "A"}, SourceCache)

	snap := s.Snapshot()
	require.Equal(t, SourceCache, snap.Source)
	require.Equal(t, "Cached", snap.Quote.Text)
	require.Equal(t, 1, snap.Failures)
	require.Error(t, snap.LastError)
	require.True(t, snap.LastSuccess.IsZero())
}

func TestStore_FailureKeepsQuoteAndClonesError(t *testing.T) {
	var s Store
	require.True(t, s.Seed(quote.Quote{Date: today, Text: "Old", Author: "B"}, today))

	orig := errors.New("boom")
	s.Fail(orig)

	snap := s.Snapshot()
	require.True(t, snap.HasQuote)
	require.Equal(t, "Old", snap.Quote.Text)
	require.Equal(t, SourceCache, snap.Source)
	require.ErrorIs(t, snap.LastError, orig)
	require.NotSame(t, orig, snap.LastError)
	require.True(t, snap.LastSuccess.IsZero())
}

func TestStore_SeedDropsQuoteFromAnotherDay(t *testing.T) {
	var s Store

	require.False(t, s.Seed(quote.Quote{Date: "2026-10-18", Text: "Yesterday", Author: "B"}, today))

	snap := s.Snapshot()
	require.False(t, snap.HasQuote)
	require.Equal(t, SourceNone, snap.Source)
	require.Zero(t, snap.Version)
}

func TestStore_OfflineAfterRepeatedFailures(t *testing.T) {
	var s Store

	s.Fail(errors.New("fail 1"))
	require.False(t, s.Snapshot().IsOffline())

	s.Fail(errors.New("fail 2"))
	require.True(t, s.Snapshot().IsOffline())
	require.Equal(t, 2, s.Snapshot().Failures)

	s.Record(quote.Quote{Date: today, Text: "Back", Author: "C"}, SourceAPI)
	snap := s.Snapshot()
	require.False(t, snap.IsOffline())
	require.Zero(t, snap.Failures)
}

func TestStore_SeedNeverOverridesAPIQuote(t *testing.T) {
	var s Store
	s.Record(quote.Quote{Date: today, Text: "Fresh", Author: "A"}, SourceAPI)
	before := s.Snapshot().Version

	require.False(t, s.Seed(quote.Quote{Date: today, Text: "Cached", Author: "B"}, today))

	snap := s.Snapshot()
	require.Equal(t, "Fresh", snap.Quote.Text)
	require.Equal(t, before, snap.Version)
}

func TestStore_VersionAdvancesOnChange(t *testing.T) {
	var s Store
	v0 := s.Snapshot().Version
	s.Seed(quote.Quote{Date: today, Text: "x"}, today)
	v1 := s.Snapshot().Version
	s.Fail(errors.New("x"))
	v2 := s.Snapshot().Version
	require.Less(t, v0, v1)
	require.Less(t, v1, v2)
}
