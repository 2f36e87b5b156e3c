package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/five82/yourenergy/internal/quote"
	"github.com/five82/yourenergy/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type fakeSource struct {
	calls  atomic.Int32
	err    error
	cached bool
}

func (f *fakeSource) Today(context.Context) (quote.Quote, bool, error) {
	f.calls.Add(1)
	if f.err != nil {
		return quote.Quote{}, false, f.err
	}
	return quote.Quote{Date: "2026-10-19", Text: "Keep going", Author: "Coach"}, f.cached, nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestStartRefresher_UpdatesSnapshotAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	snapshots := &state.Store{}
	src := &fakeSource{}

	done := StartRefresher(ctx, snapshots, src, time.Hour, zap.NewNop())
	waitFor(t, func() bool { return snapshots.Snapshot().HasQuote })

	snap := snapshots.Snapshot()
	if snap.Quote.Text != "Keep going" || snap.Quote.Author != "Coach" {
		t.Fatalf("quote = %+v", snap.Quote)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresher did not stop after cancel")
	}
	if got := src.calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1 within the hour interval", got)
	}
}

func TestStartRefresher_RecordsFailures(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	snapshots := &state.Store{}
	src := &fakeSource{err: errors.New("offline")}

	done := StartRefresher(ctx, snapshots, src, time.Hour, nil)
	waitFor(t, func() bool { return snapshots.Snapshot().Failures >= 1 })

	snap := snapshots.Snapshot()
	if snap.HasQuote {
		t.Fatal("HasQuote = true after failed refresh")
	}
	if snap.LastError == nil || snap.LastError.Error() != "offline" {
		t.Fatalf("LastError = %v, want offline", snap.LastError)
	}

	cancel()
	<-done
}

func TestRefresh_CacheHitIsRecordedAsCache(t *testing.T) {
	snapshots := &state.Store{}
	snapshots.Fail(errors.New("offline"))

	if !refresh(context.Background(), snapshots, &fakeSource{cached: true}, zap.NewNop()) {
		t.Fatal("refresh reported failure for a cache hit")
	}
	snap := snapshots.Snapshot()
	if snap.Source != state.SourceCache {
		t.Fatalf("Source = %v, want cache", snap.Source)
	}
	if snap.Failures != 1 {
		t.Fatalf("Failures = %d, want 1 kept across a cache hit", snap.Failures)
	}

	refresh(context.Background(), snapshots, &fakeSource{}, zap.NewNop())
	if snap := snapshots.Snapshot(); snap.Source != state.SourceAPI || snap.Failures != 0 {
		t.Fatalf("after network refresh: source=%v failures=%d", snap.Source, snap.Failures)
	}
}
