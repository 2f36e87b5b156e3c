package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/yourenergy/internal/quote"
	"github.com/five82/yourenergy/internal/state"
)

const (
	defaultRefreshInterval = 15 * time.Minute
	retryInterval          = 2 * time.Second
	maxBackoff             = 30 * time.Second
)

// QuoteSource yields the quote of the day.
type QuoteSource interface {
	Today(ctx context.Context) (q quote.Quote, fromCache bool, err error)
}

var _ QuoteSource = (*quote.Service)(nil)

// StartRefresher launches a goroutine that keeps the snapshot's quote current.
// It refreshes immediately, then every interval. While refreshes fail it
// retries with exponential backoff. The returned channel closes when the
// goroutine exits after ctx is cancelled.
func StartRefresher(ctx context.Context, snapshots *state.Store, source QuoteSource, interval time.Duration, log *zap.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			wait := interval
			if !refresh(ctx, snapshots, source, log) {
				wait = calculateBackoff(snapshots.Snapshot().Failures, retryInterval)
			}
			timer.Reset(wait)
		}
	}()
	return done
}

func refresh(ctx context.Context, snapshots *state.Store, source QuoteSource, log *zap.Logger) bool {
	q, fromCache, err := source.Today(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		snapshots.Fail(err)
		log.Warn("quote refresh failed", zap.Error(err))
		return false
	}
	src := state.SourceAPI
	if fromCache {
		src = state.SourceCache
	}
	snapshots.Record(q, src)
	log.Debug("quote refreshed", zap.String("date", q.Date), zap.Stringer("source", src))
	return true
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
