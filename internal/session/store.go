// Package session keeps one value per browser session, such as the
// campaign a player is working on.
package session

import (
	"context"
	"log/slog"
	"time"
)

// Store holds values by session id. Get and Put count as activity; Sweep
// drops sessions idle for longer than the given duration.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
	Sweep(ctx context.Context, idle time.Duration) (int, error)
	NewID() string
}

// Janitor sweeps s every interval until ctx is done.
func Janitor[T any](ctx context.Context, s Store[T], interval, idle time.Duration) {
	if interval <= 0 || idle <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := s.Sweep(ctx, idle)
			if err != nil {
				slog.Error("session sweep failed", "err", err)
				continue
			}
			if n > 0 {
				slog.Info("expired idle sessions", "count", n)
			}
		}
	}
}
