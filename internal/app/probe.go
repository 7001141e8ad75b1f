package app

import (
	"context"
	"log/slog"

	"github.com/five82/threds/internal/state"
)

// Pinger is the liveness call. *threds.Client implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe checks the backend once and records the outcome. Failures are
// logged and reported as offline; Probe never returns an error.
func Probe(ctx context.Context, p Pinger, store *state.Store, logger *slog.Logger) bool {
	if logger == nil {
		logger = slog.Default()
	}
	err := p.Ping(ctx)
	online := err == nil
	if store != nil {
		store.Record(online, err)
	}
	if err != nil {
		logger.Warn("backend offline", "error", err)
		return false
	}
	logger.Info("backend online")
	return true
}
