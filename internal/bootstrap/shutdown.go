package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Shardlands_Go/internal/event"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Any of them may be nil.
type ShutdownComponents struct {
	Profiles     flusher
	Repositories *Repositories
	DeadLetters  *event.DeadLetterWriter
}

type flusher interface {
	Flush(ctx context.Context) error
}

// GracefulShutdown persists pending statistics and then releases storage.
// The status server is stopped by its own lifecycle goroutine. Errors are
// logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	// Flush before the pool closes so postgres saves still land
	if components.Profiles != nil {
		if err := components.Profiles.Flush(ctx); err != nil {
			slog.Error(LogMsgProfileFlushFailed, "error", err)
		}
	}

	if components.Repositories != nil {
		components.Repositories.Close()
	}

	if components.DeadLetters != nil {
		if err := components.DeadLetters.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgShutdownComplete)
}
