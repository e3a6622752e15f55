package bootstrap

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/osse101/Shardlands_Go/internal/config"
	"github.com/osse101/Shardlands_Go/internal/event"
)

// InitializeEventSystem creates the in-memory bus wrapped so that events a
// handler fails on are appended to LOG_DIR/events.deadletter.jsonl. The
// caller must close the returned writer.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.DeadLetterWriter, error) {
	deadLetterPath := filepath.Join(cfg.LogDir, DeadLetterFileName)

	dlw, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetter, err)
	}

	bus := event.NewDeadLetterBus(event.NewMemoryBus(), dlw)
	slog.Info(LogMsgEventSystemInitialized, "deadletter_path", deadLetterPath)
	return bus, dlw, nil
}
