package event

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/osse101/Shardlands_Go/internal/logger"
)

// DeadLetterSchemaVersion is the current version of the dead-letter log format
// Increment this when changing the DeadLetterEntry structure
const DeadLetterSchemaVersion = "1.0"

// DeadLetterWriter handles writing failed events to a dead-letter file
type DeadLetterWriter struct {
	file *os.File
	mu   sync.Mutex
}

// DeadLetterEntry represents an event whose handlers failed
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"` // Format version for future migrations
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	LastError     string    `json:"last_error,omitempty"`
}

// NewDeadLetterWriter opens path for appending, creating parent directories.
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create dead-letter directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f}, nil
}

// Write appends a failed event as one JSON line
func (dlw *DeadLetterWriter) Write(ctx context.Context, event Event, lastError error) error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Event:         event,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	logger.FromContext(ctx).Warn(LogMsgEventDeadLettered,
		"event_type", event.Type,
		"error", entry.LastError)

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = dlw.file.Write(append(data, '\n'))
	return err
}

// Close closes the dead-letter file
func (dlw *DeadLetterWriter) Close() error {
	return dlw.file.Close()
}

// DeadLetterBus wraps a Bus so handler failures never reach the publisher.
// Failed events are appended to the dead-letter file instead. Game handlers
// are not idempotent, so events are not redelivered.
type DeadLetterBus struct {
	inner Bus
	dlw   *DeadLetterWriter
}

// NewDeadLetterBus creates a DeadLetterBus around inner
func NewDeadLetterBus(inner Bus, dlw *DeadLetterWriter) *DeadLetterBus {
	return &DeadLetterBus{inner: inner, dlw: dlw}
}

// Publish delegates to the inner bus and records failures
func (b *DeadLetterBus) Publish(ctx context.Context, event Event) error {
	err := b.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Error(LogMsgHandlerFailed, "event_type", event.Type, "error", err)
	if werr := b.dlw.Write(ctx, event, err); werr != nil {
		logger.FromContext(ctx).Error(LogMsgDeadLetterWriteFailed, "error", werr)
	}
	return nil
}

// Subscribe delegates to the inner bus
func (b *DeadLetterBus) Subscribe(eventType Type, handler Handler) {
	b.inner.Subscribe(eventType, handler)
}
