package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Shardlands_Go/internal/config"
	"github.com/osse101/Shardlands_Go/internal/dialogue"
	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/encounter"
	"github.com/osse101/Shardlands_Go/internal/event"
	"github.com/osse101/Shardlands_Go/internal/forge"
	"github.com/osse101/Shardlands_Go/internal/validation"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LogLevel:          "debug",
		LogFormat:         "text",
		LogDir:            filepath.Join(dir, "logs"),
		Environment:       "test",
		ServiceName:       "shardlands",
		Version:           "test",
		SaveBackend:       config.BackendFile,
		SavePath:          filepath.Join(dir, "saves", "save.json"),
		SaveSlot:          "default",
		WorldWidth:        3,
		WorldDepth:        3,
		InventoryCapacity: 4,
		Seed:              99,
		ProfileCacheSize:  4,
		ProfileCacheTTL:   time.Minute,
	}
}

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("session_2026-01-%02d_00-00-00.log", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "events.deadletter.jsonl"), nil, 0o644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), LogFileExtension) {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, "session_2026-01-01_00-00-00.log", "oldest removed first")
	assert.Contains(t, logs, "session_2026-01-12_00-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "events.deadletter.jsonl"))
}

func TestSetupLogger(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	slog.Info("hello from test")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, LogMsgStartingShardlands)
	assert.Contains(t, out, "hello from test")
	assert.Contains(t, out, "service=shardlands")
	assert.Contains(t, out, "SEED is fixed", "config warnings land in the session log")
}

type countingRecorder struct {
	stats domain.LifetimeStats
}

func (r *countingRecorder) RecordStats(fn func(*domain.LifetimeStats)) { fn(&r.stats) }

func TestEventSystem_StatsAndDeadLetters(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)

	bus, dlw, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	defer dlw.Close()

	rec := &countingRecorder{}
	require.NoError(t, RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, Recorder: rec}))

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewRunStartedEvent("run-1", 9, 0)))
	assert.Equal(t, 1, rec.stats.Runs)

	bus.Subscribe(event.RunStarted, func(context.Context, event.Event) error { return errors.New("boom") })
	require.NoError(t, bus.Publish(ctx, event.NewRunStartedEvent("run-2", 9, 0)), "failures are dead-lettered, not returned")

	data, err := os.ReadFile(filepath.Join(cfg.LogDir, DeadLetterFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "boom")
}

func TestInitializeRepositories_FileBackend(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)
	ctx := context.Background()

	repos, err := InitializeRepositories(ctx, cfg)
	require.NoError(t, err)
	defer repos.Close()
	assert.Nil(t, repos.Pool)

	_, err = repos.Profile.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	p := domain.NewProfile("p-1")
	p.Player.MemoryShards = 55
	require.NoError(t, repos.Profile.Save(ctx, p))
	assert.FileExists(t, cfg.SavePath)

	loaded, err := repos.Profile.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 55, loaded.Player.MemoryShards)
}

func shippedContentPaths(t *testing.T) ContentPaths {
	t.Helper()
	resolve := func(p string) string {
		full, err := validation.ResolvePath(p)
		require.NoError(t, err)
		return full
	}
	return ContentPaths{
		Forge:    resolve(forge.ConfigPath),
		Events:   resolve(encounter.ConfigPath),
		Dialogue: resolve(dialogue.ConfigPath),
	}
}

func TestLoadContent(t *testing.T) {
	restoreDefaultLogger(t)

	content, err := LoadContent(shippedContentPaths(t))
	require.NoError(t, err)
	assert.NotEmpty(t, content.Forge.Upgrades())
	assert.Equal(t, 5, content.Events.Len())
	assert.NotEmpty(t, content.Dialogue.NodeIDs())

	cfg := testConfig(t)
	bus := event.NewMemoryBus()
	deps := content.RunDeps(cfg, bus)
	assert.Equal(t, 4, deps.Capacity)
	assert.Same(t, content.Forge, deps.Forge)
	assert.Equal(t, event.Bus(bus), deps.Bus)

	start, rooms := deps.World.GenerateWorld(context.Background())
	require.NotNil(t, start)
	assert.Len(t, rooms, 9)
}

func TestLoadContent_MissingFile(t *testing.T) {
	paths := shippedContentPaths(t)
	paths.Events = filepath.Join(t.TempDir(), "missing.json")

	_, err := LoadContent(paths)
	assert.ErrorContains(t, err, ErrMsgFailedLoadEvents)
}

type recordingFlusher struct {
	calls int
	err   error
}

func (f *recordingFlusher) Flush(context.Context) error {
	f.calls++
	return f.err
}

func TestGracefulShutdown(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)
	_, dlw, err := InitializeEventSystem(cfg)
	require.NoError(t, err)

	flusher := &recordingFlusher{err: errors.New("disk full")}
	GracefulShutdown(context.Background(), ShutdownComponents{
		Profiles:     flusher,
		Repositories: &Repositories{},
		DeadLetters:  dlw,
	})

	assert.Equal(t, 1, flusher.calls)
	assert.Error(t, dlw.Close(), "already closed")
}
