package savefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Shardlands_Go/internal/domain"
)

func TestStore_LoadMissingIsNotFound(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "saves", "save.json"))
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "saves", "save.json")
	s := NewStore(path)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	p := domain.NewProfile("p1")
	p.Player.MemoryShards = 420
	p.Player.Stats.Attack = 15
	p.Upgrades[domain.UpgradeAttack] = 1
	p.Statistics.Deaths = 3

	require.NoError(t, s.Save(ctx, p))
	assert.FileExists(t, path)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, fixed, got.UpdatedAt)
}

func TestStore_DocumentShape(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, NewStore(path).Save(ctx, domain.NewProfile("p1")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, key := range []string{`"player"`, `"stats"`, `"max_health": 80`, `"memory_shards": 0`, `"upgrades"`} {
		assert.Contains(t, string(raw), key)
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"player": `), 0644))

	_, err := NewStore(path).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestStore_LoadFillsUpgrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id": "old", "player": {"stats": {"health": 1, "max_health": 80}, "memory_shards": 5}}`), 0644))

	p, err := NewStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, p.Upgrades)
	assert.Equal(t, 5, p.Player.MemoryShards)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "save.json")
	s := NewStore(path)

	require.NoError(t, s.Delete(ctx), "deleting a missing save is fine")
	require.NoError(t, s.Save(ctx, domain.NewProfile("p1")))
	require.NoError(t, s.Delete(ctx))
	assert.NoFileExists(t, path)
}

func TestNewStore_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewStore("").Path())
}
