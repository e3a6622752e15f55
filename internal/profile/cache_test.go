package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/mocks"
)

func TestCachedStore_LoadHitsInnerOnce(t *testing.T) {
	inner := mocks.NewMockProfile(t)
	stored := domain.NewProfile("p1")
	stored.Player.MemoryShards = 40
	inner.EXPECT().Load(mock.Anything).Return(stored, nil).Once()

	c := NewCachedStore(inner, "default", 4, time.Minute)
	ctx := context.Background()

	first, err := c.Load(ctx)
	require.NoError(t, err)
	second, err := c.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, 40, first.Player.MemoryShards)
	assert.Equal(t, first, second)
	assert.Equal(t, CacheStats{Hits: 1, Misses: 1, Size: 1}, c.Stats())
}

func TestCachedStore_ReturnsCopies(t *testing.T) {
	inner := mocks.NewMockProfile(t)
	inner.EXPECT().Load(mock.Anything).Return(domain.NewProfile("p1"), nil).Once()

	c := NewCachedStore(inner, "default", 4, time.Minute)
	ctx := context.Background()

	p, err := c.Load(ctx)
	require.NoError(t, err)
	p.Upgrades[domain.UpgradeAttack] = 3
	p.Player.MemoryShards = 999

	again, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Count(domain.UpgradeAttack))
	assert.Zero(t, again.Player.MemoryShards)
}

func TestCachedStore_SaveWritesThrough(t *testing.T) {
	inner := mocks.NewMockProfile(t)
	p := domain.NewProfile("p1")
	p.Player.MemoryShards = 10
	inner.EXPECT().Save(mock.Anything, p).Return(nil).Once()

	c := NewCachedStore(inner, "default", 4, time.Minute)
	require.NoError(t, c.Save(context.Background(), p))

	// served from cache; the mock would panic on an unexpected Load
	got, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, got.Player.MemoryShards)
}

func TestCachedStore_FailedSaveInvalidates(t *testing.T) {
	inner := mocks.NewMockProfile(t)
	old := domain.NewProfile("p1")
	inner.EXPECT().Load(mock.Anything).Return(old, nil).Twice()
	inner.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	c := NewCachedStore(inner, "default", 4, time.Minute)
	ctx := context.Background()

	_, err := c.Load(ctx)
	require.NoError(t, err)

	changed := old.Clone()
	changed.Player.MemoryShards = 500
	require.Error(t, c.Save(ctx, changed))

	got, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, got.Player.MemoryShards)
}

func TestCachedStore_DeleteInvalidates(t *testing.T) {
	inner := mocks.NewMockProfile(t)
	inner.EXPECT().Load(mock.Anything).Return(domain.NewProfile("p1"), nil).Once()
	inner.EXPECT().Delete(mock.Anything).Return(nil).Once()
	inner.EXPECT().Load(mock.Anything).Return(nil, domain.ErrProfileNotFound).Once()

	c := NewCachedStore(inner, "default", 4, time.Minute)
	ctx := context.Background()

	_, err := c.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Delete(ctx))

	_, err = c.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestCachedStore_VersionMismatchIsAMiss(t *testing.T) {
	inner := mocks.NewMockProfile(t)
	inner.EXPECT().Load(mock.Anything).Return(domain.NewProfile("fresh"), nil).Once()

	c := NewCachedStore(inner, "default", 4, time.Minute)
	c.lru.Add("default", &cachedProfileEntry{Version: "0.1", Profile: domain.NewProfile("stale")})

	got, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.ID)
	assert.Equal(t, int64(1), c.Stats().Misses)
}

func TestCachedStore_Expiry(t *testing.T) {
	inner := mocks.NewMockProfile(t)
	inner.EXPECT().Load(mock.Anything).Return(domain.NewProfile("p1"), nil).Twice()

	c := NewCachedStore(inner, "default", 4, 20*time.Millisecond)
	ctx := context.Background()

	_, err := c.Load(ctx)
	require.NoError(t, err)
	time.Sleep(60 * time.Millisecond)
	_, err = c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.Stats().Misses)
}
