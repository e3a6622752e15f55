// Package profile owns the cross-run save: Memory Shards, forge purchases,
// permanent stats and lifetime statistics.
package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/event"
	"github.com/osse101/Shardlands_Go/internal/forge"
	"github.com/osse101/Shardlands_Go/internal/logger"
	"github.com/osse101/Shardlands_Go/internal/repository"
)

// Purchase describes a completed forge purchase.
type Purchase struct {
	Upgrade    forge.Upgrade
	Count      int
	ShardsLeft int
}

// Service is the single writer of the profile. Reads from other goroutines
// go through Snapshot.
type Service struct {
	store   repository.Profile
	catalog *forge.Catalog
	bus     event.Bus
	newID   func() string

	mu      sync.RWMutex
	profile *domain.Profile
	dirty   bool
}

// NewService creates a service over store. bus may be nil.
func NewService(store repository.Profile, catalog *forge.Catalog, bus event.Bus) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		bus:     bus,
		newID:   uuid.NewString,
	}
}

// Catalog returns the forge catalog the service prices purchases with.
func (s *Service) Catalog() *forge.Catalog {
	return s.catalog
}

// Load reads the save, starting and persisting a fresh profile when none exists.
func (s *Service) Load(ctx context.Context) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return s.profile.Clone(), nil
}

// Snapshot returns a copy of the current profile, or nil before Load.
func (s *Service) Snapshot() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return nil
	}
	return s.profile.Clone()
}

// Purchase buys one level of key, applies its immediate stat effect and saves.
func (s *Service) Purchase(ctx context.Context, key string) (*Purchase, error) {
	s.mu.Lock()
	if err := s.loadLocked(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	p := s.profile
	if err := s.catalog.CanPurchase(p.Upgrades, key, p.Player.MemoryShards); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	upgrade, _ := s.catalog.Get(key)
	before := p.Clone()

	p.Player.MemoryShards -= upgrade.Cost
	p.Upgrades[key]++
	applyUpgrade(&p.Player.Stats, upgrade)

	if err := s.saveLocked(ctx); err != nil {
		s.profile = before
		s.mu.Unlock()
		return nil, err
	}
	result := &Purchase{Upgrade: upgrade, Count: p.Upgrades[key], ShardsLeft: p.Player.MemoryShards}
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgUpgradePurchased,
		"upgrade", key,
		"count", result.Count,
		"cost", upgrade.Cost,
		"shards_left", result.ShardsLeft)
	s.publish(ctx, event.NewUpgradePurchasedEvent(key, result.Count, upgrade.Cost, result.ShardsLeft))
	return result, nil
}

// applyUpgrade applies the immediate effect of one purchase. Upgrades not
// listed here take effect during runs.
func applyUpgrade(stats *domain.Stats, upgrade forge.Upgrade) {
	switch upgrade.Key {
	case domain.UpgradeMaxHealth:
		stats.MaxHealth += upgrade.IntValue()
		stats.Health = stats.MaxHealth
	case domain.UpgradeAttack:
		stats.Attack += upgrade.IntValue()
	case domain.UpgradeDefense:
		stats.Defense += upgrade.IntValue()
	}
}

// BankRun adds a finished run's award to the balance and saves.
func (s *Service) BankRun(ctx context.Context, summary domain.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return err
	}
	s.profile.Player.MemoryShards += summary.ShardsAwarded
	if err := s.saveLocked(ctx); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgRunBanked,
		"reason", summary.Reason,
		"awarded", summary.ShardsAwarded,
		"balance", s.profile.Player.MemoryShards)
	return nil
}

// Resonate grants the hidden menu bonus.
func (s *Service) Resonate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return err
	}
	stats := &s.profile.Player.Stats
	stats.GrowMaxHealth(ResonanceHealth)
	stats.Attack += ResonanceAttack
	stats.Defense += ResonanceDefense
	s.profile.Player.MemoryShards += ResonanceShards

	logger.FromContext(ctx).Info(LogMsgResonance, "balance", s.profile.Player.MemoryShards)
	return s.saveLocked(ctx)
}

// RecordStats folds an update into the lifetime statistics. The change is
// persisted by the next save or Flush.
func (s *Service) RecordStats(fn func(*domain.LifetimeStats)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return
	}
	fn(&s.profile.Statistics)
	s.dirty = true
}

// Flush saves pending statistics changes.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil || !s.dirty {
		return nil
	}
	return s.saveLocked(ctx)
}

// Reset deletes the save and starts over with a fresh profile.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("failed to reset profile: %w", err)
	}
	s.profile = domain.NewProfile(s.newID())
	logger.FromContext(ctx).Info(LogMsgProfileReset, "profile_id", s.profile.ID)
	return s.saveLocked(ctx)
}

func (s *Service) loadLocked(ctx context.Context) error {
	if s.profile != nil {
		return nil
	}

	p, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		s.profile = domain.NewProfile(s.newID())
		logger.FromContext(ctx).Info(LogMsgNewProfile, "profile_id", s.profile.ID)
		return s.saveLocked(ctx)
	case err != nil:
		return fmt.Errorf("%s: %w", ErrMsgLoadProfile, err)
	}

	if p.ID == "" {
		p.ID = s.newID()
	}
	s.profile = p
	logger.FromContext(ctx).Debug(LogMsgProfileLoaded,
		"profile_id", p.ID,
		"shards", p.Player.MemoryShards,
		"upgrades", p.TotalPurchases())
	return nil
}

func (s *Service) saveLocked(ctx context.Context) error {
	doc := s.profile.Clone()
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveProfile, err)
	}
	s.profile.UpdatedAt = doc.UpdatedAt
	s.dirty = false
	return nil
}

// publish must be called without holding mu; subscribers call back into RecordStats.
func (s *Service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
