package forge

import (
	"fmt"
	"sort"

	"github.com/osse101/Shardlands_Go/internal/domain"
)

// Requirement is one prerequisite and how far along the player is.
type Requirement struct {
	Key     string
	Name    string
	Needed  int
	Current int
}

// Met reports whether the prerequisite is satisfied.
func (r Requirement) Met() bool {
	return r.Current >= r.Needed
}

// Requirements lists the prerequisites of key sorted by key.
func (c *Catalog) Requirements(counts map[string]int, key string) []Requirement {
	u, ok := c.upgrades[key]
	if !ok {
		return nil
	}

	reqs := make([]Requirement, 0, len(u.Requires))
	for k, n := range u.Requires {
		reqs = append(reqs, Requirement{
			Key:     k,
			Name:    c.upgrades[k].Name,
			Needed:  n,
			Current: counts[k],
		})
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].Key < reqs[j].Key })
	return reqs
}

// Unlocked reports whether every prerequisite of key is met.
func (c *Catalog) Unlocked(counts map[string]int, key string) bool {
	for _, r := range c.Requirements(counts, key) {
		if !r.Met() {
			return false
		}
	}
	return true
}

// CanPurchase checks whether key can be bought with shards given the current
// purchase counts. Checks run in order: unknown key, maxed, locked, funds.
func (c *Catalog) CanPurchase(counts map[string]int, key string, shards int) error {
	u, ok := c.upgrades[key]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUpgradeNotFound, key)
	}
	if counts[key] >= u.MaxPurchases {
		return fmt.Errorf("%w: %s (%d/%d)", domain.ErrUpgradeMaxed, u.Name, counts[key], u.MaxPurchases)
	}
	if !c.Unlocked(counts, key) {
		return fmt.Errorf("%w: %s", domain.ErrUpgradeLocked, u.Name)
	}
	if shards < u.Cost {
		return fmt.Errorf("%w: %s costs %d, have %d", domain.ErrInsufficientShards, u.Name, u.Cost, shards)
	}
	return nil
}

// Entry is one upgrade as shown in the forge.
type Entry struct {
	Upgrade    Upgrade
	Purchased  int
	Unlocked   bool
	Affordable bool
	Missing    []Requirement
}

// TierListing groups the upgrades of one tier.
type TierListing struct {
	Tier    int
	Entries []Entry
}

// Listing returns every upgrade that is not maxed out, grouped by ascending
// tier and kept in file order within a tier. An empty result means everything
// is maxed.
func (c *Catalog) Listing(counts map[string]int, shards int) []TierListing {
	byTier := make(map[int][]Entry)
	for _, key := range c.order {
		u := c.upgrades[key]
		if counts[key] >= u.MaxPurchases {
			continue
		}

		entry := Entry{
			Upgrade:    u,
			Purchased:  counts[key],
			Unlocked:   true,
			Affordable: shards >= u.Cost,
		}
		for _, r := range c.Requirements(counts, key) {
			if !r.Met() {
				entry.Unlocked = false
				entry.Missing = append(entry.Missing, r)
			}
		}
		byTier[u.Tier] = append(byTier[u.Tier], entry)
	}

	listing := make([]TierListing, 0, len(byTier))
	for _, tier := range c.Tiers() {
		if entries, ok := byTier[tier]; ok {
			listing = append(listing, TierListing{Tier: tier, Entries: entries})
		}
	}
	return listing
}

// ShardMultiplier is the run-end reward multiplier from shard magnetism.
func (c *Catalog) ShardMultiplier(counts map[string]int) float64 {
	return 1.0 + c.Value(domain.UpgradeShardMagnet)*float64(counts[domain.UpgradeShardMagnet])
}

// PreservationChance is the chance an item survives use, from crystal affinity.
func (c *Catalog) PreservationChance(counts map[string]int) float64 {
	return c.Value(domain.UpgradeCrystalAffinity) * float64(counts[domain.UpgradeCrystalAffinity])
}

// Owned reports whether key has been purchased at least once.
func Owned(counts map[string]int, key string) bool {
	return counts[key] > 0
}
