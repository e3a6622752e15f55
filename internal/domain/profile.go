package domain

import "time"

// Upgrade keys with hard-wired effects.
const (
	UpgradeMaxHealth       = "max_health"
	UpgradeAttack          = "attack"
	UpgradeDefense         = "defense"
	UpgradeShardMagnet     = "shard_magnet"
	UpgradeQuickLearner    = "quick_learner"
	UpgradeBattleMastery   = "battle_mastery"
	UpgradeCrystalAffinity = "crystal_affinity"
	UpgradeVoidTouched     = "void_touched"
)

// ProfilePlayer is the persisted part of the player.
type ProfilePlayer struct {
	Stats        Stats `json:"stats"`
	MemoryShards int   `json:"memory_shards"`
}

// LifetimeStats accumulates across all runs.
type LifetimeStats struct {
	Runs              int `json:"runs"`
	Deaths            int `json:"deaths"`
	Retreats          int `json:"retreats"`
	RoomsExplored     int `json:"rooms_explored"`
	EnemiesDefeated   int `json:"enemies_defeated"`
	MiniBossesSlain   int `json:"mini_bosses_slain"`
	ItemsUsed         int `json:"items_used"`
	EventsResolved    int `json:"events_resolved"`
	ShardsCollected   int `json:"shards_collected"`
	UpgradesPurchased int `json:"upgrades_purchased"`
	DamageDealt       int `json:"damage_dealt"`
	DamageTaken       int `json:"damage_taken"`
}

// Profile is the cross-run save document.
type Profile struct {
	ID         string         `json:"id"`
	Player     ProfilePlayer  `json:"player"`
	Upgrades   map[string]int `json:"upgrades"`
	Statistics LifetimeStats  `json:"statistics"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// NewProfile returns a fresh save with starting stats.
func NewProfile(id string) *Profile {
	return &Profile{
		ID: id,
		Player: ProfilePlayer{
			Stats: NewStats(DefaultPlayerMaxHealth, DefaultPlayerAttack, DefaultPlayerDefense),
		},
		Upgrades: make(map[string]int),
	}
}

// Clone returns a deep copy safe to hand out to readers.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Upgrades = make(map[string]int, len(p.Upgrades))
	for k, v := range p.Upgrades {
		c.Upgrades[k] = v
	}
	return &c
}

// Count returns how many times key was purchased.
func (p *Profile) Count(key string) int {
	return p.Upgrades[key]
}

// TotalPurchases sums all upgrade counts.
func (p *Profile) TotalPurchases() int {
	total := 0
	for _, n := range p.Upgrades {
		total += n
	}
	return total
}

// DifficultyTier grows by one for every three upgrades bought.
func (p *Profile) DifficultyTier() int {
	tier := p.TotalPurchases() / 3
	if tier < 1 {
		return 1
	}
	return tier
}
