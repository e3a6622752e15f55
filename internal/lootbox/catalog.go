package lootbox

import "github.com/osse101/Shardlands_Go/internal/domain"

// template describes a generatable consumable before rarity scaling.
type template struct {
	Kind        string
	Name        string
	Effect      domain.EffectType
	BaseValue   int
	Description string // fmt verb receives the scaled value
}

// templates lists treasure item kinds in draw order.
var templates = []template{
	{KindHealthPotion, "Health Potion", domain.EffectHeal, 20, "restores %d health"},
	{KindDamageCrystal, "Damage Crystal", domain.EffectDamage, 15, "deals up to %d damage"},
	{KindShieldShard, "Shield Shard", domain.EffectDefenseBuff, 5, "grants %d defense"},
	{KindPowerFragment, "Power Fragment", domain.EffectAttackBuff, 3, "grants %d attack"},
}

func templateFor(kind string) (template, bool) {
	for _, t := range templates {
		if t.Kind == kind {
			return t, true
		}
	}
	return template{}, false
}

// legendaryNames renames the top tier of common loot kinds.
var legendaryNames = map[string]struct{ Name, Description string }{
	KindHealthPotion:  {"Phoenix Elixir", "A legendary potion that provides massive healing"},
	KindDamageCrystal: {"Void Shard", "A crystal infused with void energy"},
}

// legendaryItems is the fixed pool for void-touched starts and legendary_item drops.
var legendaryItems = []domain.Item{
	{Name: "Phoenix Elixir", Description: "A legendary potion that fully restores health", Effect: domain.EffectHeal, Value: 999, Rarity: domain.RarityLegendary},
	{Name: "Void Shard", Description: "A crystal infused with pure void energy", Effect: domain.EffectDamage, Value: 50, Rarity: domain.RarityLegendary},
	{Name: "Time Fragment", Description: "A crystallized moment of time", Effect: domain.EffectHeal, Value: 100, Rarity: domain.RarityLegendary},
	{Name: "Memory Crystal", Description: "Contains the memories of a powerful being", Effect: domain.EffectAttackBuff, Value: 20, Rarity: domain.RarityLegendary},
	{Name: "Eternity Shard", Description: "A fragment of endless possibility", Effect: domain.EffectDefenseBuff, Value: 10, Rarity: domain.RarityLegendary},
}

// LegendaryItems returns a copy of the legendary pool.
func LegendaryItems() []domain.Item {
	out := make([]domain.Item, len(legendaryItems))
	copy(out, legendaryItems)
	return out
}
