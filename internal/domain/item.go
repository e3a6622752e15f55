package domain

import "fmt"

// EffectType selects the rule an item applies when used.
type EffectType string

const (
	EffectHeal        EffectType = "heal"
	EffectDamage      EffectType = "damage"
	EffectAttackBuff  EffectType = "attack"
	EffectDefenseBuff EffectType = "defense"
)

// TargetsSelf reports whether the effect is meant for the user rather than an enemy.
func (e EffectType) TargetsSelf() bool {
	switch e {
	case EffectHeal, EffectAttackBuff, EffectDefenseBuff:
		return true
	case EffectDamage:
		return false
	default:
		return true
	}
}

// Rarity is the quality tier of an item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Multiplier scales an item's base value by rarity.
func (r Rarity) Multiplier() float64 {
	switch r {
	case RarityUncommon:
		return 1.5
	case RarityRare:
		return 2.0
	case RarityLegendary:
		return 3.0
	default:
		return 1.0
	}
}

// Item is an immutable consumable.
type Item struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Effect      EffectType `json:"effect"`
	Value       int        `json:"value"`
	Rarity      Rarity     `json:"rarity"`
	Durability  *int       `json:"durability,omitempty"`
}

// Use applies the item's effect to target and describes what happened.
func (i Item) Use(target *Entity) string {
	switch i.Effect {
	case EffectHeal:
		healed := target.Stats.Heal(i.Value)
		return fmt.Sprintf("%s restores %d health to %s.", i.Name, healed, target.Name)
	case EffectDamage:
		dealt := target.Stats.TakeDamage(i.Value)
		return fmt.Sprintf("%s deals %d damage to %s.", i.Name, dealt, target.Name)
	case EffectAttackBuff:
		target.Stats.Attack += i.Value
		return fmt.Sprintf("%s increases %s's attack by %d.", i.Name, target.Name, i.Value)
	case EffectDefenseBuff:
		target.Stats.Defense += i.Value
		return fmt.Sprintf("%s increases %s's defense by %d.", i.Name, target.Name, i.Value)
	default:
		return fmt.Sprintf("%s has no effect.", i.Name)
	}
}
