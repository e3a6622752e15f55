package domain

import "fmt"

// Player starting values for a brand new profile.
const (
	DefaultPlayerName        = "Wanderer"
	DefaultPlayerMaxHealth   = 80
	DefaultPlayerAttack      = 10
	DefaultPlayerDefense     = 5
	DefaultInventoryCapacity = 10
)

// Action names used in enemy attack patterns.
const (
	ActionAttack = "attack"
)

// Entity is a named combatant.
type Entity struct {
	Name  string `json:"name"`
	Stats Stats  `json:"stats"`
	Level int    `json:"level"`
}

// Player is the run-scoped adventurer. Shards counts what was collected during the run.
type Player struct {
	Entity
	Shards    int    `json:"memory_shards"`
	Inventory []Item `json:"inventory"`
	Capacity  int    `json:"capacity"`
}

// NewPlayer builds a player from base stats.
func NewPlayer(name string, stats Stats, capacity int) *Player {
	if capacity <= 0 {
		capacity = DefaultInventoryCapacity
	}
	return &Player{
		Entity:    Entity{Name: name, Stats: stats, Level: 1},
		Inventory: make([]Item, 0, capacity),
		Capacity:  capacity,
	}
}

// CanAddItem reports whether the inventory has room.
func (p *Player) CanAddItem() bool {
	return len(p.Inventory) < p.Capacity
}

// AddItem appends item or fails with ErrInventoryFull.
func (p *Player) AddItem(item Item) error {
	if !p.CanAddItem() {
		return fmt.Errorf("%w: cannot carry %s", ErrInventoryFull, item.Name)
	}
	p.Inventory = append(p.Inventory, item)
	return nil
}

// RemoveItem takes the item at index out of the inventory.
func (p *Player) RemoveItem(index int) (Item, error) {
	if index < 0 || index >= len(p.Inventory) {
		return Item{}, fmt.Errorf("%w: %d", ErrInvalidItemIndex, index+1)
	}
	item := p.Inventory[index]
	p.Inventory = append(p.Inventory[:index], p.Inventory[index+1:]...)
	return item, nil
}

// LootEntry is one independent drop roll.
type LootEntry struct {
	Item   string  `json:"item"`
	Chance float64 `json:"chance"`
}

// Enemy is a generated opponent.
type Enemy struct {
	Entity
	AttackPattern []string    `json:"attack_pattern"`
	LootTable     []LootEntry `json:"loot_table"`
	Experience    int         `json:"experience"`
	IsMiniBoss    bool        `json:"is_mini_boss"`
}

// NextAction returns the action the enemy performs this turn.
// Only the first pattern entry is ever used.
func (e *Enemy) NextAction() string {
	if len(e.AttackPattern) == 0 {
		return ActionAttack
	}
	return e.AttackPattern[0]
}
