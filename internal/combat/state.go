package combat

// State is the encounter's position in the turn cycle.
type State string

const (
	StatePlayerTurn State = "player_turn"
	StateEnemyTurn  State = "enemy_turn"
	StateVictory    State = "victory"
	StateDefeat     State = "defeat"
	StateFled       State = "fled"
)

// Terminal reports whether the encounter is over.
func (s State) Terminal() bool {
	switch s {
	case StateVictory, StateDefeat, StateFled:
		return true
	default:
		return false
	}
}

// ActionKind is what the player chose to do on their turn.
type ActionKind string

const (
	ActionAttack  ActionKind = "attack"
	ActionUseItem ActionKind = "item"
	ActionFlee    ActionKind = "flee"
)

// Action is one player decision. Indices are zero-based into the living
// enemies and the inventory.
type Action struct {
	Kind   ActionKind
	Target int
	Item   int
}

// Attack targets the living enemy at index target.
func Attack(target int) Action {
	return Action{Kind: ActionAttack, Target: target}
}

// UseItem uses inventory slot item; target is ignored for self-targeting items.
func UseItem(item, target int) Action {
	return Action{Kind: ActionUseItem, Item: item, Target: target}
}

// Flee tries to leave the encounter.
func Flee() Action {
	return Action{Kind: ActionFlee}
}
