package combat

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/logger"
	"github.com/osse101/Shardlands_Go/internal/lootbox"
	"github.com/osse101/Shardlands_Go/internal/utils"
)

// Report describes one resolution step.
type Report struct {
	State         State
	Lines         []string
	DamageDealt   int
	DamageTaken   int
	Defeated      []*domain.Enemy
	ItemUsed      *domain.Item
	ItemPreserved bool
	Loot          []domain.Item
}

func (r *Report) say(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// Summary totals a whole encounter.
type Summary struct {
	Outcome     State
	Turns       int
	DamageDealt int
	DamageTaken int
	Defeated    []*domain.Enemy
	ItemsUsed   []domain.Item
	Loot        []domain.Item
}

// Option configures an Engine.
type Option func(*Engine)

// WithItemPreservation installs a check run after each item use; when it
// returns true the item stays in the inventory.
func WithItemPreservation(preserve func() bool) Option {
	return func(e *Engine) {
		e.preserve = preserve
	}
}

// Engine resolves one encounter between the player and a group of enemies.
// It is pure logic and is not safe for concurrent use.
type Engine struct {
	player   *domain.Player
	enemies  []*domain.Enemy
	rng      *rand.Rand
	loot     *lootbox.Generator
	preserve func() bool

	state   State
	summary Summary
}

// NewEngine starts an encounter on the player's turn. Enemies already at zero
// health are ignored.
func NewEngine(player *domain.Player, enemies []*domain.Enemy, rng *rand.Rand, loot *lootbox.Generator, opts ...Option) *Engine {
	living := make([]*domain.Enemy, 0, len(enemies))
	for _, en := range enemies {
		if en.Stats.IsAlive() {
			living = append(living, en)
		}
	}

	e := &Engine{
		player:  player,
		enemies: living,
		rng:     rng,
		loot:    loot,
		state:   StatePlayerTurn,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Enemies returns the enemies still standing, in target order.
func (e *Engine) Enemies() []*domain.Enemy {
	return e.enemies
}

// Player returns the player in this encounter.
func (e *Engine) Player() *domain.Player {
	return e.player
}

// Summary returns the running totals for the encounter.
func (e *Engine) Summary() Summary {
	s := e.summary
	s.Outcome = e.state
	return s
}

// Act resolves the player's action and, unless the encounter ends, the enemy
// turn that follows. Invalid indices are rejected without consuming the turn.
func (e *Engine) Act(ctx context.Context, action Action) (*Report, error) {
	if e.state.Terminal() {
		return nil, domain.ErrCombatOver
	}
	if e.state != StatePlayerTurn {
		return nil, domain.ErrNotPlayerTurn
	}

	report := &Report{}

	switch action.Kind {
	case ActionAttack:
		if err := e.playerAttack(action.Target, report); err != nil {
			return nil, err
		}
	case ActionUseItem:
		if err := e.playerUseItem(ctx, action.Item, action.Target, report); err != nil {
			return nil, err
		}
	case ActionFlee:
		if utils.RollRange(e.rng, 1, FleeRollMax) <= FleeThreshold {
			report.say("You successfully fled from combat!")
			e.finish(ctx, StateFled, report)
			return report, nil
		}
		report.say("Failed to flee!")
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, action.Kind)
	}

	e.summary.Turns++

	if len(e.enemies) == 0 {
		report.say("Victory!")
		report.Loot = e.rollLoot(ctx)
		e.summary.Loot = report.Loot
		e.finish(ctx, StateVictory, report)
		return report, nil
	}

	e.state = StateEnemyTurn
	e.enemyTurn(report)

	if !e.player.Stats.IsAlive() {
		report.say("You have been defeated!")
		e.finish(ctx, StateDefeat, report)
		return report, nil
	}

	e.state = StatePlayerTurn
	report.State = e.state
	return report, nil
}

func (e *Engine) playerAttack(target int, report *Report) error {
	enemy, err := e.target(target)
	if err != nil {
		return err
	}

	atk := e.player.Stats.Attack
	dealt := enemy.Stats.TakeDamage(utils.RollRange(e.rng, atk-PlayerAttackSpread, atk+PlayerAttackSpread))
	report.DamageDealt += dealt
	e.summary.DamageDealt += dealt
	report.say("You attack %s for %d damage!", enemy.Name, dealt)

	e.reap(enemy, report)
	return nil
}

func (e *Engine) playerUseItem(ctx context.Context, index, target int, report *Report) error {
	if index < 0 || index >= len(e.player.Inventory) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidItemIndex, index+1)
	}
	item := e.player.Inventory[index]

	var enemy *domain.Enemy
	if !item.Effect.TargetsSelf() {
		var err error
		if enemy, err = e.target(target); err != nil {
			return err
		}
	}

	preserved := e.preserve != nil && e.preserve()
	if !preserved {
		if _, err := e.player.RemoveItem(index); err != nil {
			return err
		}
	}

	if enemy == nil {
		report.say("%s", item.Use(&e.player.Entity))
	} else {
		dealt := max(0, item.Value-enemy.Stats.Defense)
		report.say("%s", item.Use(&enemy.Entity))
		report.DamageDealt += dealt
		e.summary.DamageDealt += dealt
		e.reap(enemy, report)
	}

	report.ItemUsed = &item
	report.ItemPreserved = preserved
	e.summary.ItemsUsed = append(e.summary.ItemsUsed, item)
	if preserved {
		report.say("The %s resonates and remains intact!", item.Name)
		logger.FromContext(ctx).Debug(LogMsgItemPreserved, "item", item.Name)
	}
	return nil
}

// enemyTurn lets every surviving enemy act once. Each enemy uses the first
// entry of its pattern and all actions resolve as a basic attack.
func (e *Engine) enemyTurn(report *Report) {
	for _, enemy := range e.enemies {
		if !e.player.Stats.IsAlive() {
			return
		}
		action := enemy.NextAction()
		atk := enemy.Stats.Attack
		taken := e.player.Stats.TakeDamage(utils.RollRange(e.rng, atk-EnemyAttackSpread, atk+EnemyAttackSpread))
		report.DamageTaken += taken
		e.summary.DamageTaken += taken

		if action == domain.ActionAttack {
			report.say("%s attacks you for %d damage!", enemy.Name, taken)
		} else {
			report.say("%s uses %s for %d damage!", enemy.Name, utils.DisplayName(action), taken)
		}
	}
}

func (e *Engine) target(index int) (*domain.Enemy, error) {
	if index < 0 || index >= len(e.enemies) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidTarget, index+1)
	}
	return e.enemies[index], nil
}

// reap moves a dead enemy from the living list to the defeated list.
func (e *Engine) reap(enemy *domain.Enemy, report *Report) {
	if enemy.Stats.IsAlive() {
		return
	}
	for i, en := range e.enemies {
		if en == enemy {
			e.enemies = append(e.enemies[:i], e.enemies[i+1:]...)
			break
		}
	}
	report.Defeated = append(report.Defeated, enemy)
	e.summary.Defeated = append(e.summary.Defeated, enemy)
	report.say("%s was defeated!", enemy.Name)
}

func (e *Engine) rollLoot(ctx context.Context) []domain.Item {
	var loot []domain.Item
	for _, enemy := range e.summary.Defeated {
		loot = append(loot, e.loot.EnemyDrops(ctx, enemy)...)
	}
	return loot
}

func (e *Engine) finish(ctx context.Context, state State, report *Report) {
	e.state = state
	report.State = state
	logger.FromContext(ctx).Info(LogMsgCombatResolved,
		"outcome", state,
		"turns", e.summary.Turns,
		"damage_dealt", e.summary.DamageDealt,
		"damage_taken", e.summary.DamageTaken,
		"defeated", len(e.summary.Defeated),
		"loot", len(e.summary.Loot))
}
