// Package run drives a single traversal of a generated world: first-visit
// dispatch to the combat and event engines, run-scoped upgrade hooks and the
// end-of-run shard award.
package run

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/osse101/Shardlands_Go/internal/combat"
	"github.com/osse101/Shardlands_Go/internal/dialogue"
	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/encounter"
	"github.com/osse101/Shardlands_Go/internal/event"
	"github.com/osse101/Shardlands_Go/internal/forge"
	"github.com/osse101/Shardlands_Go/internal/logger"
	"github.com/osse101/Shardlands_Go/internal/lootbox"
	"github.com/osse101/Shardlands_Go/internal/utils"
)

// CombatDriver supplies the player's decisions during an encounter.
type CombatDriver interface {
	// ChooseAction asks for the next player action. An error aborts the run.
	ChooseAction(ctx context.Context, engine *combat.Engine) (combat.Action, error)
	ShowReport(ctx context.Context, report *combat.Report)
	// Rejected is told about an action the engine refused; the driver is asked again.
	Rejected(ctx context.Context, err error)
}

// EventDriver supplies the player's choice for a narrative event.
type EventDriver interface {
	// ChooseOption returns a zero-based index into ev.Choices.
	ChooseOption(ctx context.Context, ev encounter.Event) (int, error)
	ShowResolution(ctx context.Context, res *encounter.Resolution)
	Rejected(ctx context.Context, err error)
}

// WorldBuilder lays out the rooms of a new run and returns the start room.
type WorldBuilder interface {
	GenerateWorld(ctx context.Context) (*domain.Room, []*domain.Room)
}

// Deps are the collaborators a run needs. World and Loot outlive a single run.
type Deps struct {
	World      WorldBuilder
	Loot       *lootbox.Generator
	Encounters *encounter.Engine
	Forge      *forge.Catalog
	Dialogue   *dialogue.Tree // optional; enables the Sage in the start room
	Bus        event.Bus      // optional
	Rng        *rand.Rand
	Capacity   int
}

// Arrival is what happened when the player entered a room.
type Arrival struct {
	Room       *domain.Room
	FirstVisit bool
	Notices    []string
	PickedUp   []domain.Item
	LeftBehind []domain.Item
	Combat     *combat.Summary
	Resolution *encounter.Resolution
}

func (a *Arrival) notice(format string, args ...any) {
	a.Notices = append(a.Notices, fmt.Sprintf(format, args...))
}

// UseResult describes an item used outside combat.
type UseResult struct {
	Item      domain.Item
	Message   string
	Preserved bool
}

// Run is one attempt through a generated world. It is not safe for concurrent use.
type Run struct {
	id       string
	deps     Deps
	upgrades map[string]int

	player  *domain.Player
	start   *domain.Room
	current *domain.Room
	rooms   []*domain.Room
	notices []string

	roomsExplored   int
	enemiesDefeated int
	damageDealt     int
	damageTaken     int

	summary *domain.RunSummary
}

// New starts a run for the given profile: the player begins at full health
// with the profile's permanent stats in the top-left room of a fresh world.
func New(ctx context.Context, deps Deps, profile *domain.Profile) (*Run, error) {
	if profile == nil {
		return nil, fmt.Errorf("%w: profile is required to start a run", domain.ErrInvalidInput)
	}

	r := &Run{
		id:       logger.GenerateRunID(),
		deps:     deps,
		upgrades: make(map[string]int, len(profile.Upgrades)),
	}
	for k, v := range profile.Upgrades {
		r.upgrades[k] = v
	}
	ctx = r.scope(ctx)

	stats := profile.Player.Stats
	stats.Health = stats.MaxHealth
	r.player = domain.NewPlayer(domain.DefaultPlayerName, stats, deps.Capacity)

	r.start, r.rooms = deps.World.GenerateWorld(ctx)
	r.current = r.start

	if deps.Dialogue != nil {
		if _, err := deps.Dialogue.StartNode(dialogue.NPCSage); err == nil {
			r.start.NPC = dialogue.NPCSage
		}
	}

	if forge.Owned(r.upgrades, domain.UpgradeVoidTouched) {
		item := deps.Loot.Legendary()
		if err := r.player.AddItem(item); err == nil {
			r.notices = append(r.notices, fmt.Sprintf("Void Touched: you begin with %s!", item.Name))
			logger.FromContext(ctx).Debug(LogMsgVoidTouched, "item", item.Name)
		}
	}

	logger.FromContext(ctx).Info(LogMsgRunStarted,
		"rooms", len(r.rooms),
		"health", stats.MaxHealth,
		"attack", stats.Attack,
		"defense", stats.Defense)
	r.publish(ctx, event.NewRunStartedEvent(r.id, len(r.rooms), len(r.player.Inventory)))
	return r, nil
}

// ID returns the run's correlation ID.
func (r *Run) ID() string { return r.id }

// Player returns the run's adventurer.
func (r *Run) Player() *domain.Player { return r.player }

// Current returns the room the player is standing in.
func (r *Run) Current() *domain.Room { return r.current }

// Start returns the room the run began in.
func (r *Run) Start() *domain.Room { return r.start }

// Rooms returns every room of the world.
func (r *Run) Rooms() []*domain.Room { return r.rooms }

// Notices returns messages produced by run-start upgrades.
func (r *Run) Notices() []string { return r.notices }

// RoomsExplored counts rooms visited for the first time.
func (r *Run) RoomsExplored() int { return r.roomsExplored }

// EnemiesDefeated counts enemies killed this run.
func (r *Run) EnemiesDefeated() int { return r.enemiesDefeated }

// Over reports whether the run has ended.
func (r *Run) Over() bool { return r.summary != nil }

// Summary returns the end-of-run summary, or nil while the run continues.
func (r *Run) Summary() *domain.RunSummary { return r.summary }

// Enter handles arrival in the current room. Only the first visit triggers
// the room's content; later visits are reported with FirstVisit false.
func (r *Run) Enter(ctx context.Context, combatDriver CombatDriver, eventDriver EventDriver) (*Arrival, error) {
	if r.Over() {
		return nil, domain.ErrRunOver
	}
	ctx = r.scope(ctx)

	room := r.current
	arrival := &Arrival{Room: room, FirstVisit: !room.Visited}
	r.publish(ctx, event.NewRoomEnteredEvent(r.id, room, arrival.FirstVisit))
	if room.Visited {
		return arrival, nil
	}

	room.Visited = true
	r.roomsExplored++
	logger.FromContext(ctx).Debug(LogMsgRoomEntered, "room_id", room.ID, "type", room.Type, "x", room.X, "y", room.Y)

	if forge.Owned(r.upgrades, domain.UpgradeQuickLearner) {
		bonus := r.upgradeAmount(domain.UpgradeQuickLearner)
		r.player.Shards += bonus
		arrival.notice("Quick Learner: +%d Memory Shards", bonus)
	}

	switch room.Type {
	case domain.RoomTreasure:
		arrival.PickedUp, arrival.LeftBehind = r.pickUp(ctx, room.Items)
		room.Items = arrival.LeftBehind
	case domain.RoomCombat, domain.RoomMiniBoss:
		if err := r.fight(ctx, room, combatDriver, arrival); err != nil {
			return arrival, err
		}
	case domain.RoomEvent:
		if err := r.resolveEvent(ctx, room, eventDriver, arrival); err != nil {
			return arrival, err
		}
	}
	return arrival, nil
}

// Move walks through the exit in dir. Call Enter afterwards to handle the new room.
func (r *Run) Move(dir domain.Direction) (*domain.Room, error) {
	if r.Over() {
		return nil, domain.ErrRunOver
	}
	next, ok := r.current.Exits[dir]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoExit, dir)
	}
	r.current = next
	return next, nil
}

// UseItem uses a self-targeting inventory item outside combat. index is zero-based.
func (r *Run) UseItem(ctx context.Context, index int) (*UseResult, error) {
	if r.Over() {
		return nil, domain.ErrRunOver
	}
	ctx = r.scope(ctx)

	if index < 0 || index >= len(r.player.Inventory) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidItemIndex, index+1)
	}
	item := r.player.Inventory[index]
	if !item.Effect.TargetsSelf() {
		return nil, fmt.Errorf("%w: %s can only be used in combat", domain.ErrItemNotUsableHere, item.Name)
	}

	res := &UseResult{Item: item, Preserved: r.preserve()}
	if !res.Preserved {
		if _, err := r.player.RemoveItem(index); err != nil {
			return nil, err
		}
	}
	res.Message = item.Use(&r.player.Entity)

	r.publish(ctx, event.NewItemUsedEvent(r.id, item, false, res.Preserved))
	return res, nil
}

// Retreat ends the run voluntarily, keeping only the shards collected on the way.
func (r *Run) Retreat(ctx context.Context) (domain.RunSummary, error) {
	if r.Over() {
		return domain.RunSummary{}, domain.ErrRunOver
	}
	return r.finish(r.scope(ctx), domain.RunEndRetreat), nil
}

// DeathReward is the exploration award for a run that ended in death, scaled
// by multiplier and floored.
func DeathReward(roomsExplored, enemiesDefeated int, multiplier float64) int {
	base := roomsExplored*ShardsPerRoom +
		max(0, roomsExplored-DepthBonusThreshold)*DepthBonusPerRoom +
		enemiesDefeated*ShardsPerEnemy
	return int(math.Floor(float64(base) * multiplier))
}

func (r *Run) fight(ctx context.Context, room *domain.Room, driver CombatDriver, arrival *Arrival) error {
	enemies := room.LivingEnemies()
	if len(enemies) == 0 {
		return nil
	}

	logger.FromContext(ctx).Info(combat.LogMsgCombatStarted,
		"room_id", room.ID,
		"enemies", len(enemies),
		"mini_boss", room.Type == domain.RoomMiniBoss)

	engine := combat.NewEngine(r.player, enemies, r.deps.Rng, r.deps.Loot, combat.WithItemPreservation(r.preserve))
	for !engine.State().Terminal() {
		action, err := driver.ChooseAction(ctx, engine)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgCombatInput, err)
		}

		report, err := engine.Act(ctx, action)
		if isInputError(err) {
			logger.FromContext(ctx).Debug(LogMsgInputRejected, "error", err)
			driver.Rejected(ctx, err)
			continue
		}
		if err != nil {
			return err
		}

		if report.ItemUsed != nil {
			r.publish(ctx, event.NewItemUsedEvent(r.id, *report.ItemUsed, true, report.ItemPreserved))
		}
		for _, enemy := range report.Defeated {
			r.publish(ctx, event.NewEnemyDefeatedEvent(r.id, enemy))
		}
		driver.ShowReport(ctx, report)
	}

	summary := engine.Summary()
	arrival.Combat = &summary
	r.enemiesDefeated += len(summary.Defeated)
	r.damageDealt += summary.DamageDealt
	r.damageTaken += summary.DamageTaken

	r.publish(ctx, event.NewCombatEndedEvent(r.id, event.CombatEndedPayloadV1{
		Outcome:         string(summary.Outcome),
		Turns:           summary.Turns,
		DamageDealt:     summary.DamageDealt,
		DamageTaken:     summary.DamageTaken,
		EnemiesDefeated: len(summary.Defeated),
		MiniBoss:        room.Type == domain.RoomMiniBoss,
	}))

	if summary.Outcome == combat.StateDefeat {
		r.finish(ctx, domain.RunEndDeath)
		return nil
	}

	if n := len(summary.Defeated); n > 0 && forge.Owned(r.upgrades, domain.UpgradeBattleMastery) {
		bonus := r.upgradeAmount(domain.UpgradeBattleMastery) * n
		r.player.Stats.Attack += bonus
		r.player.Stats.Defense += bonus
		arrival.notice("Battle Mastery: +%d attack and defense", bonus)
		logger.FromContext(ctx).Debug(LogMsgBattleMastery, "bonus", bonus)
	}

	if summary.Outcome == combat.StateVictory {
		arrival.PickedUp, arrival.LeftBehind = r.pickUp(ctx, summary.Loot)
	}
	return nil
}

func (r *Run) resolveEvent(ctx context.Context, room *domain.Room, driver EventDriver, arrival *Arrival) error {
	ev, err := r.deps.Encounters.Catalog().Get(room.EventID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgResolveEvent, err)
	}

	for {
		choice, err := driver.ChooseOption(ctx, ev)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgEventInput, err)
		}

		res, err := r.deps.Encounters.Resolve(ctx, ev.ID, choice, r.player)
		if errors.Is(err, domain.ErrInvalidChoice) {
			logger.FromContext(ctx).Debug(LogMsgInputRejected, "error", err)
			driver.Rejected(ctx, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgResolveEvent, err)
		}

		arrival.Resolution = res
		r.publish(ctx, event.NewEventResolvedEvent(r.id, event.EventResolvedPayloadV1{
			EventID: ev.ID,
			Choice:  choice,
			Success: res.Success,
			Shards:  res.Shards,
			Special: string(res.Special),
		}))
		driver.ShowResolution(ctx, res)
		return nil
	}
}

// pickUp adds items in order until the inventory is full and returns what
// was taken and what had to stay behind.
func (r *Run) pickUp(ctx context.Context, items []domain.Item) (taken, left []domain.Item) {
	for i, item := range items {
		if err := r.player.AddItem(item); err != nil {
			left = append(left, items[i:]...)
			logger.FromContext(ctx).Debug(LogMsgInventoryFull, "left", len(left))
			break
		}
		taken = append(taken, item)
	}
	return taken, left
}

// preserve rolls crystal affinity for one item use.
func (r *Run) preserve() bool {
	chance := r.deps.Forge.PreservationChance(r.upgrades)
	return chance > 0 && utils.Chance(r.deps.Rng, chance)
}

// upgradeAmount is the integer effect of every level owned of key.
func (r *Run) upgradeAmount(key string) int {
	return int(r.deps.Forge.Value(key) * float64(r.upgrades[key]))
}

func (r *Run) finish(ctx context.Context, reason domain.RunEndReason) domain.RunSummary {
	summary := domain.RunSummary{
		Reason:          reason,
		RoomsExplored:   r.roomsExplored,
		EnemiesDefeated: r.enemiesDefeated,
		ShardsCollected: r.player.Shards,
		ShardsAwarded:   r.player.Shards,
		DamageDealt:     r.damageDealt,
		DamageTaken:     r.damageTaken,
	}
	if reason == domain.RunEndDeath {
		summary.ShardsAwarded += DeathReward(r.roomsExplored, r.enemiesDefeated, r.deps.Forge.ShardMultiplier(r.upgrades))
	}
	r.summary = &summary

	logger.FromContext(ctx).Info(LogMsgRunEnded,
		"reason", reason,
		"rooms_explored", summary.RoomsExplored,
		"enemies_defeated", summary.EnemiesDefeated,
		"shards_awarded", summary.ShardsAwarded)
	r.publish(ctx, event.NewRunEndedEvent(r.id, reason, summary.RoomsExplored, summary.EnemiesDefeated, summary.ShardsAwarded))
	return summary
}

func (r *Run) scope(ctx context.Context) context.Context {
	return logger.WithRunID(ctx, r.id)
}

func (r *Run) publish(ctx context.Context, evt event.Event) {
	if r.deps.Bus == nil {
		return
	}
	if err := r.deps.Bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func isInputError(err error) bool {
	return errors.Is(err, domain.ErrInvalidTarget) ||
		errors.Is(err, domain.ErrInvalidItemIndex) ||
		errors.Is(err, domain.ErrUnknownAction)
}
