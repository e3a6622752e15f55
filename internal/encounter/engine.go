package encounter

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/logger"
	"github.com/osse101/Shardlands_Go/internal/utils"
)

// Resolution is the outcome of one event choice.
type Resolution struct {
	Event   Event
	Choice  Choice
	Success bool
	Text    string

	BaseReward      int
	RiskBonus       int
	DifficultyBonus int
	Shards          int // total shards granted, including special rewards

	Special     SpecialReward
	SpecialText string

	// Survived is always true; events cannot end a run.
	Survived bool
}

// Engine resolves event choices against a catalog. It holds no per-event state.
type Engine struct {
	catalog *Catalog
	rng     *rand.Rand
}

// NewEngine creates an event engine.
func NewEngine(catalog *Catalog, rng *rand.Rand) *Engine {
	return &Engine{catalog: catalog, rng: rng}
}

// Catalog returns the engine's event table.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Resolve applies the zero-based choice of event eventID to the player.
func (e *Engine) Resolve(ctx context.Context, eventID string, choice int, player *domain.Player) (*Resolution, error) {
	ev, err := e.catalog.Get(eventID)
	if err != nil {
		return nil, err
	}
	if choice < 0 || choice >= len(ev.Choices) {
		return nil, fmt.Errorf("%w: %d (event %s has %d choices)", domain.ErrInvalidChoice, choice+1, eventID, len(ev.Choices))
	}
	chosen := ev.Choices[choice]

	res := &Resolution{
		Event:    ev,
		Choice:   chosen,
		Success:  utils.Chance(e.rng, chosen.SuccessChance),
		Survived: true,
	}

	if res.Success {
		res.Text = chosen.SuccessText
		res.BaseReward = chosen.ShardReward
		res.RiskBonus = RiskBonus(chosen.SuccessChance)
		res.DifficultyBonus = ev.Difficulty * DifficultyBonusScale
		res.Shards = res.BaseReward + res.RiskBonus + res.DifficultyBonus
		player.Shards += res.Shards

		if chosen.SpecialReward != RewardNone {
			res.Special = chosen.SpecialReward
			bonus, text := e.applySpecial(chosen.SpecialReward, player)
			res.Shards += bonus
			res.SpecialText = text
		}
	} else {
		res.Text = chosen.FailureText
		res.Shards = ConsolationShards
		player.Shards += ConsolationShards
	}

	logger.FromContext(ctx).Info(LogMsgEventResolved,
		"event", ev.ID,
		"choice", choice+1,
		"success", res.Success,
		"shards", res.Shards,
		"special", res.Special)

	return res, nil
}

// RiskBonus rewards unlikely choices: floor((1-p)*20).
func RiskBonus(successChance float64) int {
	return int((1.0 - successChance) * RiskBonusScale)
}

// applySpecial grants a special reward and returns any bonus shards it added.
func (e *Engine) applySpecial(reward SpecialReward, player *domain.Player) (int, string) {
	switch reward {
	case RewardHealthBoost:
		amount := HealthBoostBase + utils.RollRange(e.rng, HealthBoostMin, HealthBoostMax)
		player.Stats.Heal(amount)
		return 0, fmt.Sprintf("You are healed for %d HP!", amount)
	case RewardKnowledge:
		bonus := utils.RollRange(e.rng, KnowledgeMin, KnowledgeMax)
		player.Shards += bonus
		return bonus, fmt.Sprintf("You gain %d additional Memory Shards from the knowledge!", bonus)
	case RewardTreasure:
		bonus := utils.RollRange(e.rng, TreasureMin, TreasureMax)
		player.Shards += bonus
		return bonus, fmt.Sprintf("The treasure contained %d Memory Shards!", bonus)
	case RewardPower:
		boost := utils.RollRange(e.rng, PowerMin, PowerMax)
		player.Stats.Attack += boost
		return 0, fmt.Sprintf("Your attack power increases by %d!", boost)
	case RewardShards:
		bonus := utils.RollRange(e.rng, ShardsMin, ShardsMax)
		player.Shards += bonus
		return bonus, fmt.Sprintf("You gather %d Memory Shards from the crystal!", bonus)
	case RewardTime:
		amount := player.Stats.MaxHealth / 2
		player.Stats.Heal(amount)
		return 0, fmt.Sprintf("Time reverses around your wounds, healing you for %d HP!", amount)
	default:
		return 0, "No special effect."
	}
}
