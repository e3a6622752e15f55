package console

import (
	"context"

	"github.com/osse101/Shardlands_Go/internal/combat"
	"github.com/osse101/Shardlands_Go/internal/encounter"
	"github.com/osse101/Shardlands_Go/internal/run"
)

var (
	_ run.CombatDriver = (*combatUI)(nil)
	_ run.EventDriver  = (*eventUI)(nil)
)

// combatUI asks the player for combat actions.
type combatUI struct {
	c       *Console
	started bool
}

func (u *combatUI) ChooseAction(ctx context.Context, engine *combat.Engine) (combat.Action, error) {
	c := u.c
	if !u.started {
		c.say("\nCombat started!")
		u.started = true
	}

	player := engine.Player()
	enemies := engine.Enemies()
	c.say("\nYour turn!")
	c.say("\nYou: %s", formatEntity(player.Entity))
	writeEnemies(c.out, enemies)

	commands := []command{{Name: CmdAttack, Args: numbers(len(enemies))}}
	if len(player.Inventory) > 0 {
		commands = append(commands, command{Name: CmdItem, Args: numbers(len(player.Inventory))})
	}
	commands = append(commands, command{Name: CmdFlee})

	verb, args, err := c.prompt.Command(ctx, commands)
	if err != nil {
		return combat.Action{}, err
	}

	switch verb {
	case CmdAttack:
		target, err := u.target(ctx, args, 0, len(enemies))
		if err != nil {
			return combat.Action{}, err
		}
		return combat.Attack(target), nil
	case CmdItem:
		item, ok := argIndex(args, 0, len(player.Inventory))
		if !ok {
			writeInventory(c.out, player.Inventory)
			if item, err = c.prompt.ChooseIndex(ctx, "Choose item number", len(player.Inventory)); err != nil {
				return combat.Action{}, err
			}
		}
		if player.Inventory[item].Effect.TargetsSelf() {
			return combat.UseItem(item, 0), nil
		}
		target, err := u.target(ctx, args, 1, len(enemies))
		if err != nil {
			return combat.Action{}, err
		}
		return combat.UseItem(item, target), nil
	default:
		return combat.Flee(), nil
	}
}

// target picks an enemy from args[pos], asking only when there is a choice to make.
func (u *combatUI) target(ctx context.Context, args []string, pos, enemies int) (int, error) {
	if enemies == 1 {
		return 0, nil
	}
	if i, ok := argIndex(args, pos, enemies); ok {
		return i, nil
	}
	return u.c.prompt.ChooseIndex(ctx, "Choose target (number)", enemies)
}

func (u *combatUI) ShowReport(_ context.Context, report *combat.Report) {
	for _, line := range report.Lines {
		u.c.say("%s", line)
	}
	if report.State.Terminal() {
		u.started = false
		if len(report.Loot) > 0 {
			u.c.say("\nLoot dropped:")
			for _, item := range report.Loot {
				u.c.say("- %s: %s", item.Name, item.Description)
			}
		}
	}
}

func (u *combatUI) Rejected(_ context.Context, err error) {
	u.c.say("%s", formatFriendlyError(err))
}

// eventUI presents narrative events.
type eventUI struct {
	c *Console
}

func (u *eventUI) ChooseOption(ctx context.Context, ev encounter.Event) (int, error) {
	c := u.c
	c.say("\n=== %s ===", ev.Title)
	c.say("\n%s\n", ev.Description)
	c.say("Choices:")
	for i, choice := range ev.Choices {
		c.say("%d. %s", i+1, choice.Description)
	}

	_, args, err := c.prompt.Command(ctx, []command{{Name: CmdChoose, Args: numbers(len(ev.Choices))}})
	if err != nil {
		return 0, err
	}
	if i, ok := argIndex(args, 0, len(ev.Choices)); ok {
		return i, nil
	}
	return c.prompt.ChooseIndex(ctx, "Choose your action (number)", len(ev.Choices))
}

func (u *eventUI) ShowResolution(_ context.Context, res *encounter.Resolution) {
	c := u.c
	if !res.Success {
		c.say("\n%s", res.Choice.FailureText)
		c.say("\nConsolation: +%d Memory Shards", res.Shards)
		return
	}

	c.say("\n%s", res.Choice.SuccessText)
	c.say("\nRewards:")
	c.say("Base Reward: %d Memory Shards", res.BaseReward)
	if res.RiskBonus > 0 {
		c.say("Risk Bonus: +%d Memory Shards", res.RiskBonus)
	}
	c.say("Difficulty Bonus: +%d Memory Shards", res.DifficultyBonus)
	if res.SpecialText != "" {
		c.say("%s", res.SpecialText)
	}
	c.say("Total: +%d Memory Shards!", res.Shards)
}

func (u *eventUI) Rejected(_ context.Context, err error) {
	u.c.say("%s", formatFriendlyError(err))
}
