// Package console is the text front-end: main menu, room loop, combat and
// event prompts, dialogue and the Memory Forge.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/osse101/Shardlands_Go/internal/dialogue"
	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/logger"
	"github.com/osse101/Shardlands_Go/internal/profile"
	"github.com/osse101/Shardlands_Go/internal/run"
	"github.com/osse101/Shardlands_Go/internal/utils"
)

// Log messages
const (
	LogMsgSessionStarted = "Console session started"
	LogMsgSessionEnded   = "Console session ended"
)

// Console drives a whole play session over a reader and writer.
type Console struct {
	prompt  *Prompt
	out     io.Writer
	profile *profile.Service
	deps    run.Deps

	combat *combatUI
	events *eventUI
}

// New creates a console. deps is shared by every run of the session.
func New(in io.Reader, out io.Writer, svc *profile.Service, deps run.Deps) *Console {
	c := &Console{
		prompt:  NewPrompt(in, out),
		out:     out,
		profile: svc,
		deps:    deps,
	}
	c.combat = &combatUI{c: c}
	c.events = &eventUI{c: c}
	return c
}

func (c *Console) say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Run shows the main menu until the player quits or input ends. Quitting is
// not an error.
func (c *Console) Run(ctx context.Context) error {
	defer c.prompt.Close()

	if _, err := c.profile.Load(ctx); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgSessionStarted)

	err := c.menu(ctx)
	logger.FromContext(ctx).Info(LogMsgSessionEnded)
	if errors.Is(err, ErrQuit) || errors.Is(err, io.EOF) {
		c.say(MsgFarewell)
		return nil
	}
	return err
}

func (c *Console) menu(ctx context.Context) error {
	for {
		c.say(MsgTitle)
		c.say(MsgMenuOptions)

		choice, err := c.prompt.Choose(ctx, "\nChoose action", []string{MenuNewRun, MenuForge, MenuQuit, MenuResonance})
		if err != nil {
			return err
		}

		switch choice {
		case MenuNewRun:
			err = c.play(ctx)
		case MenuForge:
			err = c.forge(ctx)
		case MenuResonance:
			err = c.resonate(ctx)
		case MenuQuit:
			return ErrQuit
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) resonate(ctx context.Context) error {
	if err := c.profile.Resonate(ctx); err != nil {
		return err
	}
	c.say(MsgResonanceTitle)
	c.say(MsgResonanceBody)
	return c.prompt.Pause(ctx, MsgResonanceReturn)
}

// play runs one traversal from start to death or retreat and banks the result.
func (c *Console) play(ctx context.Context) error {
	snapshot, err := c.profile.Load(ctx)
	if err != nil {
		return err
	}
	r, err := run.New(ctx, c.deps, snapshot)
	if err != nil {
		return err
	}
	ctx = logger.WithRunID(ctx, r.ID())

	for _, n := range r.Notices() {
		c.say("\n%s", n)
	}
	c.say(MsgEnterWorld)

	for !r.Over() {
		c.showRoom(r)
		arrival, err := r.Enter(ctx, c.combat, c.events)
		if err != nil {
			return err
		}
		c.showArrival(arrival)
		if r.Over() {
			break
		}
		if err := c.roomLoop(ctx, r); err != nil {
			return err
		}
	}

	summary := r.Summary()
	if summary.Reason == domain.RunEndDeath {
		c.say(MsgDefeated)
	}
	writeSummary(c.out, summary, r.Player())
	if err := c.profile.BankRun(ctx, *summary); err != nil {
		return err
	}
	return c.prompt.Pause(ctx, MsgPressMenu)
}

func (c *Console) showRoom(r *run.Run) {
	room := r.Current()
	c.say("\n=== %s ROOM ===", strings.ToUpper(strings.ReplaceAll(string(room.Type), "_", " ")))
	c.say("\n%s", room.Description)
	c.say("\nYou: %s", formatEntity(r.Player().Entity))
	if exits := exitNames(room); len(exits) > 0 {
		c.say("\nAvailable exits: %s", strings.Join(exits, ", "))
	} else {
		c.say("\n%s", MsgNoExits)
	}
	if room.NPC != "" {
		c.say("A robed figure waits here. (talk)")
	}
}

func (c *Console) showArrival(a *run.Arrival) {
	for _, n := range a.Notices {
		c.say("%s", n)
	}
	if len(a.PickedUp) > 0 {
		if a.Room.Type == domain.RoomTreasure {
			c.say("\nYou found items!")
		} else {
			c.say("\nCollecting loot...")
		}
		for _, item := range a.PickedUp {
			c.say("Added %s to inventory!", item.Name)
		}
	}
	if len(a.LeftBehind) > 0 {
		c.say(MsgInventoryFull)
	}
}

// roomLoop handles commands in the current room until the player moves or
// the run ends.
func (c *Console) roomLoop(ctx context.Context, r *run.Run) error {
	for {
		room := r.Current()
		exits := exitNames(room)
		commands := []command{
			{Name: CmdMove, Args: exits},
			{Name: CmdInventory},
			{Name: CmdStatus},
		}
		if room.NPC != "" {
			commands = append(commands, command{Name: CmdTalk})
		}
		commands = append(commands, command{Name: CmdRetreat}, command{Name: CmdHelp})

		verb, args, err := c.prompt.Command(ctx, commands)
		if err != nil {
			return err
		}

		switch verb {
		case CmdMove:
			moved, err := c.move(ctx, r, exits, args)
			if err != nil || moved {
				return err
			}
		case CmdInventory:
			if err := c.inventory(ctx, r); err != nil {
				return err
			}
		case CmdStatus:
			c.status(r)
		case CmdTalk:
			if err := c.talk(ctx, room.NPC); err != nil {
				return err
			}
		case CmdRetreat:
			c.say(MsgRetreat)
			_, err := r.Retreat(ctx)
			return err
		case CmdHelp:
			c.say(HelpText)
		}
	}
}

func (c *Console) move(ctx context.Context, r *run.Run, exits, args []string) (bool, error) {
	if len(exits) == 0 {
		c.say(MsgNoExits)
		return false, nil
	}

	var dir domain.Direction
	if len(args) > 0 {
		if d, err := domain.ParseDirection(args[0]); err == nil {
			dir = d
		}
	}
	if _, ok := r.Current().Exits[dir]; !ok {
		choice, err := c.prompt.Choose(ctx, "Choose direction", exits)
		if err != nil {
			return false, err
		}
		dir = domain.Direction(choice)
	}

	if _, err := r.Move(dir); err != nil {
		c.say("%s", formatFriendlyError(err))
		return false, nil
	}
	return true, nil
}

func (c *Console) inventory(ctx context.Context, r *run.Run) error {
	items := r.Player().Inventory
	if len(items) == 0 {
		c.say(MsgInventoryEmpty)
		return nil
	}
	writeInventory(c.out, items)

	verb, args, err := c.prompt.Command(ctx, []command{
		{Name: CmdUse, Args: numbers(len(items))},
		{Name: CmdBack},
	})
	if err != nil || verb == CmdBack {
		return err
	}

	index, ok := argIndex(args, 0, len(items))
	if !ok {
		if index, err = c.prompt.ChooseIndex(ctx, "Choose item number", len(items)); err != nil {
			return err
		}
	}

	res, err := r.UseItem(ctx, index)
	if err != nil {
		c.say("%s", formatFriendlyError(err))
		return nil
	}
	c.say("%s", res.Message)
	if res.Preserved {
		c.say(MsgItemPreserved)
	}
	return nil
}

func (c *Console) status(r *run.Run) {
	p := r.Player()
	c.say("\nHealth: %d/%d", p.Stats.Health, p.Stats.MaxHealth)
	c.say("Attack: %d", p.Stats.Attack)
	c.say("Defense: %d", p.Stats.Defense)
	c.say("Memory Shards (this run): %d", p.Shards)
	if snap := c.profile.Snapshot(); snap != nil {
		c.say("Memory Shards (banked): %d", snap.Player.MemoryShards)
		c.say("Difficulty Tier: %d", snap.DifficultyTier())
	}
	c.say("Rooms explored: %d", r.RoomsExplored())
}

func (c *Console) talk(ctx context.Context, npc string) error {
	if npc == "" || c.deps.Dialogue == nil {
		c.say(MsgNobodyHere)
		return nil
	}

	conv := dialogue.NewConversation(c.deps.Dialogue)
	node, err := conv.StartWith(npc)
	if err != nil {
		c.say(MsgNobodyHere)
		return nil
	}

	name := utils.DisplayName(npc)
	for node != nil {
		c.say("\n%s: %s", name, node.NPCText)
		for i, opt := range node.PlayerOptions {
			c.say("%d. %s", i+1, opt.Text)
		}
		index, err := c.prompt.ChooseIndex(ctx, "Respond", len(node.PlayerOptions))
		if err != nil {
			return err
		}
		if node, err = conv.Choose(ctx, index); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) forge(ctx context.Context) error {
	for {
		snap := c.profile.Snapshot()
		if snap == nil {
			return domain.ErrProfileNotFound
		}
		listing := c.profile.Catalog().Listing(snap.Upgrades, snap.Player.MemoryShards)
		if len(listing) == 0 {
			c.say(MsgAllUpgradesMaxed)
			return nil
		}

		available := writeForge(c.out, listing, snap.Player.MemoryShards)
		choice, err := c.prompt.Choose(ctx, "\nChoose upgrade to purchase (number or 'back')",
			append([]string{CmdBack}, numbers(len(available))...))
		if err != nil {
			return err
		}
		if choice == CmdBack {
			return nil
		}

		index, _ := argIndex([]string{choice}, 0, len(available))
		purchase, err := c.profile.Purchase(ctx, available[index])
		switch {
		case err == nil:
			c.say("\nPurchased %s!", purchase.Upgrade.Name)
		case errors.Is(err, domain.ErrInsufficientShards),
			errors.Is(err, domain.ErrUpgradeLocked),
			errors.Is(err, domain.ErrUpgradeMaxed):
			c.say("%s", formatFriendlyError(err))
		default:
			return err
		}
	}
}
