package console

import (
	"errors"

	"github.com/osse101/Shardlands_Go/internal/domain"
)

// Commands
const (
	CmdQuit      = "quit"
	CmdMove      = "move"
	CmdInventory = "inventory"
	CmdStatus    = "status"
	CmdTalk      = "talk"
	CmdRetreat   = "retreat"
	CmdHelp      = "help"
	CmdUse       = "use"
	CmdBack      = "back"
	CmdAttack    = "attack"
	CmdItem      = "item"
	CmdFlee      = "flee"
	CmdChoose    = "choose"
)

// Main menu choices. MenuResonance is accepted but never listed.
const (
	MenuNewRun    = "1"
	MenuForge     = "2"
	MenuQuit      = "3"
	MenuResonance = "137"
)

// Friendly message constants for console output
const (
	MsgTitle          = "\n=== ECHOES OF THE SHARDLANDS ==="
	MsgMenuOptions    = "\n1. New Run\n2. Memory Forge\n3. Quit"
	MsgFarewell       = "\nThanks for playing!"
	MsgEnterWorld     = "\nYou enter the Shardlands..."
	MsgPressEnter     = "\nPress Enter to continue..."
	MsgPressMenu      = "\nPress Enter to return to main menu..."
	MsgInvalidInput   = "Invalid input. Please choose from: %s"
	MsgInvalidCommand = "Invalid command. Please choose from: %s"

	MsgNoExits          = "No exits available!"
	MsgInventoryEmpty   = "\nInventory is empty!"
	MsgInventoryFull    = "Inventory full! Cannot pick up more items."
	MsgDamageItemOnly   = "Can only use damage items in combat!"
	MsgItemPreserved    = "Crystal Affinity preserved the item!"
	MsgNobodyHere       = "There is no one here to talk to."
	MsgRetreat          = "\nYou step back through the shimmering veil, clutching what you found."
	MsgDefeated         = "\nYou have been defeated!"
	MsgRunOver          = "Your journey has already ended."
	MsgInsufficient     = "\nNot enough Memory Shards!"
	MsgUpgradeLocked    = "\nThat upgrade is still sealed."
	MsgUpgradeMaxed     = "\nThat upgrade is already at its limit."
	MsgAllUpgradesMaxed = "\nAll upgrades maxed out!"
	MsgInvalidTarget    = "There is no such target."
	MsgInvalidItem      = "You have no such item."
	MsgGenericError     = "Something went wrong: %v"

	MsgResonanceTitle = "\n=== ANCIENT MEMORY DISCOVERED ==="
	MsgResonanceBody  = "\nAs you focus on the number 137, a mysterious resonance fills your mind...\n" +
		"\nThe fine-structure constant of the universe whispers its secrets...\n" +
		"\nYou feel your being resonate with cosmic energy!\n" +
		"Health increased by 37!\nAttack increased by 13!\nDefense increased by 7!\nGained 137 Memory Shards!"
	MsgResonanceReturn = "\nPress Enter to return to reality..."
)

// HelpText lists the room commands.
const HelpText = `
Available Commands:
  move [direction] - Move to another room
  inventory        - View and use items
  status           - View player status
  talk             - Speak with someone in the room
  retreat          - Leave the Shardlands and keep what you collected
  help             - Show this help text
  quit             - Leave the game

Tip: You can combine commands with arguments (e.g., 'move north')`

// formatFriendlyError maps domain errors to player-facing text.
func formatFriendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientShards):
		return MsgInsufficient
	case errors.Is(err, domain.ErrUpgradeLocked):
		return MsgUpgradeLocked
	case errors.Is(err, domain.ErrUpgradeMaxed):
		return MsgUpgradeMaxed
	case errors.Is(err, domain.ErrItemNotUsableHere):
		return MsgDamageItemOnly
	case errors.Is(err, domain.ErrInventoryFull):
		return MsgInventoryFull
	case errors.Is(err, domain.ErrInvalidTarget):
		return MsgInvalidTarget
	case errors.Is(err, domain.ErrInvalidItemIndex):
		return MsgInvalidItem
	case errors.Is(err, domain.ErrNoExit):
		return MsgNoExits
	case errors.Is(err, domain.ErrRunOver):
		return MsgRunOver
	default:
		return fmtGeneric(err)
	}
}
