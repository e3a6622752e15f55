package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Profile errors
	ErrMsgProfileNotFound = "profile not found"

	// Forge errors
	ErrMsgInsufficientShards = "insufficient memory shards"
	ErrMsgUpgradeNotFound    = "upgrade not found"
	ErrMsgUpgradeLocked      = "upgrade prerequisites not met"
	ErrMsgUpgradeMaxed       = "upgrade already at max purchases"

	// Inventory errors
	ErrMsgInventoryFull     = "inventory is full"
	ErrMsgInvalidItemIndex  = "invalid item index"
	ErrMsgItemNotUsableHere = "item cannot be used here"

	// Combat errors
	ErrMsgInvalidTarget = "invalid target"
	ErrMsgCombatOver    = "combat is already over"
	ErrMsgNotPlayerTurn = "not the player's turn"
	ErrMsgUnknownAction = "unknown combat action"

	// Event errors
	ErrMsgEventNotFound = "event not found"
	ErrMsgInvalidChoice = "invalid choice"

	// Run errors
	ErrMsgNoExit  = "no exit in that direction"
	ErrMsgRunOver = "run has ended"

	// Dialogue errors
	ErrMsgDialogueNodeNotFound = "dialogue node not found"
	ErrMsgDialogueEnded        = "dialogue has ended"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrProfileNotFound is returned by profile stores when no save exists yet.
	// Callers treat it as "new game".
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)

	ErrInsufficientShards = errors.New(ErrMsgInsufficientShards)
	ErrUpgradeNotFound    = errors.New(ErrMsgUpgradeNotFound)
	ErrUpgradeLocked      = errors.New(ErrMsgUpgradeLocked)
	ErrUpgradeMaxed       = errors.New(ErrMsgUpgradeMaxed)

	ErrInventoryFull     = errors.New(ErrMsgInventoryFull)
	ErrInvalidItemIndex  = errors.New(ErrMsgInvalidItemIndex)
	ErrItemNotUsableHere = errors.New(ErrMsgItemNotUsableHere)

	ErrInvalidTarget = errors.New(ErrMsgInvalidTarget)
	ErrCombatOver    = errors.New(ErrMsgCombatOver)
	ErrNotPlayerTurn = errors.New(ErrMsgNotPlayerTurn)
	ErrUnknownAction = errors.New(ErrMsgUnknownAction)

	ErrEventNotFound = errors.New(ErrMsgEventNotFound)
	ErrInvalidChoice = errors.New(ErrMsgInvalidChoice)

	ErrNoExit  = errors.New(ErrMsgNoExit)
	ErrRunOver = errors.New(ErrMsgRunOver)

	ErrDialogueNodeNotFound = errors.New(ErrMsgDialogueNodeNotFound)
	ErrDialogueEnded        = errors.New(ErrMsgDialogueEnded)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
