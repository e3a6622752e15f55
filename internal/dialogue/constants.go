package dialogue

// ConfigPath is the shipped dialogue file.
const ConfigPath = "configs/dialogue.yaml"

// NPC names with a start node in the shipped content.
const (
	NPCSage = "sage"
)

// ActionEndDialogue closes the conversation.
const ActionEndDialogue = "end_dialogue"

// Error messages
const (
	ErrMsgReadFailed    = "failed to read dialogue file: %w"
	ErrMsgParseFailed   = "failed to parse dialogue file: %w"
	ErrMsgUnknownNode   = "option %d of %q leads to unknown node %q"
	ErrMsgUnknownAction = "option %d of %q has unknown action %q"
	ErrMsgUnknownStart  = "start node %q for %q does not exist"
	ErrMsgUnknownNPC    = "no conversation for %q"
	ErrMsgNoNodes       = "dialogue has no nodes"
)

// Log messages
const (
	LogMsgTreeLoaded        = "Dialogue tree loaded"
	LogMsgConversationEnded = "Conversation ended"
)
