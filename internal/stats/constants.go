package stats

// Log messages
const (
	LogMsgHandlerRegistered = "Lifetime stats handler registered"
	ErrMsgDecodePayload     = "failed to decode %s payload: %w"
)
