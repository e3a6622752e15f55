package event

// EventSchemaVersion is stamped on every published event.
const EventSchemaVersion = "1.0"

// DeadLetterFilePermissions applies when the dead-letter file is created.
const DeadLetterFilePermissions = 0644

// Log messages
const (
	LogMsgEventDeadLettered     = "event_dead_lettered"
	LogMsgHandlerFailed         = "Event handler failed, writing to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgHandlerErrorFormat    = "encountered %d errors while handling event %s: %v"
)
