package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept beside the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingShardlands  = "Starting Shardlands"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

// DeadLetterFileName is created inside LOG_DIR
const DeadLetterFileName = "events.deadletter.jsonl"

const (
	LogMsgEventSystemInitialized  = "Event system initialized"
	ErrMsgFailedCreateDeadLetter  = "failed to create dead-letter writer"
	LogMsgStatsHandlerRegistered  = "Statistics handler registered"
	LogMsgMetricsCollectorEnabled = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics   = "failed to register metrics collector"
)

// =============================================================================
// Storage Configuration
// =============================================================================

const (
	DBMaxIdleTime = 5 * time.Minute
	DBMaxLifetime = 30 * time.Minute
)

const (
	LogMsgUsingFileStore     = "Using save file"
	LogMsgUsingPostgresStore = "Using postgres save slot"
	LogMsgMigrationsApplied  = "Database migrations applied"
	ErrMsgFailedMigrate      = "failed to run migrations"
	ErrMsgFailedConnect      = "failed to connect to database"
)

// =============================================================================
// Content Loading
// =============================================================================

const (
	LogMsgContentLoaded      = "Game content loaded"
	ErrMsgFailedLoadForge    = "failed to load forge upgrades"
	ErrMsgFailedLoadEvents   = "failed to load events"
	ErrMsgFailedLoadDialogue = "failed to load dialogue"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown          = "Shutting down..."
	LogMsgProfileFlushFailed    = "Failed to flush profile statistics"
	LogMsgDeadLetterCloseFailed = "Failed to close dead-letter file"
	LogMsgShutdownComplete      = "Shutdown complete"
)
