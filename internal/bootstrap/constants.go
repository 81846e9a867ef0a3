package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
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

	// LogFileRetentionCount is the number of older session logs kept alongside the new one
	LogFileRetentionCount = 9
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgStarting           = "Starting CrossBot"
	LogMsgConfigLoaded       = "Configuration loaded"
	LogMsgLogCleanupFailed   = "Failed to delete old log file"

	LogMsgSyncingItems   = "Syncing items from JSON config..."
	LogMsgItemsSynced    = "Items synced successfully"
	LogMsgItemsUnchanged = "Items config unchanged"

	LogMsgShuttingDown         = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed = "Announce worker shutdown failed"
	LogMsgPoolShutdownFailed   = "Worker pool shutdown failed"
	LogMsgServerStopped        = "Server stopped"
)

// Error message formats
const (
	ErrMsgCreateLogDir = "failed to create logs directory: %w"
	ErrMsgOpenLogFile  = "failed to open log file: %w"
	ErrMsgItemsSync    = "failed to sync items config: %w"
)
