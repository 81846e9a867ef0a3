package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeSerializationFailure is raised when concurrent transactions cannot be serialized
	PgErrorCodeSerializationFailure = "40001"
	// PgErrorCodeDeadlockDetected is raised when the server aborts a deadlocked transaction
	PgErrorCodeDeadlockDetected = "40P01"
)

// settingsRowID is the only row of the game_settings table
const settingsRowID = 1

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction   = "failed to commit transaction"
	ErrMsgFailedToRollbackTransaction = "failed to roll back transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToLockUser        = "failed to lock user"
	ErrMsgFailedToGetUser         = "failed to get user"
	ErrMsgFailedToUpsertUser      = "failed to upsert user"
	ErrMsgFailedToUpdateBalance   = "failed to update balance"
	ErrMsgFailedToUpdateHat       = "failed to update hat"
	ErrMsgFailedToGetInventory    = "failed to get inventory"
	ErrMsgFailedToGetQuantity     = "failed to get item quantity"
	ErrMsgFailedToSetQuantity     = "failed to set item quantity"
	ErrMsgFailedToDeleteOwnership = "failed to delete item ownership"
)

// Error Messages - Completion Operations
const (
	ErrMsgFailedToGetCompletion     = "failed to get completion"
	ErrMsgFailedToSaveCompletion    = "failed to save completion"
	ErrMsgFailedToDeleteCompletion  = "failed to delete completion"
	ErrMsgFailedToListCompletions   = "failed to list completions"
	ErrMsgFailedToGetCompletedDates = "failed to get completed dates"
	ErrMsgCompletionAlreadyRecorded = "completion already recorded"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToListItems   = "failed to list items"
	ErrMsgFailedToGetItem     = "failed to get item"
	ErrMsgFailedToUpsertItems = "failed to upsert items"
)

// Error Messages - Settings Operations
const (
	ErrMsgFailedToGetSettings  = "failed to get settings"
	ErrMsgFailedToSaveSettings = "failed to save settings"
)
