package puzzle

// Database operation error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetCompletionFailed     = "failed to get completion: %w"
	ErrMsgSaveCompletionFailed    = "failed to save completion: %w"
	ErrMsgDeleteCompletionFailed  = "failed to delete completion: %w"
	ErrMsgCompletedDatesFailed    = "failed to load completed dates: %w"
	ErrMsgListCompletionsFailed   = "failed to list completions: %w"
	ErrMsgLoadSettingsFailed      = "failed to load game settings: %w"
	ErrMsgLoadDroppableFailed     = "failed to load droppable items: %w"
	ErrMsgGrantDropFailed         = "failed to grant dropped item: %w"
)

// Log messages
const (
	LogMsgTimeAdded       = "Puzzle time added"
	LogMsgDuplicateEntry  = "Puzzle time already recorded"
	LogMsgResurrected     = "Puzzle time re-entered after removal, no payout"
	LogMsgConflictRetry   = "Storage conflict while adding time, retrying once"
	LogMsgItemDropped     = "Item dropped"
	LogMsgTimeRemoved     = "Puzzle time removed"
	LogMsgNothingToRemove = "No puzzle time to remove"
	LogMsgAnnounceBuilt   = "Announcement built"
)

// announceStreakCap bounds how far back a winning streak is followed
const announceStreakCap = 3650
