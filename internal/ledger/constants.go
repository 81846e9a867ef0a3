package ledger

// Database operation error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgLockUserFailed          = "failed to lock user %s: %w"
	ErrMsgUpdateBalanceFailed     = "failed to update balance: %w"
	ErrMsgGetQuantityFailed       = "failed to get item quantity: %w"
	ErrMsgSetQuantityFailed       = "failed to set item quantity: %w"
	ErrMsgUpdateHatFailed         = "failed to update hat: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgUpsertUserFailed        = "failed to register user: %w"
)

// Validation error formats
const (
	ErrMsgInvalidAmountFmt   = "%w: %d"
	ErrMsgInvalidQuantityFmt = "%w: %d"
)

// Log messages
const (
	LogMsgCredited          = "Balance credited"
	LogMsgDebited           = "Balance debited"
	LogMsgInsufficientFunds = "Insufficient funds"
	LogMsgTransferred       = "Currency transferred"
	LogMsgItemGranted       = "Item granted"
	LogMsgItemRevoked       = "Item revoked"
	LogMsgInsufficientItems = "Not enough removable items"
	LogMsgHatEquipped       = "Hat equipped"
	LogMsgHatUnequipped     = "Hat unequipped"
	LogMsgUserRegistered    = "User registered"
)
