package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Puzzle errors
	ErrMsgInvalidPuzzleType = "invalid puzzle type"
	ErrMsgDuplicateDate     = "duplicate date in streak input"
	ErrMsgRewardInvariant   = "reward delta is negative"

	// User errors
	ErrMsgUserNotFound = "user not found"

	// Item errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgNotEquippable  = "item cannot be worn as a hat"
	ErrMsgInvalidItemKey = "invalid item key"

	// Ledger validation errors
	ErrMsgInvalidAmount   = "amount must be positive"
	ErrMsgInvalidQuantity = "quantity must be positive"
	ErrMsgSelfTransfer    = "cannot transfer to yourself"

	// Settings errors
	ErrMsgInvalidSettings = "invalid game settings"

	// Database/System errors
	ErrMsgStorageConflict = "storage conflict"
	ErrMsgDatabaseError   = "database error"
	ErrMsgTxClosed        = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
// Duplicate entries, insufficient funds and unowned items are reported as
// boolean results, never as errors.
var (
	// Puzzle errors
	ErrInvalidPuzzleType = errors.New(ErrMsgInvalidPuzzleType)
	ErrDuplicateDate     = errors.New(ErrMsgDuplicateDate)
	ErrRewardInvariant   = errors.New(ErrMsgRewardInvariant)

	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Item errors
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrNotEquippable  = errors.New(ErrMsgNotEquippable)
	ErrInvalidItemKey = errors.New(ErrMsgInvalidItemKey)

	// Ledger validation errors
	ErrInvalidAmount   = errors.New(ErrMsgInvalidAmount)
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
	ErrSelfTransfer    = errors.New(ErrMsgSelfTransfer)

	// Settings errors
	ErrInvalidSettings = errors.New(ErrMsgInvalidSettings)

	// Unique-constraint violation, serialization failure or deadlock
	ErrStorageConflict = errors.New(ErrMsgStorageConflict)

	// Returned by Rollback after Commit; deferred rollbacks expect it
	ErrTxClosed = errors.New(ErrMsgTxClosed)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
