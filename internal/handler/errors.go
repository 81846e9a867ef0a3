package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidDate       = "Invalid date, expected YYYY-MM-DD"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Operation names used in logs and error responses
	ErrMsgAddTimeFailed        = "Failed to add time"
	ErrMsgRemoveTimeFailed     = "Failed to remove time"
	ErrMsgListTimesFailed      = "Failed to list times"
	ErrMsgGetStreaksFailed     = "Failed to get streaks"
	ErrMsgRewardDeltaFailed    = "Failed to compute reward delta"
	ErrMsgMissedFailed         = "Failed to list missed puzzles"
	ErrMsgAnnounceFailed       = "Failed to build announcement"
	ErrMsgRegisterUserFailed   = "Failed to register user"
	ErrMsgGetAccountFailed     = "Failed to get account"
	ErrMsgTransferFailed       = "Failed to transfer currency"
	ErrMsgCreditFailed         = "Failed to credit currency"
	ErrMsgDebitFailed          = "Failed to debit currency"
	ErrMsgGrantItemFailed      = "Failed to grant item"
	ErrMsgRevokeItemFailed     = "Failed to revoke item"
	ErrMsgEquipFailed          = "Failed to equip hat"
	ErrMsgUnequipFailed        = "Failed to remove hat"
	ErrMsgListItemsFailed      = "Failed to list items"
	ErrMsgGetSettingsFailed    = "Failed to get settings"
	ErrMsgUpdateSettingsFailed = "Failed to update settings"
	ErrMsgCatalogSyncFailed    = "Failed to sync item catalog"
)

// Success messages for API responses
// These are user-facing messages returned in JSON responses
const (
	MsgTimeRecorded       = "Time recorded"
	MsgTimeAlreadyPresent = "A time is already recorded for that day"
	MsgTimeRemoved        = "Time removed"
	MsgNothingToRemove    = "No time recorded for that day"
	MsgTransferred        = "Currency transferred"
	MsgCredited           = "Currency credited"
	MsgDebited            = "Currency debited"
	MsgNotEnoughMoney     = "Not enough money"
	MsgItemGranted        = "Item granted"
	MsgItemRevoked        = "Item revoked"
	MsgNotEnoughItems     = "Not enough removable items"
	MsgHatEquipped        = "Hat equipped"
	MsgHatNotOwned        = "You don't have that item"
	MsgHatRemoved         = "Hat removed"
	MsgNoHat              = "No hat to remove"
)
