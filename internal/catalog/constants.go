package catalog

import "time"

// Cache sizing
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
	// allItemsKey caches the full catalog listing
	allItemsKey = "*"
)

// Schema registration name
const ItemsSchemaName = "items.schema.json"

// Error messages
const (
	ErrMsgParseConfigFailed   = "failed to parse items config"
	ErrMsgSchemaInvalid       = "items config failed schema validation"
	ErrMsgConfigNil           = "config is nil"
	ErrMsgNoItemsDefined      = "no items defined"
	ErrMsgListItemsFailed     = "failed to list items"
	ErrMsgUpsertItemsFailed   = "failed to upsert items"
	ErrFmtItemMissingKey      = "%w: item at index %d has neither key nor name"
	ErrFmtItemDuplicateKey    = "%w: duplicate item key '%s'"
	ErrFmtItemInvalidKey      = "%w: item key '%s' must be lowercase letters, digits and underscores"
	ErrFmtItemDroppableNoRare = "%w: droppable item '%s' needs a positive rarity"
)

// Log messages
const (
	LogMsgSyncStarted   = "Syncing item catalog"
	LogMsgSyncCompleted = "Item catalog sync completed"
	LogMsgItemChanged   = "Item changed"
	LogMsgItemInserted  = "Item inserted"
	LogMsgCacheHit      = "Catalog cache hit"
)
