package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CrossBot_Go/internal/catalog"
)

// SyncItems loads the items config and upserts whatever changed since the last start
func SyncItems(ctx context.Context, items catalog.Service) (*catalog.SyncResult, error) {
	slog.Info(LogMsgSyncingItems)

	result, err := items.Sync(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgItemsSync, err)
	}

	if result.Inserted > 0 || result.Updated > 0 {
		slog.Info(LogMsgItemsSynced,
			"inserted", result.Inserted,
			"updated", result.Updated,
			"unchanged", result.Unchanged)
	} else {
		slog.Info(LogMsgItemsUnchanged, "unchanged", result.Unchanged)
	}
	return result, nil
}
