package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/logger"
	"github.com/osse101/CrossBot_Go/internal/repository"
)

// Service is the read side of the item catalog plus the admin sync
type Service interface {
	List(ctx context.Context) ([]domain.Item, error)
	ListDroppable(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, key string) (*domain.Item, error)
	// Sync loads the catalog file and upserts every changed item
	Sync(ctx context.Context) (*SyncResult, error)
}

// SyncResult counts what a sync changed
type SyncResult struct {
	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
}

type service struct {
	repo       repository.Item
	loader     Loader
	configPath string
	cache      *itemCache
}

// NewService creates a catalog service reading items from repo and syncing from configPath
func NewService(repo repository.Item, loader Loader, configPath string, cacheTTL time.Duration) Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:       repo,
		loader:     loader,
		configPath: configPath,
		cache:      newItemCache(DefaultCacheSize, cacheTTL),
	}
}

func (s *service) List(ctx context.Context) ([]domain.Item, error) {
	if items, ok := s.cache.getAll(); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "key", allItemsKey)
		return items, nil
	}

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListItemsFailed, err)
	}
	s.cache.setAll(items)
	return items, nil
}

func (s *service) ListDroppable(ctx context.Context) ([]domain.Item, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	droppable := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.CanDrop() {
			droppable = append(droppable, item)
		}
	}
	return droppable, nil
}

// Get returns domain.ErrItemNotFound for unknown keys
func (s *service) Get(ctx context.Context, key string) (*domain.Item, error) {
	if item, ok := s.cache.get(key); ok {
		return &item, nil
	}

	item, err := s.repo.GetItem(ctx, key)
	if err != nil {
		return nil, err
	}
	s.cache.set(*item)
	return item, nil
}

func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSyncStarted, "path", s.configPath)

	config, err := s.loader.Load(s.configPath)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListItemsFailed, err)
	}
	byKey := make(map[string]domain.Item, len(existing))
	for _, item := range existing {
		byKey[item.Key] = item
	}

	result := &SyncResult{}
	var changed []domain.Item
	for _, item := range config.DomainItems() {
		current, ok := byKey[item.Key]
		switch {
		case !ok:
			result.Inserted++
			changed = append(changed, item)
			log.Info(LogMsgItemInserted, "item", item.Key)
		case current != item:
			result.Updated++
			changed = append(changed, item)
			log.Info(LogMsgItemChanged, "item", item.Key)
		default:
			result.Unchanged++
		}
	}

	if len(changed) > 0 {
		if err := s.repo.UpsertItems(ctx, changed); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgUpsertItemsFailed, err)
		}
		s.cache.purge()
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"unchanged", result.Unchanged)
	return result, nil
}
