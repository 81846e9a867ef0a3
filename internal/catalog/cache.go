package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CrossBot_Go/internal/domain"
)

// itemCache keeps recent catalog reads in memory with time-based expiration.
// The full listing is stored under allItemsKey; single items under their key.
type itemCache struct {
	lists *expirable.LRU[string, []domain.Item]
	items *expirable.LRU[string, domain.Item]
}

func newItemCache(size int, ttl time.Duration) *itemCache {
	return &itemCache{
		lists: expirable.NewLRU[string, []domain.Item](1, nil, ttl),
		items: expirable.NewLRU[string, domain.Item](size, nil, ttl),
	}
}

func (c *itemCache) getAll() ([]domain.Item, bool) {
	items, ok := c.lists.Get(allItemsKey)
	if !ok {
		return nil, false
	}
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out, true
}

func (c *itemCache) setAll(items []domain.Item) {
	stored := make([]domain.Item, len(items))
	copy(stored, items)
	c.lists.Add(allItemsKey, stored)
	for _, item := range stored {
		c.items.Add(item.Key, item)
	}
}

func (c *itemCache) get(key string) (domain.Item, bool) {
	return c.items.Get(key)
}

func (c *itemCache) set(item domain.Item) {
	c.items.Add(item.Key, item)
}

// purge drops everything, used after a sync changes the catalog
func (c *itemCache) purge() {
	c.lists.Purge()
	c.items.Purge()
}
