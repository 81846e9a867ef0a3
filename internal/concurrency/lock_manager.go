package concurrency

import (
	"sort"
	"sync"
)

// LockManager hands out one mutex per user key
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the lock for key and returns its release func
func (lm *LockManager) Lock(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// LockAll acquires the locks for every distinct key in ascending key order,
// so two callers locking overlapping sets can never deadlock. Release
// happens in reverse order.
func (lm *LockManager) LockAll(keys ...string) func() {
	ordered := SortedUnique(keys)
	held := make([]*sync.Mutex, 0, len(ordered))
	for _, k := range ordered {
		mu := lm.GetLock(k)
		mu.Lock()
		held = append(held, mu)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

// SortedUnique returns the distinct keys in ascending order
func SortedUnique(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
