package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository keeps the catalog as an ordered slice guarded by a
// single RWMutex. Inserts append; lookup scans in order so the
// first-match rule holds even when duplicate names exist.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Lookup(ctx context.Context, name string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if strings.EqualFold(r.items[i].Name, name) {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, name string, price float64) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := Item{
		ID:    uuid.New().String(),
		Name:  name,
		Price: price,
	}
	r.items = append(r.items, item)
	return &item, nil
}

func (r *MemoryRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	// Absent id is not an error
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]Item, len(r.items))
	copy(snapshot, r.items)
	return snapshot, nil
}
