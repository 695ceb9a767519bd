package catalog

import "context"

// Repository defines the data-access contract for the catalog.
// Service and the reconciliation engine depend ONLY on this interface.
//
// Lookup is case-insensitive and returns the first match in catalog
// order; duplicates are allowed on insert and resolved by that rule.
type Repository interface {
	Lookup(ctx context.Context, name string) (*Item, error)
	Insert(ctx context.Context, name string, price float64) (*Item, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]Item, error)
}
