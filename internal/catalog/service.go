package catalog

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddItem validates an administrative add and inserts it.
// Duplicate names are permitted; lookup resolves them first-match.
func (s *Service) AddItem(ctx context.Context, name string, price float64) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("item name is required")
	}
	if price < 0 {
		return nil, errors.New("price must not be negative")
	}
	return s.repo.Insert(ctx, name, price)
}

func (s *Service) RemoveItem(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}

func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

// Seed loads the default menu into an empty catalog. A non-empty
// catalog is left untouched so restarts against postgres do not
// duplicate the seed rows.
func (s *Service) Seed(ctx context.Context, items []Item) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, item := range items {
		if _, err := s.repo.Insert(ctx, item.Name, item.Price); err != nil {
			return err
		}
	}
	return nil
}
