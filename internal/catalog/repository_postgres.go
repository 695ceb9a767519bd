package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Lookup returns the first case-insensitive match in catalog order.
// The position column preserves insertion order across restarts.
func (r *PostgresRepository) Lookup(ctx context.Context, name string) (*Item, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, price
		FROM catalog_items
		WHERE LOWER(name) = LOWER($1)
		ORDER BY position
		LIMIT 1
	`, name)

	var item Item
	if err := row.Scan(&item.ID, &item.Name, &item.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, name string, price float64) (*Item, error) {
	item := Item{
		ID:    uuid.New().String(),
		Name:  name,
		Price: price,
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO catalog_items (id, name, price)
		VALUES ($1, $2, $3)
	`, item.ID, item.Name, item.Price)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, id string) error {
	// DELETE of a missing id affects zero rows, which is fine
	_, err := r.db.Exec(ctx, `DELETE FROM catalog_items WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price
		FROM catalog_items
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
