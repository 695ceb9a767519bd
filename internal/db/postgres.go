package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the catalog schema. The position column keeps
// catalog order stable so first-match lookup behaves the same as the
// in-memory repository.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	catalogSQL := `
		CREATE TABLE IF NOT EXISTS catalog_items (
			id UUID PRIMARY KEY,
			position SERIAL,
			name VARCHAR(255) NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, catalogSQL); err != nil {
		return err
	}

	nameIndexSQL := `
		CREATE INDEX IF NOT EXISTS catalog_items_lower_name_idx
		ON catalog_items (LOWER(name), position)
	`
	if _, err := db.Exec(ctx, nameIndexSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
