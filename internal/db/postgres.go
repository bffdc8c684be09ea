package db

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var Pool *pgxpool.Pool

var (
	newPgxPool = pgxpool.New
	pingPool   = func(ctx context.Context, pool *pgxpool.Pool) error {
		return pool.Ping(ctx)
	}
)

// InitPostgres connects the shared pool. Without DATABASE_URL the service
// runs stateless: transactions and status checks return 503 instead.
func InitPostgres(ctx context.Context, databaseURL string) {
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, skipping Postgres connection")
		return
	}

	pool, err := newPgxPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("failed to create Postgres pool: %v", err)
	}
	if err := pingPool(ctx, pool); err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}

	Pool = pool
	log.Println("Connected to Postgres")
}
