package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestInitPostgresSkipsWithoutURL(t *testing.T) {
	t.Cleanup(func() { Pool = nil })

	InitPostgres(context.Background(), "")
	if Pool != nil {
		t.Fatal("expected nil pool without DATABASE_URL")
	}
}

func TestInitPostgresConnects(t *testing.T) {
	origNew := newPgxPool
	origPing := pingPool
	t.Cleanup(func() {
		newPgxPool = origNew
		pingPool = origPing
		Pool = nil
	})

	var capturedURL string
	newPgxPool = func(ctx context.Context, connString string) (*pgxpool.Pool, error) {
		capturedURL = connString
		return &pgxpool.Pool{}, nil
	}
	pingPool = func(ctx context.Context, pool *pgxpool.Pool) error { return nil }

	InitPostgres(context.Background(), "postgres://example/app")
	if capturedURL != "postgres://example/app" {
		t.Fatalf("expected url to be passed through, got %s", capturedURL)
	}
	if Pool == nil {
		t.Fatal("expected pool to be set")
	}
}
