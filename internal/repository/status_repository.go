package repository

import (
	"context"

	"nexus-terminal/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const createStatusChecksTable = `
CREATE TABLE IF NOT EXISTS status_checks (
    id          TEXT        PRIMARY KEY,
    client_name TEXT        NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_status_checks_time
    ON status_checks (created_at DESC);
`

type StatusRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewStatusRepository(pool PgxPool, tracer trace.Tracer) *StatusRepository {
	return &StatusRepository{pool: pool, tracer: tracer}
}

func (r *StatusRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "status-repo.run-migrations")
	defer span.End()

	_, err := r.pool.Exec(ctx, createStatusChecksTable)
	return err
}

func (r *StatusRepository) Insert(ctx context.Context, check *domain.StatusCheck) error {
	_, span := r.tracer.Start(ctx, "status-repo.insert")
	defer span.End()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO status_checks (id, client_name, created_at) VALUES ($1, $2, $3)`,
		check.ID, check.ClientName, check.Timestamp,
	)
	return err
}

// List returns recent status checks, newest first.
func (r *StatusRepository) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	_, span := r.tracer.Start(ctx, "status-repo.list")
	defer span.End()

	if limit <= 0 {
		limit = 100
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, client_name, created_at
		 FROM status_checks
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []*domain.StatusCheck
	for rows.Next() {
		c := &domain.StatusCheck{}
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}
