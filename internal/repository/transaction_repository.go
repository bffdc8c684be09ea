package repository

import (
	"context"

	"nexus-terminal/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"
)

const createTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
    id           TEXT        PRIMARY KEY,
    wallet_id    TEXT        NOT NULL,
    chain        TEXT        NOT NULL,
    type         TEXT        NOT NULL,
    from_address TEXT        NOT NULL DEFAULT '',
    to_address   TEXT        NOT NULL DEFAULT '',
    amount       TEXT        NOT NULL DEFAULT '',
    token        TEXT        NOT NULL DEFAULT '',
    tx_hash      TEXT        NOT NULL DEFAULT '',
    status       TEXT        NOT NULL DEFAULT 'pending',
    created_at   TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_wallet_time
    ON transactions (wallet_id, created_at DESC);
`

type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type TransactionRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewTransactionRepository(pool PgxPool, tracer trace.Tracer) *TransactionRepository {
	return &TransactionRepository{pool: pool, tracer: tracer}
}

func (r *TransactionRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "transaction-repo.run-migrations")
	defer span.End()

	_, err := r.pool.Exec(ctx, createTransactionsTable)
	return err
}

func (r *TransactionRepository) Insert(ctx context.Context, tx *domain.TransactionRecord) error {
	_, span := r.tracer.Start(ctx, "transaction-repo.insert")
	defer span.End()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO transactions (id, wallet_id, chain, type, from_address, to_address, amount, token, tx_hash, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		tx.ID, tx.WalletID, tx.Chain, tx.Type, tx.FromAddress, tx.ToAddress, tx.Amount, tx.Token, tx.TxHash, tx.Status, tx.Timestamp,
	)
	return err
}

// ListByWallet returns a wallet's transactions, newest first.
func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID string, limit int) ([]*domain.TransactionRecord, error) {
	_, span := r.tracer.Start(ctx, "transaction-repo.list-by-wallet")
	defer span.End()

	if limit <= 0 {
		limit = 100
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, wallet_id, chain, type, from_address, to_address, amount, token, tx_hash, status, created_at
		 FROM transactions
		 WHERE wallet_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		walletID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*domain.TransactionRecord
	for rows.Next() {
		tx := &domain.TransactionRecord{}
		if err := rows.Scan(&tx.ID, &tx.WalletID, &tx.Chain, &tx.Type, &tx.FromAddress, &tx.ToAddress, &tx.Amount, &tx.Token, &tx.TxHash, &tx.Status, &tx.Timestamp); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
