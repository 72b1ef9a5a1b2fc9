package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// TxRepository opens the transactions that span several repositories
// (purchase: stock decrement + order insert; update: lock + write).
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db}
}

// BeginTx starts a READ COMMITTED transaction. Stock checks never rely on a
// snapshot: the decrement is a conditional UPDATE that reads the current row.
func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}
