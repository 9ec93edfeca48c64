package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

// Transaction is the durable record of a verified payment. Rows are written
// exactly once and never updated or deleted; the signature is retained for
// audit.
type Transaction struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"order_id"`
	PaymentID string    `json:"payment_id"`
	Signature string    `json:"signature"`
	Amount    int64     `json:"amount"` // smallest currency unit
	CreatedAt time.Time `json:"created_at"`
}

type TransactionStore struct {
	db *sql.DB
}

// Create persists a verified transaction. The database assigns id and
// created_at. A second submission for the same (order_id, payment_id) hits
// the unique constraint and comes back as ErrConflict.
func (s *TransactionStore) Create(ctx context.Context, txn *Transaction) error {
	query := `
        INSERT INTO transactions (order_id, payment_id, signature, amount)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRowContext(ctx, query,
		txn.OrderID,
		txn.PaymentID,
		txn.Signature,
		txn.Amount,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrConflict
		}
		return err
	}

	return nil
}
