package db

import (
	"context"
	"database/sql"
	"time"
)

// New sets up the Postgres connection pool and makes sure the transactions
// schema exists before the server starts taking requests.
func New(addr string, maxOpenConns, maxIdleConns int, maxIdleTime string) (*sql.DB, error) {
	db, err := sql.Open("postgres", addr)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	duration, err := time.ParseDuration(maxIdleTime)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxIdleTime(duration)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err = migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// migrate creates the single flat transactions table. The unique constraint
// on (order_id, payment_id) is what rejects duplicate verified submissions.
func migrate(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		order_id VARCHAR(255) NOT NULL,
		payment_id VARCHAR(255) NOT NULL,
		signature VARCHAR(255) NOT NULL,
		amount BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (order_id, payment_id)
	)
	`
	_, err := db.ExecContext(ctx, query)
	return err
}
