package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func TestTransactionStore_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	defer db.Close()

	createdAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs("order_JkVtugqb6axZp8", "pay_29QQoUBi66xm2f", "sig", int64(299900)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), createdAt))

	s := &TransactionStore{db}
	txn := &Transaction{
		OrderID:   "order_JkVtugqb6axZp8",
		PaymentID: "pay_29QQoUBi66xm2f",
		Signature: "sig",
		Amount:    299900,
	}

	if err := s.Create(context.Background(), txn); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if txn.ID != 42 {
		t.Errorf("Expected assigned id 42, got %d", txn.ID)
	}
	if !txn.CreatedAt.Equal(createdAt) {
		t.Errorf("Expected created_at from the database, got %v", txn.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Database expectations were not met: %v", err)
	}
}

func TestTransactionStore_Create_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO transactions").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "transactions_order_id_payment_id_key"})

	s := &TransactionStore{db}
	err = s.Create(context.Background(), &Transaction{
		OrderID:   "order_JkVtugqb6axZp8",
		PaymentID: "pay_29QQoUBi66xm2f",
		Signature: "sig",
		Amount:    299900,
	})

	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Expected ErrConflict, got %v", err)
	}
}

func TestTransactionStore_Create_OtherError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	defer db.Close()

	dbErr := errors.New("connection reset")
	mock.ExpectQuery("INSERT INTO transactions").WillReturnError(dbErr)

	s := &TransactionStore{db}
	err = s.Create(context.Background(), &Transaction{
		OrderID:   "order_x",
		PaymentID: "pay_x",
		Signature: "sig",
		Amount:    1,
	})

	if errors.Is(err, ErrConflict) || err == nil {
		t.Fatalf("Expected the raw database error, got %v", err)
	}
}
