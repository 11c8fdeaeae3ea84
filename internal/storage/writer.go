package storage

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-dashboard/internal/storage/account"
	"github.com/carson-networks/finance-dashboard/internal/storage/category"
	"github.com/carson-networks/finance-dashboard/internal/storage/transaction"
)

// Tx is the part of a database transaction the Writer finishes.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups the table writers of one database transaction.
type Writer struct {
	tx           Tx
	Accounts     account.IWriter
	Categories   category.IWriter
	Transactions transaction.IWriter
}

func NewWriter(tx bob.Tx, loc *time.Location) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     account.NewWriter(tx),
		Categories:   category.NewWriter(tx),
		Transactions: transaction.NewWriter(tx, loc),
	}
}

// NewWriterWithTables builds a Writer from explicit parts.
func NewWriterWithTables(tx Tx, accounts account.IWriter, categories category.IWriter, transactions transaction.IWriter) *Writer {
	return &Writer{
		tx:           tx,
		Accounts:     accounts,
		Categories:   categories,
		Transactions: transactions,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
