package actions

import (
	"context"

	"github.com/carson-networks/finance-dashboard/internal/storage"
	"github.com/carson-networks/finance-dashboard/internal/storage/transaction"
)

// CreateTransaction inserts a transaction into an account the user owns and
// reads it back with its account and category names.
type CreateTransaction struct {
	Create transaction.TransactionCreate

	Result *transaction.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Transactions.Insert(ctx, &a.Create); err != nil {
		return err
	}

	created, err := writer.Transactions.FindByID(ctx, a.Create.UserID, a.Create.ID)
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}

type UpdateTransaction struct {
	Update transaction.TransactionUpdate

	Result *transaction.Transaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Transactions.Update(ctx, &a.Update); err != nil {
		return err
	}

	updated, err := writer.Transactions.FindByID(ctx, a.Update.UserID, a.Update.ID)
	if err != nil {
		return err
	}
	a.Result = updated
	return nil
}

type DeleteTransaction struct {
	UserID string
	ID     string
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, a.UserID, a.ID)
}

type BulkDeleteTransactions struct {
	UserID string
	IDs    []string

	Deleted []string
}

func (a *BulkDeleteTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transactions.BulkDelete(ctx, a.UserID, a.IDs)
	if err != nil {
		return err
	}
	a.Deleted = deleted
	return nil
}
