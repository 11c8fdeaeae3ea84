package actions

import (
	"context"

	"github.com/carson-networks/finance-dashboard/internal/storage"
	"github.com/carson-networks/finance-dashboard/internal/storage/account"
)

type CreateAccount struct {
	Create account.AccountCreate

	Result *account.Account
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Accounts.Insert(ctx, &a.Create); err != nil {
		return err
	}

	created, err := writer.Accounts.FindByID(ctx, a.Create.UserID, a.Create.ID)
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}

type RenameAccount struct {
	UserID string
	ID     string
	Name   string

	Result *account.Account
}

func (a *RenameAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Accounts.Rename(ctx, a.UserID, a.ID, a.Name); err != nil {
		return err
	}

	renamed, err := writer.Accounts.FindByID(ctx, a.UserID, a.ID)
	if err != nil {
		return err
	}
	a.Result = renamed
	return nil
}

type DeleteAccount struct {
	UserID string
	ID     string
}

func (a *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Accounts.Delete(ctx, a.UserID, a.ID)
}

type BulkDeleteAccounts struct {
	UserID string
	IDs    []string

	Deleted []string
}

func (a *BulkDeleteAccounts) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Accounts.BulkDelete(ctx, a.UserID, a.IDs)
	if err != nil {
		return err
	}
	a.Deleted = deleted
	return nil
}
