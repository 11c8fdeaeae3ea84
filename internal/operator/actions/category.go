package actions

import (
	"context"

	"github.com/carson-networks/finance-dashboard/internal/storage"
	"github.com/carson-networks/finance-dashboard/internal/storage/category"
)

type CreateCategory struct {
	Create category.CategoryCreate

	Result *category.Category
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Categories.Insert(ctx, &a.Create); err != nil {
		return err
	}

	created, err := writer.Categories.FindByID(ctx, a.Create.UserID, a.Create.ID)
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}

type RenameCategory struct {
	UserID string
	ID     string
	Name   string

	Result *category.Category
}

func (a *RenameCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Categories.Rename(ctx, a.UserID, a.ID, a.Name); err != nil {
		return err
	}

	renamed, err := writer.Categories.FindByID(ctx, a.UserID, a.ID)
	if err != nil {
		return err
	}
	a.Result = renamed
	return nil
}

type DeleteCategory struct {
	UserID string
	ID     string
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Categories.Delete(ctx, a.UserID, a.ID)
}

type BulkDeleteCategories struct {
	UserID string
	IDs    []string

	Deleted []string
}

func (a *BulkDeleteCategories) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Categories.BulkDelete(ctx, a.UserID, a.IDs)
	if err != nil {
		return err
	}
	a.Deleted = deleted
	return nil
}
