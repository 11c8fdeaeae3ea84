package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-dashboard/internal/events"
	"github.com/carson-networks/finance-dashboard/internal/operator/actions"
	"github.com/carson-networks/finance-dashboard/internal/storage/category"
)

// CategoryService handles category business logic.
type CategoryService struct {
	base
	reader category.IReader
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(reader category.IReader, b base) *CategoryService {
	return &CategoryService{base: b, reader: reader}
}

func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.reader.List(ctx, user)
	if err != nil {
		return nil, err
	}

	converted := make([]Category, len(rows))
	for i := range rows {
		converted[i] = categoryFromStorage(&rows[i])
	}
	return converted, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*Category, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrMissingID
	}

	row, err := s.reader.FindByID(ctx, user, id)
	if err != nil {
		return nil, translate(err)
	}
	converted := categoryFromStorage(row)
	return &converted, nil
}

func (s *CategoryService) Create(ctx context.Context, name string) (*Category, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate category id: %w", err)
	}

	action := &actions.CreateCategory{Create: category.CategoryCreate{ID: id, UserID: user, Name: name}}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	s.notify(ctx, events.CategoriesChanged, user, []string{id})
	converted := categoryFromStorage(action.Result)
	return &converted, nil
}

func (s *CategoryService) Rename(ctx context.Context, id, name string) (*Category, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrMissingID
	}

	action := &actions.RenameCategory{UserID: user, ID: id, Name: name}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translate(err)
	}

	s.notify(ctx, events.CategoriesChanged, user, []string{id})
	converted := categoryFromStorage(action.Result)
	return &converted, nil
}

// Delete removes the category; its transactions become uncategorized.
func (s *CategoryService) Delete(ctx context.Context, id string) (string, error) {
	user, err := userID(ctx)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrMissingID
	}

	if err := s.operator.Process(ctx, &actions.DeleteCategory{UserID: user, ID: id}); err != nil {
		return "", translate(err)
	}

	s.notify(ctx, events.CategoriesChanged, user, []string{id})
	s.notifyAll(ctx, events.TransactionsChanged, user)
	return id, nil
}

func (s *CategoryService) BulkDelete(ctx context.Context, ids []string) ([]string, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.BulkDeleteCategories{UserID: user, IDs: ids}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	s.notify(ctx, events.CategoriesChanged, user, action.Deleted)
	if len(action.Deleted) > 0 {
		s.notifyAll(ctx, events.TransactionsChanged, user)
	}
	if action.Deleted == nil {
		return []string{}, nil
	}
	return action.Deleted, nil
}
