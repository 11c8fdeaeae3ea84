package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-dashboard/internal/events"
	"github.com/carson-networks/finance-dashboard/internal/operator/actions"
	"github.com/carson-networks/finance-dashboard/internal/storage/account"
)

// AccountService handles account business logic.
type AccountService struct {
	base
	reader account.IReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(reader account.IReader, b base) *AccountService {
	return &AccountService{base: b, reader: reader}
}

func (s *AccountService) List(ctx context.Context) ([]Account, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.reader.List(ctx, user)
	if err != nil {
		return nil, err
	}

	converted := make([]Account, len(rows))
	for i := range rows {
		converted[i] = accountFromStorage(&rows[i])
	}
	return converted, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (*Account, error) {
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
	converted := accountFromStorage(row)
	return &converted, nil
}

func (s *AccountService) Create(ctx context.Context, name string) (*Account, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate account id: %w", err)
	}

	action := &actions.CreateAccount{Create: account.AccountCreate{ID: id, UserID: user, Name: name}}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	s.notify(ctx, events.AccountsChanged, user, []string{id})
	converted := accountFromStorage(action.Result)
	return &converted, nil
}

func (s *AccountService) Rename(ctx context.Context, id, name string) (*Account, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrMissingID
	}

	action := &actions.RenameAccount{UserID: user, ID: id, Name: name}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translate(err)
	}

	s.notify(ctx, events.AccountsChanged, user, []string{id})
	converted := accountFromStorage(action.Result)
	return &converted, nil
}

// Delete removes the account together with its transactions.
func (s *AccountService) Delete(ctx context.Context, id string) (string, error) {
	user, err := userID(ctx)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrMissingID
	}

	if err := s.operator.Process(ctx, &actions.DeleteAccount{UserID: user, ID: id}); err != nil {
		return "", translate(err)
	}

	s.notify(ctx, events.AccountsChanged, user, []string{id})
	s.notifyAll(ctx, events.TransactionsChanged, user)
	return id, nil
}

func (s *AccountService) BulkDelete(ctx context.Context, ids []string) ([]string, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.BulkDeleteAccounts{UserID: user, IDs: ids}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	s.notify(ctx, events.AccountsChanged, user, action.Deleted)
	if len(action.Deleted) > 0 {
		s.notifyAll(ctx, events.TransactionsChanged, user)
	}
	if action.Deleted == nil {
		return []string{}, nil
	}
	return action.Deleted, nil
}
