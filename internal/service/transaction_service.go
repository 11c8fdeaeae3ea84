package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omitnull"

	"github.com/carson-networks/finance-dashboard/internal/events"
	"github.com/carson-networks/finance-dashboard/internal/operator/actions"
	"github.com/carson-networks/finance-dashboard/internal/storage/transaction"
)

// TransactionService handles transaction business logic. Every call resolves
// the caller from the context and scopes storage access to their accounts.
type TransactionService struct {
	base
	reader transaction.IReader
	loc    *time.Location
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader transaction.IReader, b base, loc *time.Location) *TransactionService {
	if loc == nil {
		loc = time.UTC
	}
	return &TransactionService{base: b, reader: reader, loc: loc}
}

// List returns the caller's transactions in the query's range, newest first.
func (s *TransactionService) List(ctx context.Context, query RangeQuery) ([]Transaction, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	dateRange, err := ResolveRange(query.From, query.To, s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	rows, err := s.reader.List(ctx, rangeFilter(user, dateRange, query.AccountID))
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i := range rows {
		converted[i] = transactionFromStorage(&rows[i])
	}
	return converted, nil
}

func (s *TransactionService) Get(ctx context.Context, id string) (*Transaction, error) {
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
	converted := transactionFromStorage(row)
	return &converted, nil
}

// Create stores a transaction under one of the caller's accounts. An account
// or category the caller does not own is reported as ErrNotFound.
func (s *TransactionService) Create(ctx context.Context, input TransactionInput) (*Transaction, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate transaction id: %w", err)
	}

	action := &actions.CreateTransaction{
		Create: transaction.TransactionCreate{
			ID:         id,
			UserID:     user,
			Date:       input.Date,
			Payee:      input.Payee,
			Amount:     input.Amount,
			Notes:      null.FromPtr(input.Notes),
			AccountID:  input.AccountID,
			CategoryID: null.FromPtr(input.CategoryID),
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translate(err)
	}

	s.notify(ctx, events.TransactionsChanged, user, []string{id})
	converted := transactionFromStorage(action.Result)
	return &converted, nil
}

// Update replaces every mutable field; nil optional fields are cleared.
func (s *TransactionService) Update(ctx context.Context, id string, input TransactionInput) (*Transaction, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrMissingID
	}

	action := &actions.UpdateTransaction{
		Update: transaction.TransactionUpdate{
			ID:         id,
			UserID:     user,
			Date:       input.Date,
			Payee:      input.Payee,
			Amount:     input.Amount,
			Notes:      omitnull.FromPtr(input.Notes),
			AccountID:  input.AccountID,
			CategoryID: omitnull.FromPtr(input.CategoryID),
		},
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translate(err)
	}

	s.notify(ctx, events.TransactionsChanged, user, []string{id})
	converted := transactionFromStorage(action.Result)
	return &converted, nil
}

func (s *TransactionService) Delete(ctx context.Context, id string) (string, error) {
	user, err := userID(ctx)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrMissingID
	}

	if err := s.operator.Process(ctx, &actions.DeleteTransaction{UserID: user, ID: id}); err != nil {
		return "", translate(err)
	}

	s.notify(ctx, events.TransactionsChanged, user, []string{id})
	return id, nil
}

// BulkDelete deletes the requested transactions the caller owns and returns
// their ids. Other ids are skipped without error.
func (s *TransactionService) BulkDelete(ctx context.Context, ids []string) ([]string, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.BulkDeleteTransactions{UserID: user, IDs: ids}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	s.notify(ctx, events.TransactionsChanged, user, action.Deleted)
	if action.Deleted == nil {
		return []string{}, nil
	}
	return action.Deleted, nil
}

func rangeFilter(user string, dateRange DateRange, accountID string) *transaction.Filter {
	filter := &transaction.Filter{
		UserID: user,
		From:   dateRange.Start,
		To:     dateRange.EndExclusive(),
	}
	if accountID != "" {
		filter.AccountID = &accountID
	}
	return filter
}
