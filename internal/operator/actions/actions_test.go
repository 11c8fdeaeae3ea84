package actions

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-dashboard/internal/storage"
	"github.com/carson-networks/finance-dashboard/internal/storage/account"
	"github.com/carson-networks/finance-dashboard/internal/storage/category"
	"github.com/carson-networks/finance-dashboard/internal/storage/transaction"
)

type tables struct {
	accounts     *account.MockIWriter
	categories   *category.MockIWriter
	transactions *transaction.MockIWriter
	writer       *storage.Writer
}

func newTables(t *testing.T) tables {
	t.Helper()
	tb := tables{
		accounts:     account.NewMockIWriter(t),
		categories:   category.NewMockIWriter(t),
		transactions: transaction.NewMockIWriter(t),
	}
	tb.writer = storage.NewWriterWithTables(nil, tb.accounts, tb.categories, tb.transactions)
	return tb
}

func TestCreateTransaction_ReadsBackCreatedRow(t *testing.T) {
	tb := newTables(t)
	create := transaction.TransactionCreate{
		ID:        "tx_1",
		UserID:    "user_1",
		AccountID: "acc_1",
		Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Payee:     "Grocer",
		Amount:    -15500,
	}
	row := &transaction.Transaction{ID: "tx_1", Account: "Checking", Amount: -15500}

	tb.transactions.On("Insert", mock.Anything, &create).Return(nil)
	tb.transactions.On("FindByID", mock.Anything, "user_1", "tx_1").Return(row, nil)

	action := &CreateTransaction{Create: create}
	err := action.Perform(context.Background(), tb.writer)

	require.NoError(t, err)
	assert.Equal(t, row, action.Result)
}

func TestCreateTransaction_ForeignAccount(t *testing.T) {
	tb := newTables(t)
	tb.transactions.On("Insert", mock.Anything, mock.Anything).Return(sql.ErrNoRows)

	action := &CreateTransaction{Create: transaction.TransactionCreate{ID: "tx_1", UserID: "user_1", AccountID: "acc_other"}}
	err := action.Perform(context.Background(), tb.writer)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, action.Result)
}

func TestUpdateTransaction_NotOwned(t *testing.T) {
	tb := newTables(t)
	tb.transactions.On("Update", mock.Anything, mock.Anything).Return(sql.ErrNoRows)

	action := &UpdateTransaction{Update: transaction.TransactionUpdate{ID: "tx_1", UserID: "user_1"}}
	err := action.Perform(context.Background(), tb.writer)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	tb.transactions.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestBulkDeleteTransactions_RecordsDeleted(t *testing.T) {
	tb := newTables(t)
	tb.transactions.On("BulkDelete", mock.Anything, "user_1", []string{"a", "b"}).Return([]string{"a"}, nil)

	action := &BulkDeleteTransactions{UserID: "user_1", IDs: []string{"a", "b"}}
	require.NoError(t, action.Perform(context.Background(), tb.writer))

	assert.Equal(t, []string{"a"}, action.Deleted)
}

func TestRenameAccount(t *testing.T) {
	tb := newTables(t)
	tb.accounts.On("Rename", mock.Anything, "user_1", "acc_1", "Savings").Return(nil)
	tb.accounts.On("FindByID", mock.Anything, "user_1", "acc_1").Return(&account.Account{ID: "acc_1", Name: "Savings"}, nil)

	action := &RenameAccount{UserID: "user_1", ID: "acc_1", Name: "Savings"}
	require.NoError(t, action.Perform(context.Background(), tb.writer))

	assert.Equal(t, "Savings", action.Result.Name)
}

func TestDeleteCategory(t *testing.T) {
	tb := newTables(t)
	tb.categories.On("Delete", mock.Anything, "user_1", "cat_1").Return(sql.ErrNoRows)

	err := (&DeleteCategory{UserID: "user_1", ID: "cat_1"}).Perform(context.Background(), tb.writer)

	assert.ErrorIs(t, err, sql.ErrNoRows)
}
