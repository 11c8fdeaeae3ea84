package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-dashboard/internal/events"
	"github.com/carson-networks/finance-dashboard/internal/money"
	"github.com/carson-networks/finance-dashboard/internal/storage/transaction"
)

// -- List tests --

func TestList_Unauthorized(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Transaction.List(context.Background(), RangeQuery{})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestList_DefaultsToLastThirtyDays(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("List", mock.Anything, filterFor(testUser, day(2024, 1, 16), day(2024, 2, 16))).
		Return([]transaction.Transaction{}, nil)

	txs, err := h.svc.Transaction.List(userCtx(), RangeQuery{})

	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestList_InclusiveRangeAndAccount(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.Filter) bool {
		return f.UserID == testUser &&
			f.From.Equal(day(2024, 1, 1)) &&
			f.To.Equal(day(2024, 1, 4)) &&
			f.AccountID != nil && *f.AccountID == "acc_1"
	})).Return([]transaction.Transaction{
		{ID: "tx_2", Payee: "Employer", Amount: 100000, AccountID: "acc_1", Account: "Checking"},
		{ID: "tx_1", Payee: "Grocer", Amount: -15500, AccountID: "acc_1", Account: "Checking", CategoryID: null.From("cat_1"), Category: null.From("Food")},
	}, nil)

	txs, err := h.svc.Transaction.List(userCtx(), RangeQuery{From: "2024-01-01", To: "2024-01-03", AccountID: "acc_1"})

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "tx_2", txs[0].ID)
	assert.Nil(t, txs[0].Category)
	assert.Equal(t, "Food", *txs[1].Category)
	assert.Equal(t, "Checking", txs[1].Account)
}

func TestList_InvalidDate(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Transaction.List(userCtx(), RangeQuery{From: "01/02/2024"})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

// -- Get tests --

func TestGet_NotFoundHidesOwnership(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("FindByID", mock.Anything, testUser, "tx_foreign").Return(nil, sql.ErrNoRows)

	_, err := h.svc.Transaction.Get(userCtx(), "tx_foreign")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_MissingID(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Transaction.Get(userCtx(), "")

	assert.ErrorIs(t, err, ErrMissingID)
}

func TestGet_StorageErrorPassesThrough(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("FindByID", mock.Anything, testUser, "tx_1").Return(nil, errors.New("connection refused"))

	_, err := h.svc.Transaction.Get(userCtx(), "tx_1")

	assert.EqualError(t, err, "connection refused")
}

// -- Mutation tests --

func TestCreate_StoresMilliunits(t *testing.T) {
	h := newHarness(t)
	amount := money.ToMilliunits(decimal.RequireFromString("-15.50"))

	h.transactions.On("Insert", mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.ID == "new_id" && c.UserID == testUser && c.AccountID == "acc_1" &&
			c.Amount == -15500 && c.Notes.IsNull() && c.CategoryID.GetOr("") == "cat_1"
	})).Return(nil)
	h.transactions.On("FindByID", mock.Anything, testUser, "new_id").
		Return(&transaction.Transaction{ID: "new_id", Amount: -15500, AccountID: "acc_1", Account: "Checking"}, nil)

	tx, err := h.svc.Transaction.Create(userCtx(), TransactionInput{
		Date:       day(2024, 1, 1),
		Payee:      "Grocer",
		Amount:     amount,
		AccountID:  "acc_1",
		CategoryID: strPtr("cat_1"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(-15500), tx.Amount)
	assert.Equal(t, "-$15.50", money.FormatMilliunits(tx.Amount))

	recorded := h.events.Events()
	require.Len(t, recorded, 1)
	assert.Equal(t, events.TransactionsChanged, recorded[0].Type)
	assert.Equal(t, []string{"new_id"}, recorded[0].IDs)
	assert.Equal(t, testUser, recorded[0].UserID)
}

func TestCreate_ForeignAccountIsNotFound(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("Insert", mock.Anything, mock.Anything).Return(sql.ErrNoRows)

	_, err := h.svc.Transaction.Create(userCtx(), TransactionInput{AccountID: "acc_other", Payee: "x"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, h.events.Events())
}

func TestCreate_Unauthorized(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Transaction.Create(context.Background(), TransactionInput{})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdate_ClearsOmittedOptionalFields(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("Update", mock.Anything, mock.MatchedBy(func(u *transaction.TransactionUpdate) bool {
		return u.ID == "tx_1" && u.UserID == testUser && u.Notes.IsNull() && u.CategoryID.IsNull() && u.Payee == "Renamed"
	})).Return(nil)
	h.transactions.On("FindByID", mock.Anything, testUser, "tx_1").
		Return(&transaction.Transaction{ID: "tx_1", Payee: "Renamed"}, nil)

	tx, err := h.svc.Transaction.Update(userCtx(), "tx_1", TransactionInput{Payee: "Renamed", AccountID: "acc_1"})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", tx.Payee)
}

func TestUpdate_ForeignRowIsNotFound(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("Update", mock.Anything, mock.Anything).Return(sql.ErrNoRows)

	_, err := h.svc.Transaction.Update(userCtx(), "tx_foreign", TransactionInput{AccountID: "acc_1"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, h.events.Events())
}

func TestDelete(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("Delete", mock.Anything, testUser, "tx_1").Return(nil)

	id, err := h.svc.Transaction.Delete(userCtx(), "tx_1")

	require.NoError(t, err)
	assert.Equal(t, "tx_1", id)
	assert.Len(t, h.events.Events(), 1)
}

func TestDelete_ForeignRowIsNotFound(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("Delete", mock.Anything, testUser, "tx_foreign").Return(sql.ErrNoRows)

	_, err := h.svc.Transaction.Delete(userCtx(), "tx_foreign")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBulkDelete_ReturnsOwnedSubset(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("BulkDelete", mock.Anything, testUser, []string{"owned_1", "foreign_2"}).
		Return([]string{"owned_1"}, nil)

	deleted, err := h.svc.Transaction.BulkDelete(userCtx(), []string{"owned_1", "foreign_2"})

	require.NoError(t, err)
	assert.Equal(t, []string{"owned_1"}, deleted)
	require.Len(t, h.events.Events(), 1)
	assert.Equal(t, []string{"owned_1"}, h.events.Events()[0].IDs)
}

func TestBulkDelete_NothingOwned(t *testing.T) {
	h := newHarness(t)
	h.transactions.On("BulkDelete", mock.Anything, testUser, []string{"foreign"}).Return(nil, nil)

	deleted, err := h.svc.Transaction.BulkDelete(userCtx(), []string{"foreign"})

	require.NoError(t, err)
	assert.NotNil(t, deleted)
	assert.Empty(t, deleted)
	assert.Empty(t, h.events.Events())
}

func TestBulkDelete_OperatorError(t *testing.T) {
	h := newHarness(t)
	h.processor.err = errors.New("queue closed")

	_, err := h.svc.Transaction.BulkDelete(userCtx(), []string{"a"})

	assert.EqualError(t, err, "queue closed")
}

// ctxErrPublisher records the context state each event is published with.
type ctxErrPublisher struct {
	errs []error
}

func (p *ctxErrPublisher) Publish(ctx context.Context, _ events.Event) error {
	p.errs = append(p.errs, ctx.Err())
	return nil
}

func TestDelete_CommittedAfterCancelStillPublishes(t *testing.T) {
	h := newHarness(t)
	publisher := &ctxErrPublisher{}
	h.svc.Transaction.publisher = publisher
	ctx, cancel := context.WithCancel(userCtx())
	h.transactions.On("Delete", mock.Anything, testUser, "tx_1").
		Run(func(mock.Arguments) { cancel() }).
		Return(nil)

	_, err := h.svc.Transaction.Delete(ctx, "tx_1")

	require.NoError(t, err)
	assert.Equal(t, []error{nil}, publisher.errs)
}
