package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

// mockTransactionService is a mock of every transaction handler dependency.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) List(ctx context.Context, query service.RangeQuery) ([]service.Transaction, error) {
	args := m.Called(ctx, query)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) Get(ctx context.Context, id string) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Create(ctx context.Context, input service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, input)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Update(ctx context.Context, id string, input service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, id, input)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockTransactionService) BulkDelete(ctx context.Context, ids []string) ([]string, error) {
	args := m.Called(ctx, ids)
	deleted, _ := args.Get(0).([]string)
	return deleted, args.Error(1)
}

// newTestAPI registers every transaction handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewCreateTransactionHandler(svc, time.UTC).Register(api)
	NewUpdateTransactionHandler(svc, time.UTC).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	NewBulkDeleteTransactionsHandler(svc).Register(api)
	return api
}

func sampleTransaction() *service.Transaction {
	category := "Food"
	categoryID := "cat_1"
	return &service.Transaction{
		ID:         "tx_1",
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Payee:      "Grocer",
		Amount:     -15500,
		AccountID:  "acc_1",
		Account:    "Checking",
		CategoryID: &categoryID,
		Category:   &category,
	}
}

func validBody() map[string]any {
	return map[string]any{
		"date":      "2024-01-01",
		"payee":     "Grocer",
		"amount":    -15500,
		"accountId": "acc_1",
	}
}

// -- List --

func TestHTTP_ListTransactions_Success(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("List", mock.Anything, service.RangeQuery{From: "2024-01-01", To: "2024-01-03", AccountID: "acc_1"}).
		Return([]service.Transaction{*sampleTransaction()}, nil)

	resp := newTestAPI(t, svc).Get("/transactions?from=2024-01-01&to=2024-01-03&accountId=acc_1")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "tx_1", body.Data[0].ID)
	assert.Equal(t, int64(-15500), body.Data[0].Amount)
	assert.Equal(t, "-$15.50", body.Data[0].AmountFormatted)
	assert.Equal(t, "Checking", body.Data[0].Account)
	assert.Equal(t, "Food", *body.Data[0].Category)
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_EmptyIsArray(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("List", mock.Anything, service.RangeQuery{}).Return([]service.Transaction{}, nil)

	resp := newTestAPI(t, svc).Get("/transactions")

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []any{}, body["data"])
}

func TestHTTP_ListTransactions_Unauthorized(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("List", mock.Anything, mock.Anything).Return(nil, service.ErrUnauthorized)

	resp := newTestAPI(t, svc).Get("/transactions")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_ListTransactions_MalformedDate(t *testing.T) {
	svc := new(mockTransactionService)

	resp := newTestAPI(t, svc).Get("/transactions?from=01-02-2024")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHTTP_ListTransactions_ImpossibleDate(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("List", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidDate)

	resp := newTestAPI(t, svc).Get("/transactions?from=2024-13-40")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

// -- Get --

func TestHTTP_GetTransaction_Success(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Get", mock.Anything, "tx_1").Return(sampleTransaction(), nil)

	resp := newTestAPI(t, svc).Get("/transactions/tx_1")

	require.Equal(t, http.StatusOK, resp.Code)
	var body TransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tx_1", body.Data.ID)
	assert.Equal(t, "2024-01-01T00:00:00Z", body.Data.Date)
}

func TestHTTP_GetTransaction_NotFoundAndForeignLookAlike(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Get", mock.Anything, "tx_missing").Return(nil, service.ErrNotFound)
	svc.On("Get", mock.Anything, "tx_foreign").Return(nil, service.ErrNotFound)
	api := newTestAPI(t, svc)

	missing := api.Get("/transactions/tx_missing")
	foreign := api.Get("/transactions/tx_foreign")

	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, http.StatusNotFound, foreign.Code)
	assert.JSONEq(t, missing.Body.String(), foreign.Body.String())
}

// -- Create --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Amount == -15500 &&
			in.Payee == "Grocer" &&
			in.AccountID == "acc_1" &&
			in.Notes == nil &&
			in.Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	})).Return(sampleTransaction(), nil)

	resp := newTestAPI(t, svc).Post("/transactions", validBody())

	require.Equal(t, http.StatusCreated, resp.Code)
	var body TransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tx_1", body.Data.ID)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingField(t *testing.T) {
	svc := new(mockTransactionService)
	body := validBody()
	delete(body, "payee")

	resp := newTestAPI(t, svc).Post("/transactions", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "payee")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHTTP_CreateTransaction_BadDate(t *testing.T) {
	svc := new(mockTransactionService)
	body := validBody()
	body["date"] = "next tuesday"

	resp := newTestAPI(t, svc).Post("/transactions", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "body.date")
}

func TestHTTP_CreateTransaction_ForeignAccountOrCategory(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Post("/transactions", validBody())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Account or category not found")
}

// -- Update --

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	svc := new(mockTransactionService)
	body := validBody()
	body["notes"] = "weekly shop"
	svc.On("Update", mock.Anything, "tx_1", mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Notes != nil && *in.Notes == "weekly shop"
	})).Return(sampleTransaction(), nil)

	resp := newTestAPI(t, svc).Patch("/transactions/tx_1", body)

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Update", mock.Anything, "tx_foreign", mock.Anything).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Patch("/transactions/tx_foreign", validBody())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- Delete --

func TestHTTP_DeleteTransaction(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("Delete", mock.Anything, "tx_1").Return("tx_1", nil)
	svc.On("Delete", mock.Anything, "tx_foreign").Return("", service.ErrNotFound)
	api := newTestAPI(t, svc)

	resp := api.Delete("/transactions/tx_1")
	require.Equal(t, http.StatusOK, resp.Code)
	var body common.IDResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tx_1", body.Data.ID)

	resp = api.Delete("/transactions/tx_foreign")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_BulkDeleteTransactions_ReturnsOwnedSubset(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("BulkDelete", mock.Anything, []string{"owned_1", "foreign_2"}).Return([]string{"owned_1"}, nil)

	resp := newTestAPI(t, svc).Post("/transactions/bulk-delete", common.BulkDeleteBody{IDs: []string{"owned_1", "foreign_2"}})

	require.Equal(t, http.StatusOK, resp.Code)
	var body common.IDListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []common.ID{{ID: "owned_1"}}, body.Data)
}
