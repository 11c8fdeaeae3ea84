package account

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

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) List(ctx context.Context) ([]service.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]service.Account)
	return accounts, args.Error(1)
}

func (m *mockAccountService) Get(ctx context.Context, id string) (*service.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*service.Account)
	return account, args.Error(1)
}

func (m *mockAccountService) Create(ctx context.Context, name string) (*service.Account, error) {
	args := m.Called(ctx, name)
	account, _ := args.Get(0).(*service.Account)
	return account, args.Error(1)
}

func (m *mockAccountService) Rename(ctx context.Context, id, name string) (*service.Account, error) {
	args := m.Called(ctx, id, name)
	account, _ := args.Get(0).(*service.Account)
	return account, args.Error(1)
}

func (m *mockAccountService) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockAccountService) BulkDelete(ctx context.Context, ids []string) ([]string, error) {
	args := m.Called(ctx, ids)
	deleted, _ := args.Get(0).([]string)
	return deleted, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListAccountsHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewCreateAccountHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	NewBulkDeleteAccountsHandler(svc).Register(api)
	return api
}

var checking = &service.Account{ID: "acc_1", Name: "Checking", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

func TestHTTP_ListAccounts(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("List", mock.Anything).Return([]service.Account{*checking}, nil)

	resp := newTestAPI(t, svc).Get("/accounts")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Checking", body.Data[0].Name)
	assert.Equal(t, "2024-01-01T00:00:00Z", body.Data[0].CreatedAt)
}

func TestHTTP_CreateAccount(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Create", mock.Anything, "Checking").Return(checking, nil)

	resp := newTestAPI(t, svc).Post("/accounts", AccountBody{Name: "Checking"})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body AccountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "acc_1", body.Data.ID)
}

func TestHTTP_CreateAccount_EmptyName(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post("/accounts", AccountBody{Name: ""})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Get", mock.Anything, "acc_other").Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Get("/accounts/acc_other")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateAccount(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Rename", mock.Anything, "acc_1", "Main").Return(&service.Account{ID: "acc_1", Name: "Main"}, nil)

	resp := newTestAPI(t, svc).Patch("/accounts/acc_1", AccountBody{Name: "Main"})

	require.Equal(t, http.StatusOK, resp.Code)
	var body AccountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Main", body.Data.Name)
}

func TestHTTP_DeleteAccounts(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("Delete", mock.Anything, "acc_1").Return("acc_1", nil)
	svc.On("BulkDelete", mock.Anything, []string{"acc_1", "acc_other"}).Return([]string{"acc_1"}, nil)
	api := newTestAPI(t, svc)

	resp := api.Delete("/accounts/acc_1")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.Post("/accounts/bulk-delete", common.BulkDeleteBody{IDs: []string{"acc_1", "acc_other"}})
	require.Equal(t, http.StatusOK, resp.Code)
	var body common.IDListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []common.ID{{ID: "acc_1"}}, body.Data)
}
