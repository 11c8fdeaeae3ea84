package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
)

type accountDeleter interface {
	Delete(ctx context.Context, id string) (string, error)
	BulkDelete(ctx context.Context, ids []string) ([]string, error)
}

// DeleteAccountHandler handles DELETE /accounts/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/accounts/{id}",
		Summary:     "Delete account",
		Description: "Deletes the account and every transaction in it.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *common.PathIDInput) (*common.IDOutput, error) {
	id, err := h.AccountService.Delete(ctx, input.ID)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to delete account")
	}
	return common.NewIDOutput(id), nil
}

// BulkDeleteAccountsHandler handles POST /accounts/bulk-delete.
type BulkDeleteAccountsHandler struct {
	AccountService accountDeleter
}

func NewBulkDeleteAccountsHandler(svc accountDeleter) *BulkDeleteAccountsHandler {
	return &BulkDeleteAccountsHandler{AccountService: svc}
}

func (h *BulkDeleteAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bulk-delete-accounts",
		Method:      http.MethodPost,
		Path:        "/accounts/bulk-delete",
		Summary:     "Bulk delete accounts",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *BulkDeleteAccountsHandler) handle(ctx context.Context, input *common.BulkDeleteInput) (*common.IDListOutput, error) {
	deleted, err := h.AccountService.BulkDelete(ctx, input.Body.IDs)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to delete accounts")
	}
	return common.NewIDListOutput(deleted), nil
}
