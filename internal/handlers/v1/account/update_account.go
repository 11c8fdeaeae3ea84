package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account id"`
	Body AccountBody
}

type accountRenamer interface {
	Rename(ctx context.Context, id, name string) (*service.Account, error)
}

// UpdateAccountHandler handles PATCH /accounts/{id}.
type UpdateAccountHandler struct {
	AccountService accountRenamer
}

func NewUpdateAccountHandler(svc accountRenamer) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/accounts/{id}",
		Summary:     "Rename account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*AccountOutput, error) {
	account, err := h.AccountService.Rename(ctx, input.ID, input.Body.Name)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to update account")
	}
	return &AccountOutput{Body: AccountResponse{Data: fromService(account)}}, nil
}
