package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

type accountGetter interface {
	Get(ctx context.Context, id string) (*service.Account, error)
}

// GetAccountHandler handles GET /accounts/{id}.
type GetAccountHandler struct {
	AccountService accountGetter
}

func NewGetAccountHandler(svc accountGetter) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/accounts/{id}",
		Summary:     "Get account",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *common.PathIDInput) (*AccountOutput, error) {
	account, err := h.AccountService.Get(ctx, input.ID)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to get account")
	}
	return &AccountOutput{Body: AccountResponse{Data: fromService(account)}}, nil
}
