package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/logging"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

// ListAccountsResponse is the {data: Account[]} envelope.
type ListAccountsResponse struct {
	Data []Account `json:"data"`
}

type ListAccountsOutput struct {
	Body ListAccountsResponse
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	List(ctx context.Context) ([]service.Account, error)
}

// ListAccountsHandler handles GET /accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/accounts",
		Summary:     "List accounts",
		Description: "Returns the caller's accounts ordered by name.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, _ *struct{}) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	accounts, err := logging.Timed(logData, "listAccountsMs", func() ([]service.Account, error) {
		return h.AccountService.List(ctx)
	})
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to list accounts")
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := ListAccountsResponse{Data: make([]Account, len(accounts))}
	for i := range accounts {
		resp.Data[i] = fromService(&accounts[i])
	}
	return &ListAccountsOutput{Body: resp}, nil
}
