package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body AccountBody
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	Create(ctx context.Context, name string) (*service.Account, error)
}

// CreateAccountHandler handles POST /accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/accounts",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create an account",
		Tags:          []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*AccountOutput, error) {
	account, err := h.AccountService.Create(ctx, input.Body.Name)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to create account")
	}
	return &AccountOutput{Body: AccountResponse{Data: fromService(account)}}, nil
}
