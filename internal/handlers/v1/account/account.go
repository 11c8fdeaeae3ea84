package account

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/service"
)

const resourceName = "Account"

// Account is the API response model for an account.
type Account struct {
	ID         string  `json:"id" doc:"Account id"`
	Name       string  `json:"name" doc:"Account name"`
	ExternalID *string `json:"externalId" doc:"Id in an external system the account was imported from"`
	CreatedAt  string  `json:"createdAt" format:"date-time" doc:"RFC3339 creation time"`
}

// AccountBody is the request body for creating or renaming an account.
type AccountBody struct {
	Name string `json:"name" minLength:"1" maxLength:"200" doc:"Account name"`
}

// AccountResponse is the {data: Account} envelope.
type AccountResponse struct {
	Data Account `json:"data"`
}

type AccountOutput struct {
	Body AccountResponse
}

func fromService(a *service.Account) Account {
	return Account{
		ID:         a.ID,
		Name:       a.Name,
		ExternalID: a.ExternalID,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}

// Register registers every account endpoint with the Huma API.
func Register(api huma.API, svc *service.AccountService) {
	NewListAccountsHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewCreateAccountHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	NewBulkDeleteAccountsHandler(svc).Register(api)
}
