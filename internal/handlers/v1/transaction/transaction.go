package transaction

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/money"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

const resourceName = "Transaction"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string  `json:"id" doc:"Transaction id"`
	Date            string  `json:"date" format:"date-time" doc:"RFC3339 transaction date"`
	Payee           string  `json:"payee" doc:"Who was paid or who paid"`
	Amount          int64   `json:"amount" doc:"Signed amount in milliunits, negative for expenses"`
	AmountFormatted string  `json:"amountFormatted" doc:"Amount as US currency, e.g. -$15.50"`
	Notes           *string `json:"notes" doc:"Free-form notes"`
	AccountID       string  `json:"accountId" doc:"Owning account id"`
	Account         string  `json:"account" doc:"Owning account name"`
	CategoryID      *string `json:"categoryId" doc:"Category id"`
	Category        *string `json:"category" doc:"Category name"`
}

// TransactionBody is the request body for creating or replacing a transaction.
type TransactionBody struct {
	Date       string  `json:"date" minLength:"1" doc:"YYYY-MM-DD or RFC3339 date"`
	Payee      string  `json:"payee" minLength:"1" doc:"Who was paid or who paid"`
	Amount     int64   `json:"amount" doc:"Signed amount in milliunits, negative for expenses"`
	Notes      *string `json:"notes,omitempty" nullable:"true" doc:"Free-form notes"`
	AccountID  string  `json:"accountId" minLength:"1" doc:"Account id, must belong to the caller"`
	CategoryID *string `json:"categoryId,omitempty" nullable:"true" doc:"Category id, must belong to the caller"`
}

// TransactionResponse is the {data: Transaction} envelope.
type TransactionResponse struct {
	Data Transaction `json:"data"`
}

// TransactionOutput is the Huma output for single-transaction responses.
type TransactionOutput struct {
	Body TransactionResponse
}

func fromService(tx *service.Transaction) Transaction {
	return Transaction{
		ID:              tx.ID,
		Date:            tx.Date.Format(time.RFC3339),
		Payee:           tx.Payee,
		Amount:          tx.Amount,
		AmountFormatted: money.FormatMilliunits(tx.Amount),
		Notes:           tx.Notes,
		AccountID:       tx.AccountID,
		Account:         tx.Account,
		CategoryID:      tx.CategoryID,
		Category:        tx.Category,
	}
}

func toInput(body *TransactionBody, loc *time.Location) (service.TransactionInput, error) {
	date, err := service.ParseDate(body.Date, loc)
	if err != nil {
		return service.TransactionInput{}, huma.Error422UnprocessableEntity("validation failed", &huma.ErrorDetail{
			Message:  err.Error(),
			Location: "body.date",
			Value:    body.Date,
		})
	}

	return service.TransactionInput{
		Date:       date,
		Payee:      body.Payee,
		Amount:     body.Amount,
		Notes:      body.Notes,
		AccountID:  body.AccountID,
		CategoryID: body.CategoryID,
	}, nil
}

// Register registers every transaction endpoint with the Huma API.
func Register(api huma.API, svc *service.TransactionService, loc *time.Location) {
	NewListTransactionsHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewCreateTransactionHandler(svc, loc).Register(api)
	NewUpdateTransactionHandler(svc, loc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	NewBulkDeleteTransactionsHandler(svc).Register(api)
}
