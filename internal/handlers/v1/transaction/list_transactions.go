package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/logging"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	From      string `query:"from" pattern:"^[0-9]{4}-[0-9]{2}-[0-9]{2}$" doc:"First day, inclusive (YYYY-MM-DD). Defaults to 30 days before to"`
	To        string `query:"to" pattern:"^[0-9]{4}-[0-9]{2}-[0-9]{2}$" doc:"Last day, inclusive (YYYY-MM-DD). Defaults to today"`
	AccountID string `query:"accountId" doc:"Only transactions of this account"`
}

// ListTransactionsResponse is the {data: Transaction[]} envelope.
type ListTransactionsResponse struct {
	Data []Transaction `json:"data"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponse
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	List(ctx context.Context, query service.RangeQuery) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns the caller's transactions in an inclusive date range, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	transactions, err := logging.Timed(logData, "listTransactionsMs", func() ([]service.Transaction, error) {
		return h.TransactionService.List(ctx, service.RangeQuery{
			From:      input.From,
			To:        input.To,
			AccountID: input.AccountID,
		})
	})
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponse{Data: make([]Transaction, len(transactions))}
	for i := range transactions {
		resp.Data[i] = fromService(&transactions[i])
	}
	return &ListTransactionsOutput{Body: resp}, nil
}
