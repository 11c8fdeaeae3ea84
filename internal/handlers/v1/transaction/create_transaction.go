package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/logging"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body TransactionBody
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, input service.TransactionInput) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
	Location           *time.Location
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator, loc *time.Location) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc, Location: loc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create transaction",
		Description:   "Creates a transaction in one of the caller's accounts. Responds 404 when the account or the category is missing or not owned by the caller.",
		Tags:          []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*TransactionOutput, error) {
	txInput, err := toInput(&input.Body, h.Location)
	if err != nil {
		return nil, err
	}

	tx, err := logging.Timed(logging.GetLogData(ctx), "createTransactionMs", func() (*service.Transaction, error) {
		return h.TransactionService.Create(ctx, txInput)
	})
	if err != nil {
		return nil, common.Error(err, "Account or category", "failed to create transaction")
	}

	return &TransactionOutput{Body: TransactionResponse{Data: fromService(tx)}}, nil
}
