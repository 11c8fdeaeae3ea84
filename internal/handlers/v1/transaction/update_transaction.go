package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

// UpdateTransactionInput is the Huma input for replacing a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction id"`
	Body TransactionBody
}

type transactionUpdater interface {
	Update(ctx context.Context, id string, input service.TransactionInput) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
	Location           *time.Location
}

func NewUpdateTransactionHandler(svc transactionUpdater, loc *time.Location) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc, Location: loc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Replaces every field of one of the caller's transactions. Omitted notes and category are cleared.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	txInput, err := toInput(&input.Body, h.Location)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.Update(ctx, input.ID, txInput)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to update transaction")
	}
	return &TransactionOutput{Body: TransactionResponse{Data: fromService(tx)}}, nil
}
