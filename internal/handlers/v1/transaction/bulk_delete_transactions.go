package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/logging"
)

type transactionBulkDeleter interface {
	BulkDelete(ctx context.Context, ids []string) ([]string, error)
}

// BulkDeleteTransactionsHandler handles POST /transactions/bulk-delete.
type BulkDeleteTransactionsHandler struct {
	TransactionService transactionBulkDeleter
}

func NewBulkDeleteTransactionsHandler(svc transactionBulkDeleter) *BulkDeleteTransactionsHandler {
	return &BulkDeleteTransactionsHandler{TransactionService: svc}
}

func (h *BulkDeleteTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bulk-delete-transactions",
		Method:      http.MethodPost,
		Path:        "/transactions/bulk-delete",
		Summary:     "Bulk delete transactions",
		Description: "Deletes the requested transactions the caller owns and returns their ids.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *BulkDeleteTransactionsHandler) handle(ctx context.Context, input *common.BulkDeleteInput) (*common.IDListOutput, error) {
	deleted, err := h.TransactionService.BulkDelete(ctx, input.Body.IDs)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to delete transactions")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("requestedCount", len(input.Body.IDs))
		logData.AddData("deletedCount", len(deleted))
	}
	return common.NewIDListOutput(deleted), nil
}
