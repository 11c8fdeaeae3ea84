package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

type transactionGetter interface {
	Get(ctx context.Context, id string) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/transactions/{id}",
		Summary:     "Get transaction",
		Description: "Returns one of the caller's transactions. Unknown and foreign ids are both 404.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *common.PathIDInput) (*TransactionOutput, error) {
	tx, err := h.TransactionService.Get(ctx, input.ID)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to get transaction")
	}
	return &TransactionOutput{Body: TransactionResponse{Data: fromService(tx)}}, nil
}
