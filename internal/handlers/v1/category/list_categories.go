package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/logging"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

// ListCategoriesResponse is the {data: Category[]} envelope.
type ListCategoriesResponse struct {
	Data []Category `json:"data"`
}

type ListCategoriesOutput struct {
	Body ListCategoriesResponse
}

// categoryLister is the interface for listing categorys.
type categoryLister interface {
	List(ctx context.Context) ([]service.Category, error)
}

// ListCategoriesHandler handles GET /categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Description: "Returns the caller's categories ordered by name.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	categorys, err := logging.Timed(logData, "listCategoriesMs", func() ([]service.Category, error) {
		return h.CategoryService.List(ctx)
	})
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to list categories")
	}

	if logData != nil {
		logData.AddData("categoryCount", len(categorys))
	}

	resp := ListCategoriesResponse{Data: make([]Category, len(categorys))}
	for i := range categorys {
		resp.Data[i] = fromService(&categorys[i])
	}
	return &ListCategoriesOutput{Body: resp}, nil
}
