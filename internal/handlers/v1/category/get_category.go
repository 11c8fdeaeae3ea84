package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

type categoryGetter interface {
	Get(ctx context.Context, id string) (*service.Category, error)
}

// GetCategoryHandler handles GET /categories/{id}.
type GetCategoryHandler struct {
	CategoryService categoryGetter
}

func NewGetCategoryHandler(svc categoryGetter) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/categories/{id}",
		Summary:     "Get category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *common.PathIDInput) (*CategoryOutput, error) {
	category, err := h.CategoryService.Get(ctx, input.ID)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to get category")
	}
	return &CategoryOutput{Body: CategoryResponse{Data: fromService(category)}}, nil
}
