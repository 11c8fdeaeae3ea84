package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category id"`
	Body CategoryBody
}

type categoryRenamer interface {
	Rename(ctx context.Context, id, name string) (*service.Category, error)
}

// UpdateCategoryHandler handles PATCH /categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryRenamer
}

func NewUpdateCategoryHandler(svc categoryRenamer) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/categories/{id}",
		Summary:     "Rename category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	category, err := h.CategoryService.Rename(ctx, input.ID, input.Body.Name)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to update category")
	}
	return &CategoryOutput{Body: CategoryResponse{Data: fromService(category)}}, nil
}
