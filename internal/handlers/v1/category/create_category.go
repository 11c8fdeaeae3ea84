package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CategoryBody
}

// categoryCreator is the interface for creating categorys.
type categoryCreator interface {
	Create(ctx context.Context, name string) (*service.Category, error)
}

// CreateCategoryHandler handles POST /categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/categories",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create a category",
		Tags:          []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	category, err := h.CategoryService.Create(ctx, input.Body.Name)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to create category")
	}
	return &CategoryOutput{Body: CategoryResponse{Data: fromService(category)}}, nil
}
