package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
)

type categoryDeleter interface {
	Delete(ctx context.Context, id string) (string, error)
	BulkDelete(ctx context.Context, ids []string) ([]string, error)
}

// DeleteCategoryHandler handles DELETE /categories/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/categories/{id}",
		Summary:     "Delete category",
		Description: "Deletes the category. Its transactions become uncategorized.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *common.PathIDInput) (*common.IDOutput, error) {
	id, err := h.CategoryService.Delete(ctx, input.ID)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to delete category")
	}
	return common.NewIDOutput(id), nil
}

// BulkDeleteCategoriesHandler handles POST /categories/bulk-delete.
type BulkDeleteCategoriesHandler struct {
	CategoryService categoryDeleter
}

func NewBulkDeleteCategoriesHandler(svc categoryDeleter) *BulkDeleteCategoriesHandler {
	return &BulkDeleteCategoriesHandler{CategoryService: svc}
}

func (h *BulkDeleteCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bulk-delete-categories",
		Method:      http.MethodPost,
		Path:        "/categories/bulk-delete",
		Summary:     "Bulk delete categories",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *BulkDeleteCategoriesHandler) handle(ctx context.Context, input *common.BulkDeleteInput) (*common.IDListOutput, error) {
	deleted, err := h.CategoryService.BulkDelete(ctx, input.Body.IDs)
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to delete categories")
	}
	return common.NewIDListOutput(deleted), nil
}
