package category

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/service"
)

const resourceName = "Category"

// Category is the API response model for a category.
type Category struct {
	ID         string  `json:"id" doc:"Category id"`
	Name       string  `json:"name" doc:"Category name"`
	ExternalID *string `json:"externalId" doc:"Id in an external system the category was imported from"`
	CreatedAt  string  `json:"createdAt" format:"date-time" doc:"RFC3339 creation time"`
}

// CategoryBody is the request body for creating or renaming a category.
type CategoryBody struct {
	Name string `json:"name" minLength:"1" maxLength:"200" doc:"Category name"`
}

// CategoryResponse is the {data: Category} envelope.
type CategoryResponse struct {
	Data Category `json:"data"`
}

type CategoryOutput struct {
	Body CategoryResponse
}

func fromService(a *service.Category) Category {
	return Category{
		ID:         a.ID,
		Name:       a.Name,
		ExternalID: a.ExternalID,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}

// Register registers every category endpoint with the Huma API.
func Register(api huma.API, svc *service.CategoryService) {
	NewListCategoriesHandler(svc).Register(api)
	NewGetCategoryHandler(svc).Register(api)
	NewCreateCategoryHandler(svc).Register(api)
	NewUpdateCategoryHandler(svc).Register(api)
	NewDeleteCategoryHandler(svc).Register(api)
	NewBulkDeleteCategoriesHandler(svc).Register(api)
}
