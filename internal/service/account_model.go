package service

import (
	"time"

	"github.com/carson-networks/finance-dashboard/internal/storage/account"
	"github.com/carson-networks/finance-dashboard/internal/storage/category"
)

// Account represents an account in the service layer.
type Account struct {
	ID         string
	Name       string
	ExternalID *string
	CreatedAt  time.Time
}

// Category represents a category in the service layer.
type Category struct {
	ID         string
	Name       string
	ExternalID *string
	CreatedAt  time.Time
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:         row.ID,
		Name:       row.Name,
		ExternalID: row.ExternalID.Ptr(),
		CreatedAt:  row.CreatedAt,
	}
}

func categoryFromStorage(row *category.Category) Category {
	return Category{
		ID:         row.ID,
		Name:       row.Name,
		ExternalID: row.ExternalID.Ptr(),
		CreatedAt:  row.CreatedAt,
	}
}
