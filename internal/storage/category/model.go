package category

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
)

// Category represents a category record.
type Category struct {
	ID         string           `db:"id"`
	Name       string           `db:"name"`
	UserID     string           `db:"user_id"`
	ExternalID null.Val[string] `db:"external_id"`
	CreatedAt  time.Time        `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	ID         string
	UserID     string
	Name       string
	ExternalID null.Val[string]
}

// IReader defines the read side of category storage, always scoped to one user.
type IReader interface {
	List(ctx context.Context, userID string) ([]Category, error)
	FindByID(ctx context.Context, userID, id string) (*Category, error)
}

// IWriter defines category mutations. sql.ErrNoRows means no category owned by
// the user matched.
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *CategoryCreate) error
	Rename(ctx context.Context, userID, id, name string) error
	Delete(ctx context.Context, userID, id string) error
	BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error)
}
