package account

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
)

// Account represents an account record.
type Account struct {
	ID         string           `db:"id"`
	Name       string           `db:"name"`
	UserID     string           `db:"user_id"`
	ExternalID null.Val[string] `db:"external_id"`
	CreatedAt  time.Time        `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	ID         string
	UserID     string
	Name       string
	ExternalID null.Val[string]
}

// IReader defines the read side of account storage, always scoped to one user.
type IReader interface {
	List(ctx context.Context, userID string) ([]Account, error)
	FindByID(ctx context.Context, userID, id string) (*Account, error)
}

// IWriter defines account mutations. sql.ErrNoRows means no account owned by
// the user matched.
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *AccountCreate) error
	Rename(ctx context.Context, userID, id, name string) error
	Delete(ctx context.Context, userID, id string) error
	BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error)
}
