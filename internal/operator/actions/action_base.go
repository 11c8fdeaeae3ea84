package actions

import (
	"context"

	"github.com/carson-networks/finance-dashboard/internal/storage"
)

// IAction is one unit of work executed inside a single database transaction.
// Actions expose their outcome through exported result fields.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
