package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/aarondl/opt/omitnull"
)

// Transaction represents a transaction row enriched with its account and category names.
type Transaction struct {
	ID         string           `db:"id"`
	Date       time.Time        `db:"date"`
	Payee      string           `db:"payee"`
	Amount     int64            `db:"amount"`
	Notes      null.Val[string] `db:"notes"`
	AccountID  string           `db:"account_id"`
	CategoryID null.Val[string] `db:"category_id"`
	Account    string           `db:"account"`
	Category   null.Val[string] `db:"category"`
}

// Filter selects the caller's transactions dated in [From, To).
type Filter struct {
	UserID    string
	From      time.Time
	To        time.Time
	AccountID *string
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	ID         string
	UserID     string
	Date       time.Time
	Payee      string
	Amount     int64
	Notes      null.Val[string]
	AccountID  string
	CategoryID null.Val[string]
}

// TransactionUpdate replaces the mutable fields of a transaction.
// Unset optional fields keep their stored value, null clears it.
type TransactionUpdate struct {
	ID         string
	UserID     string
	Date       time.Time
	Payee      string
	Amount     int64
	Notes      omitnull.Val[string]
	AccountID  string
	CategoryID omitnull.Val[string]
}

// DailyTotal is the income and expense sum of one calendar day.
type DailyTotal struct {
	Day      string `db:"day"`
	Income   int64  `db:"income"`
	Expenses int64  `db:"expenses"`
}

type PeriodTotals struct {
	Income   int64 `db:"income"`
	Expenses int64 `db:"expenses"`
}

type CategoryTotal struct {
	Name  string `db:"name"`
	Value int64  `db:"value"`
}

// IReader defines the read side of transaction storage. Every query is
// scoped to the accounts owned by the filter's user.
type IReader interface {
	List(ctx context.Context, filter *Filter) ([]Transaction, error)
	FindByID(ctx context.Context, userID, id string) (*Transaction, error)
	DailyTotals(ctx context.Context, filter *Filter) ([]DailyTotal, error)
	PeriodTotals(ctx context.Context, filter *Filter) (*PeriodTotals, error)
	CategoryTotals(ctx context.Context, filter *Filter) ([]CategoryTotal, error)
}

// IWriter defines transaction mutations. Each one is a single statement whose
// row selection embeds the ownership predicate; sql.ErrNoRows means nothing
// owned by the caller matched.
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *TransactionCreate) error
	Update(ctx context.Context, update *TransactionUpdate) error
	Delete(ctx context.Context, userID, id string) error
	BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error)
}
