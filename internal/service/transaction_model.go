package service

import (
	"time"

	"github.com/carson-networks/finance-dashboard/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer. Amount is in milliunits.
type Transaction struct {
	ID         string
	Date       time.Time
	Payee      string
	Amount     int64
	Notes      *string
	AccountID  string
	Account    string
	CategoryID *string
	Category   *string
}

// TransactionInput is every client-settable field of a transaction.
type TransactionInput struct {
	Date       time.Time
	Payee      string
	Amount     int64
	Notes      *string
	AccountID  string
	CategoryID *string
}

// RangeQuery selects transactions by inclusive calendar days and optional account.
// Empty From and To fall back to the last 30 days.
type RangeQuery struct {
	From      string
	To        string
	AccountID string
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:         row.ID,
		Date:       row.Date,
		Payee:      row.Payee,
		Amount:     row.Amount,
		Notes:      row.Notes.Ptr(),
		AccountID:  row.AccountID,
		Account:    row.Account,
		CategoryID: row.CategoryID.Ptr(),
		Category:   row.Category.Ptr(),
	}
}
