package storage

import (
	"time"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-dashboard/internal/storage/account"
	"github.com/carson-networks/finance-dashboard/internal/storage/category"
	"github.com/carson-networks/finance-dashboard/internal/storage/transaction"
)

type Reader struct {
	Accounts     account.IReader
	Categories   category.IReader
	Transactions transaction.IReader
}

func NewReader(exec bob.Executor, loc *time.Location) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Categories:   category.NewReader(exec),
		Transactions: transaction.NewReader(exec, loc),
	}
}
