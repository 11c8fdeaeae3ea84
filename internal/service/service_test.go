package service

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-dashboard/internal/auth"
	"github.com/carson-networks/finance-dashboard/internal/events"
	"github.com/carson-networks/finance-dashboard/internal/operator/actions"
	"github.com/carson-networks/finance-dashboard/internal/storage"
	"github.com/carson-networks/finance-dashboard/internal/storage/account"
	"github.com/carson-networks/finance-dashboard/internal/storage/category"
	"github.com/carson-networks/finance-dashboard/internal/storage/transaction"
)

const testUser = "user_1"

var testNow = time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC)

// fakeProcessor performs actions directly against the mocked tables.
type fakeProcessor struct {
	writer *storage.Writer
	err    error
}

func (p *fakeProcessor) Process(ctx context.Context, action actions.IAction) error {
	if p.err != nil {
		return p.err
	}
	return action.Perform(ctx, p.writer)
}

type harness struct {
	transactions *transaction.MockIWriter
	accounts     *account.MockIWriter
	categories   *category.MockIWriter
	events       *events.Recorder
	processor    *fakeProcessor
	svc          *Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		transactions: transaction.NewMockIWriter(t),
		accounts:     account.NewMockIWriter(t),
		categories:   category.NewMockIWriter(t),
		events:       &events.Recorder{},
	}
	h.processor = &fakeProcessor{
		writer: storage.NewWriterWithTables(nil, h.accounts, h.categories, h.transactions),
	}
	reader := &storage.Reader{
		Accounts:     h.accounts,
		Categories:   h.categories,
		Transactions: h.transactions,
	}

	h.svc = NewService(reader, h.processor, h.events, time.UTC, logrus.New())
	for _, b := range []*base{&h.svc.Transaction.base, &h.svc.Account.base, &h.svc.Category.base} {
		b.now = func() time.Time { return testNow }
		b.newID = func() (string, error) { return "new_id", nil }
	}
	h.svc.Summary.now = func() time.Time { return testNow }
	return h
}

func userCtx() context.Context {
	return auth.WithUserID(context.Background(), testUser)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// filterFor matches a transaction filter by user and [from, to) bounds.
func filterFor(user string, from, to time.Time) any {
	return mock.MatchedBy(func(f *transaction.Filter) bool {
		return f.UserID == user && f.From.Equal(from) && f.To.Equal(to)
	})
}

func strPtr(s string) *string {
	return &s
}
