package transaction

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockIWriter is a testify mock of IWriter. It also satisfies IReader.
type MockIWriter struct {
	mock.Mock
}

var _ IWriter = (*MockIWriter)(nil)

// NewMockIWriter creates a MockIWriter whose expectations are asserted on cleanup.
func NewMockIWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIWriter {
	m := &MockIWriter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIWriter) List(ctx context.Context, filter *Filter) ([]Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]Transaction)
	return rows, args.Error(1)
}

func (m *MockIWriter) FindByID(ctx context.Context, userID, id string) (*Transaction, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*Transaction)
	return row, args.Error(1)
}

func (m *MockIWriter) DailyTotals(ctx context.Context, filter *Filter) ([]DailyTotal, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]DailyTotal)
	return rows, args.Error(1)
}

func (m *MockIWriter) PeriodTotals(ctx context.Context, filter *Filter) (*PeriodTotals, error) {
	args := m.Called(ctx, filter)
	totals, _ := args.Get(0).(*PeriodTotals)
	return totals, args.Error(1)
}

func (m *MockIWriter) CategoryTotals(ctx context.Context, filter *Filter) ([]CategoryTotal, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]CategoryTotal)
	return rows, args.Error(1)
}

func (m *MockIWriter) Insert(ctx context.Context, create *TransactionCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *MockIWriter) Update(ctx context.Context, update *TransactionUpdate) error {
	return m.Called(ctx, update).Error(0)
}

func (m *MockIWriter) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockIWriter) BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error) {
	args := m.Called(ctx, userID, ids)
	deleted, _ := args.Get(0).([]string)
	return deleted, args.Error(1)
}
