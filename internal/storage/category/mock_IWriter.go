package category

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockIWriter is a testify mock of IWriter. It also satisfies IReader.
type MockIWriter struct {
	mock.Mock
}

var _ IWriter = (*MockIWriter)(nil)

func NewMockIWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIWriter {
	m := &MockIWriter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIWriter) List(ctx context.Context, userID string) ([]Category, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]Category)
	return rows, args.Error(1)
}

func (m *MockIWriter) FindByID(ctx context.Context, userID, id string) (*Category, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*Category)
	return row, args.Error(1)
}

func (m *MockIWriter) Insert(ctx context.Context, create *CategoryCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *MockIWriter) Rename(ctx context.Context, userID, id, name string) error {
	return m.Called(ctx, userID, id, name).Error(0)
}

func (m *MockIWriter) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockIWriter) BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error) {
	args := m.Called(ctx, userID, ids)
	deleted, _ := args.Get(0).([]string)
	return deleted, args.Error(1)
}
