package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-dashboard/internal/chart"
	"github.com/carson-networks/finance-dashboard/internal/series"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

type mockSummaryService struct {
	mock.Mock
}

func (m *mockSummaryService) Get(ctx context.Context, query service.RangeQuery) (*service.Summary, error) {
	args := m.Called(ctx, query)
	summary, _ := args.Get(0).(*service.Summary)
	return summary, args.Error(1)
}

func (m *mockSummaryService) Days(ctx context.Context, query service.RangeQuery) ([]series.Day, error) {
	args := m.Called(ctx, query)
	days, _ := args.Get(0).([]series.Day)
	return days, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockSummaryService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetSummaryHandler(svc).Register(api)
	NewGetChartHandler(svc, chart.NewDailyChart()).Register(api)
	return api
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestHTTP_GetSummary(t *testing.T) {
	svc := new(mockSummaryService)
	query := service.RangeQuery{From: "2024-01-01", To: "2024-01-03"}
	svc.On("Get", mock.Anything, query).Return(&service.Summary{
		Range:           service.DateRange{Start: day(1), End: day(3)},
		RemainingAmount: 84500,
		RemainingChange: 12.5,
		IncomeAmount:    100000,
		ExpensesAmount:  15500,
		ExpensesChange:  -50,
		Categories:      []service.CategoryValue{{Name: "Food", Value: 15500}},
		Days: []series.Day{
			{Date: day(1), Income: 100000},
			{Date: day(2), Expenses: 15500},
			{Date: day(3)},
		},
	}, nil)

	resp := newTestAPI(t, svc).Get("/summary?from=2024-01-01&to=2024-01-03")

	require.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-01-01", body.Data.From)
	assert.Equal(t, "2024-01-03", body.Data.To)
	assert.Equal(t, int64(84500), body.Data.RemainingAmount)
	assert.InDelta(t, 12.5, body.Data.RemainingChange, 0.0001)
	assert.Equal(t, []CategoryValue{{Name: "Food", Value: 15500}}, body.Data.Categories)
	assert.Equal(t, []Day{
		{Date: "2024-01-01", Income: 100000},
		{Date: "2024-01-02", Expenses: 15500},
		{Date: "2024-01-03"},
	}, body.Data.Days)
}

func TestHTTP_GetSummary_InvalidDate(t *testing.T) {
	svc := new(mockSummaryService)

	resp := newTestAPI(t, svc).Get("/summary?from=01-01-2024")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestHTTP_GetSummary_Unauthorized(t *testing.T) {
	svc := new(mockSummaryService)
	svc.On("Get", mock.Anything, service.RangeQuery{}).Return(nil, service.ErrUnauthorized)

	resp := newTestAPI(t, svc).Get("/summary")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_GetChart(t *testing.T) {
	svc := new(mockSummaryService)
	svc.On("Days", mock.Anything, service.RangeQuery{AccountID: "acc_1"}).Return([]series.Day{
		{Date: day(1), Income: 100000},
		{Date: day(2), Expenses: 15500},
	}, nil)

	resp := newTestAPI(t, svc).Get("/summary/chart?accountId=acc_1")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/png", resp.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(resp.Body.Bytes(), []byte("\x89PNG")))
}

func TestHTTP_GetChart_NoData(t *testing.T) {
	svc := new(mockSummaryService)
	svc.On("Days", mock.Anything, service.RangeQuery{}).Return([]series.Day{}, nil)

	resp := newTestAPI(t, svc).Get("/summary/chart")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.Bytes())
}
