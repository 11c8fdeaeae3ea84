package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/logging"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

// Summary is the API model of the dashboard overview. Amounts are milliunits.
type Summary struct {
	From            string          `json:"from" doc:"First day of the range (YYYY-MM-DD)"`
	To              string          `json:"to" doc:"Last day of the range (YYYY-MM-DD)"`
	RemainingAmount int64           `json:"remainingAmount" doc:"Income minus expenses"`
	RemainingChange float64         `json:"remainingChange" doc:"Percentage change against the previous range"`
	IncomeAmount    int64           `json:"incomeAmount"`
	IncomeChange    float64         `json:"incomeChange"`
	ExpensesAmount  int64           `json:"expensesAmount" doc:"Sum of expense magnitudes"`
	ExpensesChange  float64         `json:"expensesChange"`
	Categories      []CategoryValue `json:"categories" doc:"Top expense categories, remainder folded into Other"`
	Days            []Day           `json:"days" doc:"One entry per day of the range, empty when there is no data"`
}

type CategoryValue struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type Day struct {
	Date     string `json:"date"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
}

// SummaryResponse is the {data: Summary} envelope.
type SummaryResponse struct {
	Data Summary `json:"data"`
}

type SummaryOutput struct {
	Body SummaryResponse
}

type summaryGetter interface {
	Get(ctx context.Context, query service.RangeQuery) (*service.Summary, error)
}

// GetSummaryHandler handles GET /summary.
type GetSummaryHandler struct {
	SummaryService summaryGetter
}

func NewGetSummaryHandler(svc summaryGetter) *GetSummaryHandler {
	return &GetSummaryHandler{SummaryService: svc}
}

func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/summary",
		Summary:     "Get dashboard summary",
		Description: "Totals, percentage change against the previous range, top categories and the daily series.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *RangeInput) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	summary, err := logging.Timed(logData, "summaryMs", func() (*service.Summary, error) {
		return h.SummaryService.Get(ctx, input.query())
	})
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to build summary")
	}

	return &SummaryOutput{Body: SummaryResponse{Data: fromService(summary)}}, nil
}

func fromService(s *service.Summary) Summary {
	out := Summary{
		From:            s.Range.Start.Format(service.DayLayout),
		To:              s.Range.End.Format(service.DayLayout),
		RemainingAmount: s.RemainingAmount,
		RemainingChange: s.RemainingChange,
		IncomeAmount:    s.IncomeAmount,
		IncomeChange:    s.IncomeChange,
		ExpensesAmount:  s.ExpensesAmount,
		ExpensesChange:  s.ExpensesChange,
		Categories:      make([]CategoryValue, len(s.Categories)),
		Days:            make([]Day, len(s.Days)),
	}
	for i, c := range s.Categories {
		out.Categories[i] = CategoryValue{Name: c.Name, Value: c.Value}
	}
	for i, d := range s.Days {
		out.Days[i] = Day{Date: d.Date.Format(service.DayLayout), Income: d.Income, Expenses: d.Expenses}
	}
	return out
}
