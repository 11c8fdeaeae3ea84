package summary

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/chart"
	"github.com/carson-networks/finance-dashboard/internal/handlers/v1/common"
	"github.com/carson-networks/finance-dashboard/internal/logging"
	"github.com/carson-networks/finance-dashboard/internal/series"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

// ChartOutput is a PNG body, or no content when the range is too sparse.
type ChartOutput struct {
	Status      int
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type daysGetter interface {
	Days(ctx context.Context, query service.RangeQuery) ([]series.Day, error)
}

type renderer interface {
	Render(days []series.Day) ([]byte, error)
}

// GetChartHandler handles GET /summary/chart.
type GetChartHandler struct {
	SummaryService daysGetter
	Chart          renderer
}

func NewGetChartHandler(svc daysGetter, r renderer) *GetChartHandler {
	return &GetChartHandler{SummaryService: svc, Chart: r}
}

func (h *GetChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary-chart",
		Method:      http.MethodGet,
		Path:        "/summary/chart",
		Summary:     "Daily income and expenses chart",
		Tags:        []string{"Summary"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "PNG line chart",
				Content:     map[string]*huma.MediaType{"image/png": {}},
			},
			"204": {Description: "Fewer than two days of data"},
		},
	}, h.handle)
}

func (h *GetChartHandler) handle(ctx context.Context, input *RangeInput) (*ChartOutput, error) {
	logData := logging.GetLogData(ctx)

	days, err := h.SummaryService.Days(ctx, input.query())
	if err != nil {
		return nil, common.Error(err, resourceName, "failed to load chart data")
	}

	png, err := logging.Timed(logData, "renderChartMs", func() ([]byte, error) {
		return h.Chart.Render(days)
	})
	if errors.Is(err, chart.ErrNotEnoughData) {
		return &ChartOutput{Status: http.StatusNoContent}, nil
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to render chart")
	}

	return &ChartOutput{Status: http.StatusOK, ContentType: "image/png", Body: png}, nil
}
