package summary

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-dashboard/internal/chart"
	"github.com/carson-networks/finance-dashboard/internal/service"
)

const resourceName = "Summary"

// RangeInput is the shared query of the summary endpoints.
type RangeInput struct {
	From      string `query:"from" pattern:"^[0-9]{4}-[0-9]{2}-[0-9]{2}$" doc:"First day, inclusive (YYYY-MM-DD). Defaults to 30 days before to"`
	To        string `query:"to" pattern:"^[0-9]{4}-[0-9]{2}-[0-9]{2}$" doc:"Last day, inclusive (YYYY-MM-DD). Defaults to today"`
	AccountID string `query:"accountId" doc:"Only transactions of this account"`
}

func (in *RangeInput) query() service.RangeQuery {
	return service.RangeQuery{From: in.From, To: in.To, AccountID: in.AccountID}
}

// Register registers the summary endpoints with the Huma API.
func Register(api huma.API, svc *service.SummaryService) {
	NewGetSummaryHandler(svc).Register(api)
	NewGetChartHandler(svc, chart.NewDailyChart()).Register(api)
}
