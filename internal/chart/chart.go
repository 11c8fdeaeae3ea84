// Package chart renders the daily income and expense series as a PNG.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/carson-networks/finance-dashboard/internal/money"
	"github.com/carson-networks/finance-dashboard/internal/series"
)

// ErrNotEnoughData is returned for series too short to draw a line.
var ErrNotEnoughData = errors.New("chart: at least two days are required")

const (
	defaultWidth  = 1200
	defaultHeight = 600
)

// DailyChart draws income and expenses per day.
type DailyChart struct {
	Width  int
	Height int
}

func NewDailyChart() *DailyChart {
	return &DailyChart{Width: defaultWidth, Height: defaultHeight}
}

// Render returns the PNG encoding of days.
func (c *DailyChart) Render(days []series.Day) ([]byte, error) {
	if len(days) < 2 {
		return nil, ErrNotEnoughData
	}

	xValues := make([]time.Time, len(days))
	incomeValues := make([]float64, len(days))
	expenseValues := make([]float64, len(days))
	highest := 0.0
	for i, day := range days {
		xValues[i] = day.Date
		incomeValues[i] = money.FromMilliunitsFloat(day.Income)
		expenseValues[i] = money.FromMilliunitsFloat(day.Expenses)
		highest = max(highest, incomeValues[i], expenseValues[i])
	}
	if highest == 0 {
		highest = 1
	}

	graph := chart.Chart{
		Width:  c.Width,
		Height: c.Height,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 02"),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: highest},
			ValueFormatter: func(v interface{}) string {
				value, ok := v.(float64)
				if !ok {
					return ""
				}
				return money.FormatCurrency(decimal.NewFromFloat(value))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Income",
				XValues: xValues,
				YValues: incomeValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Expenses",
				XValues: xValues,
				YValues: expenseValues,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
				},
			},
		},
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{
			FontSize:  12,
			FontColor: chart.ColorBlack,
		}),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render daily chart: %w", err)
	}
	return buffer.Bytes(), nil
}
