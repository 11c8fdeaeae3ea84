package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-dashboard/internal/money"
	"github.com/carson-networks/finance-dashboard/internal/series"
	"github.com/carson-networks/finance-dashboard/internal/storage/transaction"
)

const (
	topCategoryCount  = 3
	otherCategoryName = "Other"
)

// Summary is the dashboard overview for a range. Amounts are milliunits,
// changes are percentages against the previous range of equal length.
type Summary struct {
	Range           DateRange
	RemainingAmount int64
	RemainingChange float64
	IncomeAmount    int64
	IncomeChange    float64
	ExpensesAmount  int64
	ExpensesChange  float64
	Categories      []CategoryValue
	Days            []series.Day
}

// CategoryValue is the expense total of one category.
type CategoryValue struct {
	Name  string
	Value int64
}

type SummaryService struct {
	reader transaction.IReader
	loc    *time.Location
	now    func() time.Time
}

func NewSummaryService(reader transaction.IReader, loc *time.Location, now func() time.Time) *SummaryService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &SummaryService{reader: reader, loc: loc, now: now}
}

// Get aggregates the caller's transactions in the query's range.
func (s *SummaryService) Get(ctx context.Context, query RangeQuery) (*Summary, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	current, err := ResolveRange(query.From, query.To, s.now(), s.loc)
	if err != nil {
		return nil, err
	}
	previous := current.Previous()

	var (
		currentTotals  *transaction.PeriodTotals
		previousTotals *transaction.PeriodTotals
		categories     []transaction.CategoryTotal
		days           []series.Day
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentTotals, err = s.reader.PeriodTotals(gctx, rangeFilter(user, current, query.AccountID))
		return err
	})
	g.Go(func() error {
		var err error
		previousTotals, err = s.reader.PeriodTotals(gctx, rangeFilter(user, previous, query.AccountID))
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.reader.CategoryTotals(gctx, rangeFilter(user, current, query.AccountID))
		return err
	})
	g.Go(func() error {
		var err error
		days, err = s.days(gctx, user, current, query.AccountID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	currentRemaining := currentTotals.Income - currentTotals.Expenses
	previousRemaining := previousTotals.Income - previousTotals.Expenses

	return &Summary{
		Range:           current,
		RemainingAmount: currentRemaining,
		RemainingChange: money.PercentageChange(currentRemaining, previousRemaining),
		IncomeAmount:    currentTotals.Income,
		IncomeChange:    money.PercentageChange(currentTotals.Income, previousTotals.Income),
		ExpensesAmount:  currentTotals.Expenses,
		ExpensesChange:  money.PercentageChange(currentTotals.Expenses, previousTotals.Expenses),
		Categories:      topCategories(categories),
		Days:            days,
	}, nil
}

// Days returns the filled daily series of the query's range; it is empty when
// the range has no transactions at all.
func (s *SummaryService) Days(ctx context.Context, query RangeQuery) ([]series.Day, error) {
	user, err := userID(ctx)
	if err != nil {
		return nil, err
	}

	current, err := ResolveRange(query.From, query.To, s.now(), s.loc)
	if err != nil {
		return nil, err
	}
	return s.days(ctx, user, current, query.AccountID)
}

func (s *SummaryService) days(ctx context.Context, user string, dateRange DateRange, accountID string) ([]series.Day, error) {
	totals, err := s.reader.DailyTotals(ctx, rangeFilter(user, dateRange, accountID))
	if err != nil {
		return nil, err
	}

	active := make([]series.Day, 0, len(totals))
	for _, total := range totals {
		day, err := time.ParseInLocation(DayLayout, total.Day, s.loc)
		if err != nil {
			return nil, fmt.Errorf("parse daily total %q: %w", total.Day, err)
		}
		active = append(active, series.Day{Date: day, Income: total.Income, Expenses: total.Expenses})
	}

	return series.FillMissingDays(active, dateRange.Start, dateRange.End, s.loc), nil
}

// topCategories keeps the largest categories and folds the rest into "Other".
// The input is ordered by value, largest first.
func topCategories(totals []transaction.CategoryTotal) []CategoryValue {
	result := make([]CategoryValue, 0, topCategoryCount+1)
	var other int64
	for i, total := range totals {
		if i < topCategoryCount {
			result = append(result, CategoryValue{Name: total.Name, Value: total.Value})
			continue
		}
		other += total.Value
	}
	if len(totals) > topCategoryCount {
		result = append(result, CategoryValue{Name: otherCategoryName, Value: other})
	}
	return result
}
