package transaction

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
	loc  *time.Location
}

var _ IReader = (*Reader)(nil)

// NewReader creates a Reader; loc is the zone calendar days are bucketed in.
func NewReader(exec bob.Executor, loc *time.Location) *Reader {
	if loc == nil {
		loc = time.UTC
	}
	return &Reader{exec: exec, loc: loc}
}

func ownedBy(userID string) bob.Mod[*dialect.SelectQuery] {
	return sm.Where(psql.Quote("accounts", "user_id").EQ(psql.Arg(userID)))
}

func fromOwnedTransactions(userID string) []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.From("transactions"),
		sm.InnerJoin("accounts").On(psql.Quote("accounts", "id").EQ(psql.Quote("transactions", "account_id"))),
		ownedBy(userID),
	}
}

func filterMods(filter *Filter) []bob.Mod[*dialect.SelectQuery] {
	mods := fromOwnedTransactions(filter.UserID)
	mods = append(mods,
		sm.Where(psql.Quote("transactions", "date").GTE(psql.Arg(filter.From))),
		sm.Where(psql.Quote("transactions", "date").LT(psql.Arg(filter.To))),
	)
	if filter.AccountID != nil {
		mods = append(mods, sm.Where(psql.Quote("transactions", "account_id").EQ(psql.Arg(*filter.AccountID))))
	}
	return mods
}

var transactionColumns = sm.Columns(
	"transactions.id",
	"transactions.date",
	"transactions.payee",
	"transactions.amount",
	"transactions.notes",
	"transactions.account_id",
	"transactions.category_id",
	"accounts.name AS account",
	"categories.name AS category",
)

var categoryJoin = sm.LeftJoin("categories").On(psql.Quote("categories", "id").EQ(psql.Quote("transactions", "category_id")))

// List returns the filtered transactions, newest first.
func (r *Reader) List(ctx context.Context, filter *Filter) ([]Transaction, error) {
	mods := append(filterMods(filter),
		transactionColumns,
		categoryJoin,
		sm.OrderBy(psql.Quote("transactions", "date")).Desc(),
		sm.OrderBy(psql.Quote("transactions", "id")).Desc(),
	)
	return bob.All(ctx, r.exec, psql.Select(mods...), scan.StructMapper[Transaction]())
}

// FindByID returns sql.ErrNoRows both for unknown ids and for rows owned by someone else.
func (r *Reader) FindByID(ctx context.Context, userID, id string) (*Transaction, error) {
	mods := append(fromOwnedTransactions(userID),
		transactionColumns,
		categoryJoin,
		sm.Where(psql.Quote("transactions", "id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, psql.Select(mods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Reader) DailyTotals(ctx context.Context, filter *Filter) ([]DailyTotal, error) {
	mods := append(filterMods(filter),
		sm.Columns(
			psql.Raw("to_char(transactions.date AT TIME ZONE ?, 'YYYY-MM-DD') AS day", r.loc.String()),
			"COALESCE(SUM(CASE WHEN transactions.amount > 0 THEN transactions.amount ELSE 0 END), 0)::bigint AS income",
			"COALESCE(SUM(CASE WHEN transactions.amount < 0 THEN -transactions.amount ELSE 0 END), 0)::bigint AS expenses",
		),
		sm.GroupBy("day"),
		sm.OrderBy("day").Asc(),
	)
	return bob.All(ctx, r.exec, psql.Select(mods...), scan.StructMapper[DailyTotal]())
}

func (r *Reader) PeriodTotals(ctx context.Context, filter *Filter) (*PeriodTotals, error) {
	mods := append(filterMods(filter),
		sm.Columns(
			"COALESCE(SUM(CASE WHEN transactions.amount > 0 THEN transactions.amount ELSE 0 END), 0)::bigint AS income",
			"COALESCE(SUM(CASE WHEN transactions.amount < 0 THEN -transactions.amount ELSE 0 END), 0)::bigint AS expenses",
		),
	)
	totals, err := bob.One(ctx, r.exec, psql.Select(mods...), scan.StructMapper[PeriodTotals]())
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// CategoryTotals sums expenses per category, largest first. Uncategorized
// transactions are left out.
func (r *Reader) CategoryTotals(ctx context.Context, filter *Filter) ([]CategoryTotal, error) {
	mods := append(filterMods(filter),
		sm.Columns(
			"categories.name AS name",
			"SUM(-transactions.amount)::bigint AS value",
		),
		sm.InnerJoin("categories").On(psql.Quote("categories", "id").EQ(psql.Quote("transactions", "category_id"))),
		sm.Where(psql.Quote("transactions", "amount").LT(psql.Arg(0))),
		sm.GroupBy(psql.Quote("categories", "id")),
		sm.GroupBy(psql.Quote("categories", "name")),
		sm.OrderBy("value").Desc(),
		sm.OrderBy("name").Asc(),
	)
	return bob.All(ctx, r.exec, psql.Select(mods...), scan.StructMapper[CategoryTotal]())
}
