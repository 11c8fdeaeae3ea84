package transaction

import (
	"context"
	"database/sql"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Executor
	Reader
}

var _ IWriter = (*Writer)(nil)

func NewWriter(tx bob.Executor, loc *time.Location) *Writer {
	return &Writer{
		tx:     tx,
		Reader: *NewReader(tx, loc),
	}
}

// ownedRow matches transactions whose account belongs to userID.
func ownedRow(userID string) bob.Expression {
	return psql.Raw("EXISTS (SELECT 1 FROM accounts WHERE accounts.id = transactions.account_id AND accounts.user_id = ?)", userID)
}

func ownedAccount(userID, accountID string) bob.Expression {
	return psql.Raw("EXISTS (SELECT 1 FROM accounts WHERE accounts.id = ? AND accounts.user_id = ?)", accountID, userID)
}

// ownedCategory matches when categoryID is null or belongs to userID.
func ownedCategory(userID string, categoryID *string) bob.Expression {
	return psql.Raw("(?::text IS NULL OR EXISTS (SELECT 1 FROM categories WHERE categories.id = ? AND categories.user_id = ?))", categoryID, categoryID, userID)
}

func (w *Writer) returning(ctx context.Context, q bob.Query) ([]string, error) {
	return bob.All(ctx, w.tx, q, scan.SingleColumnMapper[string])
}

func (w *Writer) returningOne(ctx context.Context, q bob.Query) error {
	ids, err := w.returning(ctx, q)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Insert only writes the row when the account, and the category if any, belong to the user.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) error {
	categoryID := create.CategoryID.Ptr()
	q := psql.RawQuery(`INSERT INTO transactions (id, date, payee, amount, notes, account_id, category_id)
SELECT ?, ?, ?, ?, ?, accounts.id, ?
FROM accounts
WHERE accounts.id = ? AND accounts.user_id = ?
AND (?::text IS NULL OR EXISTS (SELECT 1 FROM categories WHERE categories.id = ? AND categories.user_id = ?))
RETURNING id`,
		create.ID, create.Date, create.Payee, create.Amount, create.Notes.Ptr(), categoryID,
		create.AccountID, create.UserID,
		categoryID, categoryID, create.UserID,
	)
	return w.returningOne(ctx, q)
}

func (w *Writer) Update(ctx context.Context, update *TransactionUpdate) error {
	mods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("transactions"),
		um.SetCol("date").ToArg(update.Date),
		um.SetCol("payee").ToArg(update.Payee),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("account_id").ToArg(update.AccountID),
		um.Where(psql.Quote("transactions", "id").EQ(psql.Arg(update.ID))),
		um.Where(ownedRow(update.UserID)),
		um.Where(ownedAccount(update.UserID, update.AccountID)),
		um.Returning("id"),
	}
	if !update.Notes.IsUnset() {
		mods = append(mods, um.SetCol("notes").ToArg(update.Notes.MustPtr()))
	}
	if !update.CategoryID.IsUnset() {
		categoryID := update.CategoryID.MustPtr()
		mods = append(mods,
			um.SetCol("category_id").ToArg(categoryID),
			um.Where(ownedCategory(update.UserID, categoryID)),
		)
	}
	return w.returningOne(ctx, psql.Update(mods...))
}

func (w *Writer) Delete(ctx context.Context, userID, id string) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("transactions", "id").EQ(psql.Arg(id))),
		dm.Where(ownedRow(userID)),
		dm.Returning("id"),
	)
	return w.returningOne(ctx, q)
}

// BulkDelete deletes the requested ids the user owns and returns them.
// Ids that are unknown or foreign are skipped silently.
func (w *Writer) BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("transactions", "id").In(psql.Arg(args...))),
		dm.Where(ownedRow(userID)),
		dm.Returning("id"),
	)
	return w.returning(ctx, q)
}
