package account

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Executor
	Reader
}

var _ IWriter = (*Writer)(nil)

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Insert(ctx context.Context, create *AccountCreate) error {
	q := psql.Insert(
		im.Into("accounts", "id", "name", "user_id", "external_id"),
		im.Values(psql.Arg(create.ID, create.Name, create.UserID, create.ExternalID.Ptr())),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

func (w *Writer) Rename(ctx context.Context, userID, id, name string) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning("id"),
	)
	return w.expectOne(ctx, q)
}

// Delete removes the account; its transactions go with it.
func (w *Writer) Delete(ctx context.Context, userID, id string) error {
	q := psql.Delete(
		dm.From("accounts"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Returning("id"),
	)
	return w.expectOne(ctx, q)
}

func (w *Writer) BulkDelete(ctx context.Context, userID string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	q := psql.Delete(
		dm.From("accounts"),
		dm.Where(psql.Quote("id").In(psql.Arg(args...))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Returning("id"),
	)
	return bob.All(ctx, w.tx, q, scan.SingleColumnMapper[string])
}

func (w *Writer) expectOne(ctx context.Context, q bob.Query) error {
	ids, err := bob.All(ctx, w.tx, q, scan.SingleColumnMapper[string])
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return sql.ErrNoRows
	}
	return nil
}
