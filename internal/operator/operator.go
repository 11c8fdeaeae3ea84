package operator

import (
	"context"

	"github.com/carson-networks/finance-dashboard/internal/operator/actions"
	"github.com/carson-networks/finance-dashboard/internal/storage"
)

// WriterFactory opens a Writer bound to a new database transaction.
type WriterFactory interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriterFactory
	queue   chan ActionItem
}

func NewOperator(s WriterFactory, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

// processItem runs one action in its own transaction: commit on success, rollback otherwise.
// Items cancelled while queued are skipped. Once started, an action runs to
// its outcome even if the caller goes away.
func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}
	ctx := context.WithoutCancel(item.ctx)

	writer, err := o.storage.Write(ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(ctx, writer)
	if err != nil {
		_ = writer.Rollback(ctx)
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(ctx); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
