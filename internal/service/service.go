package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-dashboard/internal/auth"
	"github.com/carson-networks/finance-dashboard/internal/events"
	"github.com/carson-networks/finance-dashboard/internal/operator/actions"
	"github.com/carson-networks/finance-dashboard/internal/storage"
)

var (
	// ErrUnauthorized is returned when the context carries no authenticated user.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound covers both missing rows and rows owned by someone else.
	ErrNotFound  = errors.New("not found")
	ErrMissingID = errors.New("missing id")
)

// processor runs write actions inside a database transaction.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Category    *CategoryService
	Summary     *SummaryService
}

// NewService creates a new Service reading from reader and writing through op.
func NewService(reader *storage.Reader, op processor, publisher events.Publisher, loc *time.Location, log *logrus.Logger) *Service {
	base := base{
		operator:  op,
		publisher: publisher,
		log:       log,
		now:       time.Now,
		newID:     newID,
	}
	return &Service{
		Transaction: NewTransactionService(reader.Transactions, base, loc),
		Account:     NewAccountService(reader.Accounts, base),
		Category:    NewCategoryService(reader.Categories, base),
		Summary:     NewSummaryService(reader.Transactions, loc, time.Now),
	}
}

// base carries what every mutating service needs.
type base struct {
	operator  processor
	publisher events.Publisher
	log       *logrus.Logger
	now       func() time.Time
	newID     func() (string, error)
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func userID(ctx context.Context) (string, error) {
	id, ok := auth.UserID(ctx)
	if !ok {
		return "", ErrUnauthorized
	}
	return id, nil
}

func translate(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// notify publishes a change event. A failed publish is logged, the mutation
// has already been committed. Publishing ignores cancellation of ctx.
func (b base) notify(ctx context.Context, eventType events.Type, userID string, ids []string) {
	if len(ids) == 0 {
		return
	}
	b.publish(ctx, eventType, userID, ids)
}

// notifyAll marks every cached query of eventType stale for the user.
func (b base) notifyAll(ctx context.Context, eventType events.Type, userID string) {
	b.publish(ctx, eventType, userID, nil)
}

func (b base) publish(ctx context.Context, eventType events.Type, userID string, ids []string) {
	if b.publisher == nil {
		return
	}

	event := events.Event{
		Type:       eventType,
		UserID:     userID,
		IDs:        ids,
		OccurredAt: b.now().UTC(),
	}
	if err := b.publisher.Publish(context.WithoutCancel(ctx), event); err != nil && b.log != nil {
		b.log.WithError(err).WithField("eventType", eventType).Warn("Service.notify.publish failed")
	}
}
