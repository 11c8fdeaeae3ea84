package operator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-dashboard/internal/storage"
)

type fakeTx struct {
	mu         sync.Mutex
	commits   int
	rollbacks int
	commitErr error
}

func (f *fakeTx) Commit(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rollbacks++
	return nil
}

type fakeFactory struct {
	tx  *fakeTx
	err error
}

func (f *fakeFactory) Write(context.Context) (*storage.Writer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return storage.NewWriterWithTables(f.tx, nil, nil, nil), nil
}

type funcAction func(ctx context.Context, writer *storage.Writer) error

func (f funcAction) Perform(ctx context.Context, writer *storage.Writer) error {
	return f(ctx, writer)
}

func newDelegator(t *testing.T, factory WriterFactory) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(factory, 2)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	d := newDelegator(t, &fakeFactory{tx: tx})

	performed := false
	err := d.Process(context.Background(), funcAction(func(ctx context.Context, writer *storage.Writer) error {
		performed = true
		return nil
	}))

	require.NoError(t, err)
	assert.True(t, performed)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestProcess_RollsBackOnFailure(t *testing.T) {
	tx := &fakeTx{}
	d := newDelegator(t, &fakeFactory{tx: tx})
	actionErr := errors.New("boom")

	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
		return actionErr
	}))

	assert.ErrorIs(t, err, actionErr)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestProcess_CommitError(t *testing.T) {
	commitErr := errors.New("serialization failure")
	d := newDelegator(t, &fakeFactory{tx: &fakeTx{commitErr: commitErr}})

	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error { return nil }))

	assert.ErrorIs(t, err, commitErr)
}

func TestProcess_WriterError(t *testing.T) {
	writeErr := errors.New("connection refused")
	d := newDelegator(t, &fakeFactory{err: writeErr})

	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error {
		t.Error("action must not run without a writer")
		return nil
	}))

	assert.ErrorIs(t, err, writeErr)
}

func TestProcess_CancelledContext(t *testing.T) {
	d := newDelegator(t, &fakeFactory{tx: &fakeTx{}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Process(ctx, funcAction(func(context.Context, *storage.Writer) error { return nil }))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(&fakeFactory{tx: &fakeTx{}}, 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error { return nil }))

	assert.ErrorIs(t, err, ErrStopped)
}

func TestProcess_Concurrent(t *testing.T) {
	tx := &fakeTx{}
	d := newDelegator(t, &fakeFactory{tx: tx})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Process(context.Background(), funcAction(func(context.Context, *storage.Writer) error { return nil })))
		}()
	}
	wg.Wait()

	tx.mu.Lock()
	defer tx.mu.Unlock()
	assert.Equal(t, 50, tx.commits)
}

func TestProcess_CancelAfterStartStillReportsCommit(t *testing.T) {
	tx := &fakeTx{}
	d := newDelegator(t, &fakeFactory{tx: tx})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	release := make(chan struct{})
	var actionCtxErr error
	done := make(chan error, 1)
	go func() {
		done <- d.Process(ctx, funcAction(func(actionCtx context.Context, _ *storage.Writer) error {
			close(started)
			<-release
			actionCtxErr = actionCtx.Err()
			return nil
		}))
	}()

	<-started
	cancel()
	close(release)

	require.NoError(t, <-done)
	assert.NoError(t, actionCtxErr)
	tx.mu.Lock()
	defer tx.mu.Unlock()
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}
