package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs      []*fakeTx
	opts     []*sql.TxOptions
	beginErr error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	b.opts = append(b.opts, opts)
	return tx, nil
}

func TestDo_CommitsOnSuccess(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.Len(t, beginner.txs, 1)
	assert.True(t, beginner.txs[0].committed)
	assert.False(t, beginner.txs[0].rolledBack)
}

func TestDo_RollsBackOnError(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)
	fnErr := errors.New("slot taken")

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	require.Len(t, beginner.txs, 1)
	assert.False(t, beginner.txs[0].committed)
	assert.True(t, beginner.txs[0].rolledBack)
}

func TestDo_RollsBackOnPanic(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	assert.Panics(t, func() {
		_ = manager.Do(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	require.Len(t, beginner.txs, 1)
	assert.True(t, beginner.txs[0].rolledBack)
}

func TestDo_BeginError(t *testing.T) {
	manager := NewTransactionManager(&fakeBeginner{beginErr: errors.New("no connection")})

	err := manager.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrBeginTx)
}

func TestDo_CommitError(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		tx, _ := dbmetrics.TxFromContext(ctx)
		tx.(*fakeTx).commitErr = errors.New("connection reset")
		return nil
	})

	assert.ErrorIs(t, err, ErrCommitTx)
}

func TestDo_NestedCallJoinsOuterTransaction(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	err := manager.Do(context.Background(), func(ctx context.Context) error {
		return manager.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Len(t, beginner.txs, 1)
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("insert reservation: %w", &pq.Error{Code: serializationFailure})
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	require.Len(t, beginner.opts, 3)
	assert.Equal(t, sql.LevelSerializable, beginner.opts[0].Isolation)
}

func TestDoSerializable_GivesUpAfterRetries(t *testing.T) {
	manager := NewTransactionManager(&fakeBeginner{})

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return &pq.Error{Code: serializationFailure}
	})

	assert.True(t, IsSerializationFailure(err))
	assert.Equal(t, DefaultSerializableRetries+1, calls)
}

func TestDoReadOnly_SetsReadOnly(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	require.NoError(t, manager.DoReadOnly(context.Background(), func(ctx context.Context) error { return nil }))
	require.Len(t, beginner.opts, 1)
	assert.True(t, beginner.opts[0].ReadOnly)
}
