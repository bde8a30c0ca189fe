package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

func TestConflictDetector_CapacityMonotonicity(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	detector := NewConflictDetector(NewCapacityCounter(store), nil)
	resource := &domain.Resource{ID: 1, Capacity: 3}

	var added []*domain.Reservation
	for i := 0; i < 3; i++ {
		available, err := detector.IsAvailable(ctx, resource, clock(10, 0, monday), clock(11, 0, monday), 0)
		require.NoError(t, err)
		assert.True(t, available, "reservation %d should still fit", i)

		// каждая пересекает 10:00-11:00 по-своему
		start := clock(9, 30+i*10, monday)
		added = append(added, store.add(1, 0, start, start.Add(time.Hour), domain.StatusConfirmed))
	}

	available, err := detector.IsAvailable(ctx, resource, clock(10, 15, monday), clock(10, 30, monday), 0)
	require.NoError(t, err)
	assert.False(t, available)

	added[1].Status = domain.StatusCancelled

	available, err = detector.IsAvailable(ctx, resource, clock(10, 15, monday), clock(10, 30, monday), 0)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCapacityCounter_CancelledNeverCounts(t *testing.T) {
	store := &memoryStore{}
	counter := NewCapacityCounter(store)

	store.add(1, 0, clock(10, 0, monday), clock(11, 0, monday), domain.StatusCancelled)
	store.add(1, 0, clock(10, 0, monday), clock(11, 0, monday), domain.StatusPending)
	store.add(1, 0, clock(10, 0, monday), clock(11, 0, monday), domain.StatusCompleted)

	count, err := counter.CountOverlapping(context.Background(), domain.ByResource(1), clock(10, 0, monday), clock(11, 0, monday))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCapacityCounter_TouchingEndpointsDoNotCount(t *testing.T) {
	store := &memoryStore{}
	counter := NewCapacityCounter(store)
	store.add(1, 0, clock(9, 30, monday), clock(10, 0, monday), domain.StatusConfirmed)

	count, err := counter.CountOverlapping(context.Background(), domain.ByResource(1), clock(10, 0, monday), clock(10, 30, monday))
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = counter.CountOverlapping(context.Background(), domain.ByResource(1), clock(9, 0, monday), clock(9, 30, monday))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestConflictDetector_PooledVersusPerAgent(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	detector := NewConflictDetector(NewCapacityCounter(store), nil)
	resource := &domain.Resource{ID: 1, Capacity: 3}

	store.add(1, 7, clock(10, 0, monday), clock(11, 0, monday), domain.StatusConfirmed)
	store.add(1, 7, clock(10, 0, monday), clock(11, 0, monday), domain.StatusConfirmed)
	store.add(1, 8, clock(10, 0, monday), clock(11, 0, monday), domain.StatusConfirmed)

	pooled, err := detector.Check(ctx, resource, clock(10, 0, monday), clock(11, 0, monday), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, pooled.Overlapping)
	assert.False(t, pooled.Available)

	agentSeven, err := detector.Check(ctx, resource, clock(10, 0, monday), clock(11, 0, monday), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, agentSeven.Overlapping)
	assert.True(t, agentSeven.Available)
	assert.Equal(t, 1, agentSeven.FreeSpots())

	agentNine, err := detector.Check(ctx, resource, clock(10, 0, monday), clock(11, 0, monday), 9)
	require.NoError(t, err)
	assert.Zero(t, agentNine.Overlapping)
}

func TestConflictDetector_CapacityClamped(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	detector := NewConflictDetector(NewCapacityCounter(store), nil)

	zeroCapacity := &domain.Resource{ID: 1, Capacity: 0}
	decision, err := detector.Check(ctx, zeroCapacity, clock(10, 0, monday), clock(11, 0, monday), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, decision.Capacity)
	assert.True(t, decision.Available)

	hugeCapacity := &domain.Resource{ID: 1, Capacity: 1000}
	decision, err = detector.Check(ctx, hugeCapacity, clock(10, 0, monday), clock(11, 0, monday), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxCapacity, decision.Capacity)
}

func TestConflictDetector_InvalidIntervalFailsClosed(t *testing.T) {
	store := &memoryStore{}
	recorder := newRecordingMetrics()
	detector := NewConflictDetector(NewCapacityCounter(store), recorder)
	resource := &domain.Resource{ID: 1, Capacity: 5}

	for _, end := range []time.Time{clock(10, 0, monday), clock(9, 0, monday)} {
		available, err := detector.IsAvailable(context.Background(), resource, clock(10, 0, monday), end, 0)
		require.NoError(t, err)
		assert.False(t, available)
	}
	assert.Zero(t, store.calls)
	assert.Equal(t, 2, recorder.checks[metrics.ResultUnavailable])
}

func TestConflictDetector_StorageErrorPropagates(t *testing.T) {
	storageErr := errors.New("connection refused")
	store := &memoryStore{err: storageErr}
	recorder := newRecordingMetrics()
	detector := NewConflictDetector(NewCapacityCounter(store), recorder)

	available, err := detector.IsAvailable(context.Background(), &domain.Resource{ID: 1, Capacity: 5},
		clock(10, 0, monday), clock(11, 0, monday), 0)

	assert.False(t, available)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, storageErr)
	assert.Equal(t, 1, recorder.checks[metrics.ResultError])
}
