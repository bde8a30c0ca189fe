package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// CapacityCounter считает бронирования, пересекающие интервал
type CapacityCounter struct {
	store ReservationCounter
}

// NewCapacityCounter оборачивает хранилище бронирований
func NewCapacityCounter(store ReservationCounter) *CapacityCounter {
	return &CapacityCounter{store: store}
}

// CountOverlapping возвращает число неотменённых бронирований области scope,
// пересекающих [start, end). Сбои хранилища оборачиваются в ErrStorage.
func (c *CapacityCounter) CountOverlapping(ctx context.Context, scope domain.CapacityScope, start, end time.Time) (int, error) {
	count, err := c.store.CountOverlapping(ctx, scope, start, end)
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - resource=%d: %w", ErrStorage, scope.ResourceID(), err)
	}
	return count, nil
}

// Decision результат одной проверки вместимости
type Decision struct {
	Overlapping int
	Capacity    int
	Available   bool
}

// FreeSpots возвращает, сколько ещё бронирований помещается в интервал
func (d Decision) FreeSpots() int {
	if d.Overlapping >= d.Capacity {
		return 0
	}
	return d.Capacity - d.Overlapping
}

// ConflictDetector единственная точка решения, есть ли в интервале свободное место
type ConflictDetector struct {
	counter *CapacityCounter
	metrics MetricsRecorder
}

// NewConflictDetector создает детектор поверх счётчика
func NewConflictDetector(counter *CapacityCounter, recorder MetricsRecorder) *ConflictDetector {
	if recorder == nil {
		recorder = noMetrics{}
	}
	return &ConflictDetector{counter: counter, metrics: recorder}
}

// Check считает пересечения для [start, end) и сравнивает их с ограниченной вместимостью.
// Нулевой assigneeID объединяет вместимость всего ресурса, положительный считает
// только бронирования этого исполнителя.
// Пустой или перевёрнутый интервал недоступен и до хранилища не доходит.
func (d *ConflictDetector) Check(ctx context.Context, resource *domain.Resource, start, end time.Time, assigneeID int64) (Decision, error) {
	capacity := resource.EffectiveCapacity()

	if !start.Before(end) {
		d.metrics.ObserveAvailabilityCheck(metrics.ResultUnavailable)
		return Decision{Capacity: capacity}, nil
	}

	scope := domain.ByResourceAndAssignee(resource.ID, assigneeID)
	count, err := d.counter.CountOverlapping(ctx, scope, start, end)
	if err != nil {
		d.metrics.ObserveAvailabilityCheck(metrics.ResultError)
		return Decision{}, err
	}

	decision := Decision{
		Overlapping: count,
		Capacity:    capacity,
		Available:   count < capacity,
	}

	if decision.Available {
		d.metrics.ObserveAvailabilityCheck(metrics.ResultAvailable)
	} else {
		d.metrics.ObserveAvailabilityCheck(metrics.ResultUnavailable)
	}
	return decision, nil
}

// IsAvailable сообщает, помещается ли ещё одна бронь в [start, end)
func (d *ConflictDetector) IsAvailable(ctx context.Context, resource *domain.Resource, start, end time.Time, assigneeID int64) (bool, error) {
	decision, err := d.Check(ctx, resource, start, end, assigneeID)
	if err != nil {
		return false, err
	}
	return decision.Available, nil
}
