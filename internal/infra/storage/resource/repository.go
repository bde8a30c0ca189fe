package resource

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения бронируемых ресурсов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ресурс по ID.
// Переопределение расписания хранится как JSON объект {"1": "09:00-12:00"}.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"duration_minutes",
		"capacity",
		"buffer_before_minutes",
		"buffer_after_minutes",
		"use_global_schedule",
		"schedule_override",
		"created_at",
		"updated_at",
	).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		resource             domain.Resource
		override             sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&resource.Name,
		&resource.DurationMinutes,
		&resource.Capacity,
		&resource.BufferBeforeMinutes,
		&resource.BufferAfterMinutes,
		&resource.UseGlobalSchedule,
		&override,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %w", ErrScanRow, err)
	}

	if override.Valid {
		resource.ScheduleOverride = DecodeScheduleOverride(override.String)
	}
	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	return &resource, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DecodeScheduleOverride разбирает JSON переопределения расписания.
// Ключи - номер дня недели (0 = воскресенье) или его английское название.
// Испорченный документ дает пустое переопределение: ресурс работает по общему расписанию.
// Неизвестные ключи пропускаются.
func DecodeScheduleOverride(raw string) map[time.Weekday]string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var entries map[string]string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}

	override := make(map[time.Weekday]string, len(entries))
	for key, value := range entries {
		day, ok := parseWeekday(key)
		if !ok {
			continue
		}
		override[day] = value
	}

	return override
}

func parseWeekday(key string) (time.Weekday, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if day, ok := weekdayNames[key]; ok {
		return day, true
	}

	n, err := strconv.Atoi(key)
	if err != nil || n < int(time.Sunday) || n > int(time.Saturday) {
		return 0, false
	}
	return time.Weekday(n), true
}
