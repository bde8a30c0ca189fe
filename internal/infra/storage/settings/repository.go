package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const table = "settings"

// Ключи таблицы настроек
const (
	KeyWeeklyHoursPrefix   = "weekly_hours."
	KeyBreaks              = "breaks"
	KeyFutureDaysLimit     = "future_days_limit"
	KeySlotIntervalMinutes = "slot_interval_minutes"
)

// Repository репозиторий глобальных настроек (таблица ключ-значение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает все настройки и собирает снимок domain.Settings.
// Отсутствующие ключи получают значения по умолчанию.
func (r *Repository) Get(ctx context.Context) (domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("key", "value").
		From(table).
		ToSql()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%w: Get - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return domain.Settings{}, fmt.Errorf("%w: Get - scan row: %w", ErrScanRow, err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: Get - rows error: %w", ErrScanRow, err)
	}

	return FromValues(values), nil
}

// Save сохраняет все ключи снимка (upsert)
func (r *Repository) Save(ctx context.Context, settings domain.Settings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(table).Columns("key", "value")
	for _, kv := range ToValues(settings) {
		builder = builder.Values(kv[0], kv[1])
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}

// FromValues собирает снимок из пар ключ-значение.
// Неизвестные ключи игнорируются, нечисловые лимиты заменяются значениями по умолчанию.
func FromValues(values map[string]string) domain.Settings {
	settings := domain.DefaultSettings()

	for key, value := range values {
		switch {
		case strings.HasPrefix(key, KeyWeeklyHoursPrefix):
			day, err := strconv.Atoi(strings.TrimPrefix(key, KeyWeeklyHoursPrefix))
			if err != nil || day < 0 || day >= len(settings.WeeklyHours) {
				continue
			}
			settings.WeeklyHours[day] = strings.TrimSpace(value)
		case key == KeyBreaks:
			settings.Breaks = value
		case key == KeyFutureDaysLimit:
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				settings.FutureDaysLimit = n
			}
		case key == KeySlotIntervalMinutes:
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				settings.SlotIntervalMinutes = n
			}
		}
	}

	return settings
}

// ToValues раскладывает снимок на пары ключ-значение в стабильном порядке
func ToValues(settings domain.Settings) [][2]string {
	values := make([][2]string, 0, len(settings.WeeklyHours)+3)
	for day, hours := range settings.WeeklyHours {
		values = append(values, [2]string{KeyWeeklyHoursPrefix + strconv.Itoa(day), hours})
	}
	values = append(values,
		[2]string{KeyBreaks, settings.Breaks},
		[2]string{KeyFutureDaysLimit, strconv.Itoa(settings.FutureDaysLimit)},
		[2]string{KeySlotIntervalMinutes, strconv.Itoa(settings.SlotIntervalMinutes)},
	)
	return values
}
