package blackout

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ErrInvalidCalendar возвращается при ошибке валидации файла блэкаутов
var ErrInvalidCalendar = errors.New("blackout: invalid calendar")

// EntryConfig одна запись файла блэкаутов.
// Заполняется ровно один вариант: date, пара from/to или yearly.
type EntryConfig struct {
	Date   string `yaml:"date,omitempty"`   // "2026-01-01"
	From   string `yaml:"from,omitempty"`   // "2026-05-01", включительно
	To     string `yaml:"to,omitempty"`     // "2026-05-11", включительно
	Yearly string `yaml:"yearly,omitempty"` // "12-31", каждый год
	Name   string `yaml:"name"`
}

// FileConfig корень файла блэкаутов
type FileConfig struct {
	Blackouts []EntryConfig `yaml:"blackouts"`
}

// Kind вид блэкаута
type Kind int

const (
	KindDate Kind = iota
	KindRange
	KindYearly
)

// Blackout закрытая для бронирования дата, диапазон дат или ежегодная дата
type Blackout struct {
	Kind  Kind
	From  time.Time // календарная дата в UTC, KindDate и KindRange
	To    time.Time // календарная дата в UTC, KindRange
	Month time.Month
	Day   int
	Name  string
}

// Covers проверяет, попадает ли календарная дата под блэкаут
func (b Blackout) Covers(date time.Time) bool {
	day := civil(date)
	switch b.Kind {
	case KindDate:
		return day.Equal(b.From)
	case KindRange:
		return !day.Before(b.From) && !day.After(b.To)
	case KindYearly:
		return day.Month() == b.Month && day.Day() == b.Day
	default:
		return false
	}
}

// Calendar набор блэкаутов
type Calendar struct {
	entries []Blackout
}

// NewCalendar создает календарь из уже разобранных записей
func NewCalendar(entries ...Blackout) *Calendar {
	return &Calendar{entries: entries}
}

// Load читает и валидирует YAML файл блэкаутов
func Load(path string) (*Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blackouts file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse blackouts file: %w", err)
	}

	return Parse(cfg)
}

// Parse валидирует конфигурацию и строит календарь.
// Первая некорректная запись отклоняет весь файл.
func Parse(cfg FileConfig) (*Calendar, error) {
	entries := make([]Blackout, 0, len(cfg.Blackouts))

	for i, e := range cfg.Blackouts {
		entry, err := parseEntry(e)
		if err != nil {
			return nil, fmt.Errorf("%w: blackouts[%d]: %v", ErrInvalidCalendar, i, err)
		}
		entries = append(entries, entry)
	}

	return &Calendar{entries: entries}, nil
}

func parseEntry(e EntryConfig) (Blackout, error) {
	hasDate := e.Date != ""
	hasRange := e.From != "" || e.To != ""
	hasYearly := e.Yearly != ""

	variants := 0
	for _, set := range []bool{hasDate, hasRange, hasYearly} {
		if set {
			variants++
		}
	}
	if variants != 1 {
		return Blackout{}, errors.New("exactly one of date, from/to or yearly is required")
	}

	switch {
	case hasDate:
		day, err := time.Parse(domain.DateFormat, e.Date)
		if err != nil {
			return Blackout{}, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", e.Date)
		}
		return Blackout{Kind: KindDate, From: day, Name: e.Name}, nil

	case hasRange:
		from, err := time.Parse(domain.DateFormat, e.From)
		if err != nil {
			return Blackout{}, fmt.Errorf("invalid from '%s', expected YYYY-MM-DD", e.From)
		}
		to, err := time.Parse(domain.DateFormat, e.To)
		if err != nil {
			return Blackout{}, fmt.Errorf("invalid to '%s', expected YYYY-MM-DD", e.To)
		}
		if to.Before(from) {
			return Blackout{}, fmt.Errorf("range %s..%s ends before it starts", e.From, e.To)
		}
		return Blackout{Kind: KindRange, From: from, To: to, Name: e.Name}, nil

	default:
		month, day, err := parseMonthDay(e.Yearly)
		if err != nil {
			return Blackout{}, err
		}
		return Blackout{Kind: KindYearly, Month: month, Day: day, Name: e.Name}, nil
	}
}

// parseMonthDay парсит "MM-DD"; 02-29 допустимо и срабатывает только в високосные годы
func parseMonthDay(s string) (time.Month, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid yearly '%s', expected MM-DD", s)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid yearly '%s', month must be 01-12", s)
	}
	day, err := strconv.Atoi(parts[1])
	// 2000 - високосный год, 29 февраля допустимо
	maxDay := time.Date(2000, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if err != nil || day < 1 || day > maxDay {
		return 0, 0, fmt.Errorf("invalid yearly '%s', day out of range", s)
	}

	return time.Month(month), day, nil
}

// IsBlocked проверяет, закрыта ли дата
func (c *Calendar) IsBlocked(date time.Time) bool {
	_, blocked := c.Reason(date)
	return blocked
}

// Reason возвращает название первого блэкаута, покрывающего дату
func (c *Calendar) Reason(date time.Time) (string, bool) {
	for _, e := range c.entries {
		if e.Covers(date) {
			return e.Name, true
		}
	}
	return "", false
}

// Len количество записей
func (c *Calendar) Len() int {
	return len(c.entries)
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
