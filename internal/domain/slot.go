package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// AvailableSlot время начала, которое ещё можно забронировать
type AvailableSlot struct {
	StartTime       types.TimeOfDay
	DurationMinutes int
	AvailableSpots  int // вместимость минус пересекающиеся бронирования
	TotalSpots      int // эффективная вместимость
}

// IsFullyAvailable возвращает true, если ни одно место не занято
func (s *AvailableSlot) IsFullyAvailable() bool {
	return s.AvailableSpots == s.TotalSpots
}

// OccupancyRate процент занятости (0-100)
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.TotalSpots == 0 {
		return 0
	}
	occupied := s.TotalSpots - s.AvailableSpots
	return float64(occupied) / float64(s.TotalSpots) * 100
}
