package get_available_slots

import (
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ResourceID      int64  // ID ресурса
	Date            string // Дата в формате YYYY-MM-DD
	DurationMinutes int    // Длительность, 0 = длительность ресурса
	AssigneeID      int64  // ID исполнителя, 0 = любой (общая вместимость)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            string // Дата, на которую запрашивались слоты
	ResourceID      int64  // ID ресурса
	AssigneeID      int64  // ID исполнителя (0 = любой)
	DurationMinutes int    // Длительность, с которой считались слоты
	Slots           []Slot // Список доступных слотов по возрастанию
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeOfDay // Время начала слота (например, "10:00")
	DurationMinutes int             // Длительность слота в минутах
	AvailableSpots  int             // Количество свободных мест
	TotalSpots      int             // Общее количество мест
}
