package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ResourceID      int64           // ID ресурса
	CustomerID      int64           // ID клиента
	AssigneeID      int64           // ID исполнителя, 0 = любой
	Date            string          // Дата бронирования YYYY-MM-DD
	StartTime       types.TimeOfDay // Время начала слота (например, "10:00")
	DurationMinutes int             // Длительность, 0 = длительность ресурса
	Notes           *string         // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64     // ID созданного бронирования
	ResourceID      int64     // ID ресурса
	AssigneeID      *int64    // ID исполнителя
	CustomerID      int64     // ID клиента
	StartAt         time.Time // Начало
	EndAt           time.Time // Конец (не включается)
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус бронирования
	Notes           *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
