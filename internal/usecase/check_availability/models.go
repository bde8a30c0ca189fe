package check_availability

import "time"

// Request модель запроса на проверку доступности интервала
type Request struct {
	ResourceID int64     // ID ресурса
	Start      time.Time // Начало интервала
	End        time.Time // Конец интервала (не включается)
	AssigneeID int64     // ID исполнителя, 0 = любой (общая вместимость)
}

// Response модель ответа с решением о доступности
type Response struct {
	ResourceID     int64
	AssigneeID     int64
	Start          time.Time
	End            time.Time
	BufferedStart  time.Time // Начало с учетом буфера до
	BufferedEnd    time.Time // Конец с учетом буфера после
	Overlapping    int       // Пересекающиеся неотменённые бронирования
	Capacity       int       // Вместимость ресурса
	AvailableSpots int       // Свободные места
	Available      bool      // Можно ли добавить ещё одно бронирование
}
