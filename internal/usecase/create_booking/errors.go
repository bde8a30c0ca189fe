package create_booking

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateNotBookable возвращается для даты в прошлом, за горизонтом бронирования или в закрытый день
	ErrDateNotBookable = errors.New("create_booking: date is not bookable")

	// ErrResourceClosed возвращается, когда у ресурса нет расписания на дату
	ErrResourceClosed = errors.New("create_booking: resource is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не на сетке слотов или попадает в перерыв
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен (все места заняты)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
