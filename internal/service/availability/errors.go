package availability

import "errors"

var (
	// ErrStorage возвращается, когда хранилище бронирований не смогло ответить.
	// Ошибка хранилища никогда не трактуется как ноль пересечений.
	ErrStorage = errors.New("availability: reservation storage failure")

	// ErrInvalidDate возвращается ValidateSlot для некорректной даты
	ErrInvalidDate = errors.New("availability: invalid date")

	// ErrDateNotBookable возвращается ValidateSlot для даты в прошлом, за горизонтом или в блэкаут
	ErrDateNotBookable = errors.New("availability: date is not bookable")

	// ErrClosed возвращается ValidateSlot, когда у ресурса нет расписания на дату
	ErrClosed = errors.New("availability: resource is closed on this date")

	// ErrOffGrid возвращается ValidateSlot, когда время не совпадает с сеткой слотов
	ErrOffGrid = errors.New("availability: start time is not on the slot grid")

	// ErrInBreak возвращается ValidateSlot, когда время начала попадает в перерыв
	ErrInBreak = errors.New("availability: start time falls into a break")
)
