package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается при попытке перенести чужое бронирование
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrCannotReschedule возвращается, когда статус бронирования не допускает перенос
	ErrCannotReschedule = errors.New("update_booking: booking cannot be rescheduled")

	// ErrPastDate возвращается при попытке переноса на прошедшую дату
	ErrPastDate = errors.New("update_booking: booking date is in the past")

	// ErrSlotUnavailable возвращается, когда новое время отсутствует
	// в текущем множестве свободных слотов
	ErrSlotUnavailable = errors.New("update_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
