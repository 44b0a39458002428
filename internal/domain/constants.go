package domain

// Default configuration values
const (
	DefaultSlotStepMinutes  = 60
	DefaultServiceSlotCount = 1

	// LongServiceSlotCount количество последовательных слотов для длительных услуг
	LongServiceSlotCount = 3
)

// Business validation constants
const (
	MinSlotStepMinutes          = 5
	MaxSlotStepMinutes          = 60
	MaxServiceSlotCount         = 8
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Неактивные бронирования не занимают слоты при расчёте доступности
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledByWorkshop,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
