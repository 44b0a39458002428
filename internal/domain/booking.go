package domain

import (
	"time"

	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusInProgress          BookingStatus = "in_progress"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByWorkshop BookingStatus = "cancelled_by_workshop"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a workshop appointment
// SlotCount определяет, сколько последовательных слотов занимает запись:
// длительные услуги блокируют стартовый час и следующие (SlotCount-1) часов
type Booking struct {
	ID          int64
	CustomerID  int64
	ServiceID   int64
	BookingDate time.Time
	StartTime   types.TimeString
	SlotCount   int
	Status      BookingStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	CustomerName *string
	VehiclePlate *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByCustomer &&
		b.Status != StatusCancelledByWorkshop &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking date/time can still be changed
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer || b.Status == StatusCancelledByWorkshop
}
