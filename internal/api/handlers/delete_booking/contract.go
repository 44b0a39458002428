package delete_booking

import "context"

type BookingService interface {
	Delete(ctx context.Context, bookingID, customerID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
