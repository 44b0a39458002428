package update_booking

import (
	"time"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	updateBooking "github.com/m04kA/SMC-WorkshopService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	CustomerID  int64  `json:"customerId"`
	BookingDate string `json:"bookingDate"` // Новая дата, "2024-04-03"
	StartTime   string `json:"startTime"`   // Новое время, "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customerId"`
	ServiceID   int64  `json:"serviceId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	SlotCount   int    `json:"slotCount"`
	Status      string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		BookingID:  bookingID,
		CustomerID: r.CustomerID,
		Date:       bookingDate,
		StartTime:  startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		CustomerID:  resp.CustomerID,
		ServiceID:   resp.ServiceID,
		BookingDate: resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		SlotCount:   resp.SlotCount,
		Status:      resp.Status,
	}
}
