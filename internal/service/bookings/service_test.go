package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-WorkshopService/internal/service/bookings/models"
	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	byID       map[int64]*domain.Booking
	byCustomer []*domain.Booking
	byDate     []*domain.Booking

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	deletedID       int64
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return f.byDate, nil
}

func (f *fakeRepo) GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.byCustomer, nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	f.cancelledID = id
	f.cancelledStatus = status
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          11,
		CustomerID:  7,
		ServiceID:   1,
		BookingDate: time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00"),
		SlotCount:   1,
		Status:      status,
		ServiceName: "Oil change",
	}
}

func TestGetByID_Owner(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: testBooking(domain.StatusConfirmed)}}
	svc := NewService(repo, noopLogger{})

	booking, err := svc.GetByID(context.Background(), 11, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(11), booking.ID)
	assert.Equal(t, "10:00", booking.StartTime)
}

func TestGetByID_NotOwner(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: testBooking(domain.StatusConfirmed)}}
	svc := NewService(repo, noopLogger{})

	_, err := svc.GetByID(context.Background(), 11, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{byID: map[int64]*domain.Booking{}}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 99, 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings(t *testing.T) {
	repo := &fakeRepo{byCustomer: []*domain.Booking{
		testBooking(domain.StatusConfirmed),
		testBooking(domain.StatusCompleted),
	}}
	svc := NewService(repo, noopLogger{})

	result, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{CustomerID: 7})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestGetCustomerBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopLogger{})

	badStatus := "not_a_status"
	_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: 7,
		Status:     &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Owner(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: testBooking(domain.StatusConfirmed)}}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 11, &models.CancelBookingRequest{
		CustomerID:         7,
		CancellationReason: "не смогу приехать",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByCustomer, repo.cancelledStatus)
}

func TestCancel_NotOwner(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: testBooking(domain.StatusConfirmed)}}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 11, &models.CancelBookingRequest{CustomerID: 8})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_CompletedBooking(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: testBooking(domain.StatusCompleted)}}
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 11, &models.CancelBookingRequest{CustomerID: 7})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetDayBookings(t *testing.T) {
	repo := &fakeRepo{byDate: []*domain.Booking{testBooking(domain.StatusConfirmed)}}
	svc := NewService(repo, noopLogger{})

	result, err := svc.GetDayBookings(context.Background(), time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestDelete_Owner(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: testBooking(domain.StatusCancelledByCustomer)}}
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 11, 7))
	assert.Equal(t, int64(11), repo.deletedID)
}

func TestDelete_NotOwner(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: testBooking(domain.StatusConfirmed)}}
	svc := NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), 11, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
