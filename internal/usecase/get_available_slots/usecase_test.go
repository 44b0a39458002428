package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeSchedule struct {
	slots []types.TimeString
}

func (f *fakeSchedule) CandidateSlots(date time.Time) []types.TimeString {
	return f.slots
}

func slots(values ...string) []types.TimeString {
	result := make([]types.TimeString, len(values))
	for i, v := range values {
		result[i] = types.TimeString(v)
	}
	return result
}

func confirmedBooking(startTime string, slotCount int) *domain.Booking {
	return &domain.Booking{
		StartTime: types.TimeString(startTime),
		SlotCount: slotCount,
		Status:    domain.StatusConfirmed,
	}
}

var testDate = time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)

func TestExecute_NoBookings(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeSchedule{slots: slots("09:00", "10:00", "11:00", "12:00")},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, slots("09:00", "10:00", "11:00", "12:00"), resp.Slots)
}

func TestExecute_ShortServiceOccupiesSingleSlot(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking("10:00", 1)}},
		&fakeSchedule{slots: slots("09:00", "10:00", "11:00", "12:00")},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, slots("09:00", "11:00", "12:00"), resp.Slots)
}

func TestExecute_LongServiceBlocksFollowingHours(t *testing.T) {
	// Услуга на 3 слота с началом в 10:00 блокирует 10:00, 11:00 и 12:00
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking("10:00", 3)}},
		&fakeSchedule{slots: slots("09:00", "10:00", "11:00", "12:00", "16:00", "17:00")},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, slots("09:00", "16:00", "17:00"), resp.Slots)
}

func TestExecute_LongServiceFootprintPastShiftEnd(t *testing.T) {
	// Начало в 12:00 при смене до 13:00: след покрывает 13:00 и 14:00,
	// которых нет среди кандидатов - вычитание вслепую безвредно
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking("12:00", 3)}},
		&fakeSchedule{slots: slots("09:00", "10:00", "11:00", "12:00", "16:00", "17:00")},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, slots("09:00", "10:00", "11:00", "16:00", "17:00"), resp.Slots)
}

func TestExecute_CancelledBookingDoesNotOccupy(t *testing.T) {
	cancelled := &domain.Booking{
		StartTime: types.TimeString("10:00"),
		SlotCount: 1,
		Status:    domain.StatusCancelledByCustomer,
	}

	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{cancelled}},
		&fakeSchedule{slots: slots("09:00", "10:00", "11:00")},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, slots("09:00", "10:00", "11:00"), resp.Slots)
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	repo := &fakeBookingRepo{err: assert.AnError}

	uc := NewUseCase(repo, &fakeSchedule{slots: slots()}, noopLogger{})

	// Для закрытого дня репозиторий не вызывается вовсе
	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeSchedule{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{err: assert.AnError},
		&fakeSchedule{slots: slots("09:00")},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_FootprintAtMidnightBoundary(t *testing.T) {
	// След, выходящий за пределы суток, обрывается без ошибки
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking("23:00", 3)}},
		&fakeSchedule{slots: slots("22:00", "23:00")},
		noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, slots("22:00"), resp.Slots)
}
