package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-WorkshopService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	byID          map[int64]*domain.Booking
	byDate        []*domain.Booking
	rescheduleErr error
	rescheduled   bool
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

func (f *fakeRepo) Reschedule(ctx context.Context, id int64, date time.Time, startTime types.TimeString) error {
	if f.rescheduleErr != nil {
		return f.rescheduleErr
	}
	f.rescheduled = true
	return nil
}

type fakeSchedule struct {
	slots []types.TimeString
}

func (f *fakeSchedule) CandidateSlots(date time.Time) []types.TimeString {
	return f.slots
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func slots(values ...string) []types.TimeString {
	result := make([]types.TimeString, len(values))
	for i, v := range values {
		result[i] = types.TimeString(v)
	}
	return result
}

var (
	testNow = time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)
	oldDate = time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)
	newDate = time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)
)

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          11,
		CustomerID:  7,
		ServiceID:   1,
		BookingDate: oldDate,
		StartTime:   types.TimeString("10:00"),
		SlotCount:   1,
		Status:      domain.StatusConfirmed,
	}
}

func newTestUseCase(repo *fakeRepo, schedule *fakeSchedule) *UseCase {
	uc := NewUseCase(repo, schedule, fakeTxManager{}, noopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		BookingID:  11,
		CustomerID: 7,
		Date:       newDate,
		StartTime:  types.TimeString("11:00"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: existingBooking()}}

	uc := newTestUseCase(repo, &fakeSchedule{slots: slots("09:00", "10:00", "11:00")})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, repo.rescheduled)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, newDate, resp.Date)
	assert.Equal(t, types.TimeString("11:00"), resp.StartTime)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{}}

	uc := newTestUseCase(repo, &fakeSchedule{slots: slots("11:00")})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: existingBooking()}}

	uc := newTestUseCase(repo, &fakeSchedule{slots: slots("11:00")})

	req := validRequest()
	req.CustomerID = 8

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_CannotRescheduleCompleted(t *testing.T) {
	booking := existingBooking()
	booking.Status = domain.StatusCompleted
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: booking}}

	uc := newTestUseCase(repo, &fakeSchedule{slots: slots("11:00")})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_PastDate(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{11: existingBooking()}}

	uc := newTestUseCase(repo, &fakeSchedule{slots: slots("11:00")})

	req := validRequest()
	req.Date = time.Date(2024, time.March, 29, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_SlotOccupiedByOtherBooking(t *testing.T) {
	other := &domain.Booking{
		ID:        12,
		StartTime: types.TimeString("11:00"),
		SlotCount: 1,
		Status:    domain.StatusConfirmed,
	}
	repo := &fakeRepo{
		byID:   map[int64]*domain.Booking{11: existingBooking()},
		byDate: []*domain.Booking{other},
	}

	uc := newTestUseCase(repo, &fakeSchedule{slots: slots("10:00", "11:00")})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_OwnFootprintExcluded(t *testing.T) {
	// Перенос в пределах того же дня: собственный след бронирования
	// не должен блокировать новое время
	booking := existingBooking()
	repo := &fakeRepo{
		byID:   map[int64]*domain.Booking{11: booking},
		byDate: []*domain.Booking{booking},
	}

	uc := newTestUseCase(repo, &fakeSchedule{slots: slots("09:00", "10:00", "11:00")})

	req := validRequest()
	req.Date = oldDate
	req.StartTime = types.TimeString("10:00")

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, repo.rescheduled)
}

func TestExecute_ConcurrentRescheduleMapsToSlotUnavailable(t *testing.T) {
	repo := &fakeRepo{
		byID:          map[int64]*domain.Booking{11: existingBooking()},
		rescheduleErr: bookingRepo.ErrSlotTaken,
	}

	uc := newTestUseCase(repo, &fakeSchedule{slots: slots("11:00")})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeSchedule{})

	req := validRequest()
	req.BookingID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
