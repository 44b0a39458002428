package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/booking"
)

// UseCase use case для переноса бронирования на новые дату и время
// Смена (date, time) - ровно тот случай, который требует полной ревалидации:
// проверки выполняются заново, как при создании
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     ScheduleService
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule ScheduleService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, customer=%d, date=%s, time=%s",
		req.BookingID, req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Клиент может переносить только своё бронирование
	if booking.CustomerID != req.CustomerID {
		uc.logger.Warn("UpdateBooking: customer=%d is not the owner of booking id=%d",
			req.CustomerID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Статус должен допускать перенос
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("UpdateBooking: booking id=%d cannot be rescheduled, status=%s",
			req.BookingID, booking.Status)
		return nil, ErrCannotReschedule
	}

	// 5. Новая дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("UpdateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	// 6. Проверка доступности нового слота и перенос в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// Переносимое бронирование не должно конфликтовать со своим же следом
		others := excludeBooking(bookings, booking.ID)

		candidates := uc.schedule.CandidateSlots(req.Date)
		if !isSlotAvailable(req.StartTime, candidates, others) {
			uc.logger.Warn("UpdateBooking: slot %s %s is not available",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotUnavailable
		}

		if err := uc.bookingRepo.Reschedule(txCtx, booking.ID, req.Date, req.StartTime); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateBooking: slot %s %s taken by concurrent booking",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotUnavailable
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to reschedule booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully rescheduled booking id=%d to %s %s",
		booking.ID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		ID:         booking.ID,
		CustomerID: booking.CustomerID,
		ServiceID:  booking.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		SlotCount:  booking.SlotCount,
		Status:     string(booking.Status),
	}, nil
}

// excludeBooking возвращает список бронирований без указанного ID
func excludeBooking(bookings []*domain.Booking, id int64) []*domain.Booking {
	others := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID == id {
			continue
		}
		others = append(others, b)
	}
	return others
}
