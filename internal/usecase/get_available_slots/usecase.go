package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
)

// UseCase use case для получения доступных слотов на дату
// Чистая композиция: кандидаты расписания минус занятость существующих бронирований
type UseCase struct {
	bookingRepo BookingRepository
	schedule    ScheduleService
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule ScheduleService,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		schedule:    schedule,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Кандидаты расписания (пусто для воскресений и праздников)
	candidates := uc.schedule.CandidateSlots(req.Date)
	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: workshop is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: candidates}, nil
	}

	// 3. Существующие бронирования на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Вычитаем занятые времена, порядок кандидатов сохраняется
	available := subtractOccupied(candidates, occupiedTimes(bookings))

	uc.logger.Info("GetAvailableSlots: date=%s, candidates=%d, available=%d",
		req.Date.Format(domain.DateFormat), len(candidates), len(available))

	return &Response{
		Date:  req.Date,
		Slots: available,
	}, nil
}
