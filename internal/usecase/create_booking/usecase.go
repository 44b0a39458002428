package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WorkshopService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-WorkshopService/internal/infra/storage/booking"
	customerClient "github.com/m04kA/SMC-WorkshopService/internal/integrations/customerservice"
	serviceCatalog "github.com/m04kA/SMC-WorkshopService/internal/service/catalog"
	"github.com/m04kA/SMC-WorkshopService/pkg/ptr"
)

// UseCase use case для создания бронирования
// Валидация линейная: прошедшая дата, затем членство времени в актуальном
// множестве свободных слотов; проверка и вставка выполняются в сериализуемой
// транзакции, уникальный индекс БД - финальная защита от двойного бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	schedule       ScheduleService
	catalog        ServiceCatalog
	customerClient CustomerServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule ScheduleService,
	catalog ServiceCatalog,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		schedule:       schedule,
		catalog:        catalog,
		customerClient: customerClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга из каталога (определяет класс длительности)
	service, err := uc.catalog.ByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceCatalog.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	// 4. Данные клиента для денормализации (с graceful degradation)
	var customerName, vehiclePlate *string
	customer, err := uc.customerClient.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	switch {
	case err == nil:
		customerName = ptr.Ptr(customer.Name)
		if customer.VehiclePlate != "" {
			vehiclePlate = ptr.Ptr(customer.VehiclePlate)
		}
	case errors.Is(err, customerClient.ErrCustomerNotFound):
		uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
		return nil, ErrCustomerNotFound
	case errors.Is(err, customerClient.ErrServiceDegraded):
		// CustomerService недоступен - создаём бронирование без карточки клиента
		uc.logger.Warn("CreateBooking: proceeding without customer data for customer=%d", req.CustomerID)
	default:
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Существующие бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Пересчитываем доступность в момент коммита
		candidates := uc.schedule.CandidateSlots(req.Date)
		if !isSlotAvailable(req.StartTime, candidates, bookings) {
			uc.logger.Warn("CreateBooking: slot %s %s is not available",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotUnavailable
		}

		// 5.3. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			CustomerID:  req.CustomerID,
			ServiceID:   req.ServiceID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			SlotCount:   service.SlotCount,
			Status:      domain.StatusConfirmed,
			// Денормализация данных услуги
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			// Денормализация данных клиента
			CustomerName: customerName,
			VehiclePlate: vehiclePlate,
			// Заметки
			Notes: req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Нарушение уникальности (date, time) - конкурентная запись успела раньше
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s %s taken by concurrent booking",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotUnavailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:           result.ID,
		CustomerID:   result.CustomerID,
		ServiceID:    result.ServiceID,
		Date:         result.BookingDate,
		StartTime:    result.StartTime,
		SlotCount:    result.SlotCount,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		CustomerName: result.CustomerName,
		VehiclePlate: result.VehiclePlate,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
