package invalidate_reservations

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// UseCase use case для закрытия действующих бронирований текущего учебного года
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider заменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute помечает недействительными все действующие бронирования учебного года.
// Бронирования не удаляются и не отвязываются от комнат; повторный запуск ничего не меняет.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Определяем учебный год
	window := domain.AcademicYearWindow(uc.timeProvider.Now())

	uc.logger.Info("InvalidateReservations: window=[%s, %s]",
		window.Start.Format(domain.DateFormat), window.End.Format(domain.DateFormat))

	response := &Response{
		WindowStart:    window.Start,
		WindowEnd:      window.End,
		ReservationIDs: make([]string, 0),
	}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Получаем действующие бронирования окна (с блокировкой строк)
		reservations, err := uc.reservationRepo.GetValidInWindow(txCtx, window.Start, window.End)
		if err != nil {
			uc.logger.Error("InvalidateReservations: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		// 3. Закрываем каждое бронирование
		for _, reservation := range reservations {
			if !reservation.Invalidate() {
				continue
			}
			if err := uc.reservationRepo.Save(txCtx, reservation); err != nil {
				uc.logger.Error("InvalidateReservations: failed to save reservation id=%s: %v", reservation.ID, err)
				return fmt.Errorf("%w: failed to save reservation: %w", ErrInternal, err)
			}
			response.ReservationIDs = append(response.ReservationIDs, reservation.ID)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	response.Invalidated = len(response.ReservationIDs)

	if uc.metrics != nil {
		uc.metrics.AddInvalidated(response.Invalidated)
	}

	uc.logger.Info("InvalidateReservations: %d reservations invalidated", response.Invalidated)

	return response, nil
}
