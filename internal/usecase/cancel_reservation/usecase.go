package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DormService/internal/domain"
	chambreRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/chambre"
	reservationRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/reservation"
)

// UseCase use case для отмены действующего бронирования студента
type UseCase struct {
	reservationRepo ReservationRepository
	chambreRepo     ChambreRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	chambreRepo ChambreRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		chambreRepo:     chambreRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute отвязывает действующее бронирование студента от комнаты и удаляет его.
// Если действующего бронирования нет, возвращает ErrNoActiveReservation и ничего не меняет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: cin=%d", req.Cin)

	// 1. Валидация входных данных
	if req.Cin <= 0 {
		uc.logger.Warn("CancelReservation: validation failed: cin=%d", req.Cin)
		return nil, fmt.Errorf("%w: cin must be positive", ErrInvalidInput)
	}

	var response *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Ищем действующее бронирование студента
		reservation, err := uc.reservationRepo.GetValidByStudentCin(txCtx, req.Cin)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CancelReservation: no active reservation for cin=%d", req.Cin)
				return ErrNoActiveReservation
			}
			uc.logger.Error("CancelReservation: failed to get reservation for cin=%d: %v", req.Cin, err)
			return fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
		}

		response = &Response{ReservationID: reservation.ID}

		// 3. Отвязываем бронирование от комнаты
		chambre, err := uc.chambreRepo.GetByReservationID(txCtx, reservation.ID)
		switch {
		case errors.Is(err, chambreRepo.ErrChambreNotFound):
			uc.logger.Warn("CancelReservation: reservation id=%s is not linked to any chambre", reservation.ID)
		case err != nil:
			uc.logger.Error("CancelReservation: failed to get chambre of reservation id=%s: %v", reservation.ID, err)
			return fmt.Errorf("%w: failed to get chambre: %w", ErrInternal, err)
		default:
			chambre.DetachReservation(reservation.ID)
			if err := uc.chambreRepo.Save(txCtx, chambre); err != nil {
				uc.logger.Error("CancelReservation: failed to save chambre id=%d: %v", chambre.ID, err)
				return fmt.Errorf("%w: failed to save chambre: %w", ErrInternal, err)
			}
			chambreID := chambre.ID
			response.ChambreID = &chambreID
		}

		// 4. Удаляем бронирование (связь со студентом удаляется каскадно)
		if err := uc.reservationRepo.Delete(txCtx, reservation.ID); err != nil {
			uc.logger.Error("CancelReservation: failed to delete reservation id=%s: %v", reservation.ID, err)
			return fmt.Errorf("%w: failed to delete reservation: %w", ErrInternal, err)
		}

		response.Message = fmt.Sprintf(domain.CancellationMessageFormat, reservation.ID)
		return nil
	})

	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncCancellation()
	}

	uc.logger.Info("CancelReservation: reservation id=%s cancelled for cin=%d", response.ReservationID, req.Cin)

	return response, nil
}
