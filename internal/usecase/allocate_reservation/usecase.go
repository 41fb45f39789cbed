package allocate_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DormService/internal/domain"
	chambreRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/chambre"
	etudiantRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/etudiant"
	"github.com/m04kA/SMC-DormService/pkg/metrics"
)

// UseCase use case для бронирования места в комнате с проверкой вместимости
type UseCase struct {
	chambreRepo     ChambreRepository
	etudiantRepo    EtudiantRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	chambreRepo ChambreRepository,
	etudiantRepo EtudiantRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		chambreRepo:     chambreRepo,
		etudiantRepo:    etudiantRepo,
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

// Execute выполняет use case бронирования.
// Проверка вместимости и запись выполняются в одной сериализуемой транзакции,
// строка комнаты блокируется, поэтому конкурентные бронирования одной комнаты не превышают её вместимость.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateReservation: numeroChambre=%d, cin=%d", req.NumeroChambre, req.Cin)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем учебный год
	window := domain.AcademicYearWindow(uc.timeProvider.Now())

	var response *Response

	// 3. Выполняем проверку и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем комнату с блокировкой (FOR UPDATE)
		chambre, err := uc.chambreRepo.GetByNumero(txCtx, req.NumeroChambre)
		if err != nil {
			if errors.Is(err, chambreRepo.ErrChambreNotFound) {
				uc.logger.Warn("AllocateReservation: chambre numero=%d not found", req.NumeroChambre)
				return ErrRoomNotFound
			}
			uc.logger.Error("AllocateReservation: failed to get chambre numero=%d: %v", req.NumeroChambre, err)
			return fmt.Errorf("%w: failed to get chambre: %w", ErrInternal, err)
		}

		// 3.2. Получаем студента
		etudiant, err := uc.etudiantRepo.GetByCin(txCtx, req.Cin)
		if err != nil {
			if errors.Is(err, etudiantRepo.ErrEtudiantNotFound) {
				uc.logger.Warn("AllocateReservation: etudiant cin=%d not found", req.Cin)
				return ErrStudentNotFound
			}
			uc.logger.Error("AllocateReservation: failed to get etudiant cin=%d: %v", req.Cin, err)
			return fmt.Errorf("%w: failed to get etudiant: %w", ErrInternal, err)
		}

		// 3.3. Считаем занятость комнаты в текущем учебном году
		occupancy, err := uc.chambreRepo.CountValidReservationsInWindow(txCtx, chambre.ID, window.Start, window.End)
		if err != nil {
			uc.logger.Error("AllocateReservation: failed to count reservations of chambre id=%d: %v", chambre.ID, err)
			return fmt.Errorf("%w: failed to count reservations: %w", ErrInternal, err)
		}

		// 3.4. Привязываем новое бронирование к комнате с проверкой вместимости.
		// Отказ происходит до любой записи в БД.
		reservation := domain.NewReservation(window.Start)
		if err := chambre.AttachReservation(reservation, &occupancy); err != nil {
			if !chambre.Type.IsKnown() {
				uc.logger.Warn("AllocateReservation: chambre numero=%d has unknown type %q, treated as full",
					chambre.Numero, chambre.Type)
			} else {
				uc.logger.Warn("AllocateReservation: chambre numero=%d is full, %d/%d places taken",
					chambre.Numero, occupancy, chambre.Type.Capacity())
			}
			return ErrRoomFull
		}

		uc.logger.Info("AllocateReservation: chambre numero=%d has free place, %d/%d places taken",
			chambre.Numero, occupancy, chambre.Type.Capacity())

		// 3.5. Сохраняем бронирование
		if _, err := uc.reservationRepo.Create(txCtx, reservation); err != nil {
			uc.logger.Error("AllocateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		// 3.6. Сохраняем связь комнаты с бронированием
		if err := uc.chambreRepo.Save(txCtx, chambre); err != nil {
			uc.logger.Error("AllocateReservation: failed to save chambre id=%d: %v", chambre.ID, err)
			return fmt.Errorf("%w: failed to save chambre: %w", ErrInternal, err)
		}

		// 3.7. Связываем бронирование со студентом (по этой связи работает отмена)
		etudiant.AttachReservation(reservation)
		if err := uc.etudiantRepo.Save(txCtx, etudiant); err != nil {
			uc.logger.Error("AllocateReservation: failed to save etudiant id=%d: %v", etudiant.ID, err)
			return fmt.Errorf("%w: failed to save etudiant: %w", ErrInternal, err)
		}

		response = &Response{
			ReservationID:      reservation.ID,
			AnneeUniversitaire: reservation.AnneeUniversitaire,
			EstValide:          reservation.EstValide,
			ChambreID:          chambre.ID,
			NumeroChambre:      chambre.Numero,
			TypeChambre:        string(chambre.Type),
			EtudiantID:         etudiant.ID,
			Occupied:           occupancy + 1,
			Capacity:           chambre.Type.Capacity(),
		}
		return nil
	})

	if err != nil {
		uc.recordOutcome(err)
		return nil, err
	}

	uc.recordOutcome(nil)
	uc.logger.Info("AllocateReservation: successfully created reservation id=%s in chambre numero=%d for cin=%d",
		response.ReservationID, response.NumeroChambre, req.Cin)

	return response, nil
}

func (uc *UseCase) recordOutcome(err error) {
	if uc.metrics == nil {
		return
	}

	switch {
	case err == nil:
		uc.metrics.IncAllocation(metrics.AllocationCreated)
	case errors.Is(err, ErrRoomFull):
		uc.metrics.IncAllocation(metrics.AllocationRoomFull)
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrStudentNotFound):
		uc.metrics.IncAllocation(metrics.AllocationNotFound)
	default:
		uc.metrics.IncAllocation(metrics.AllocationFailed)
	}
}
