package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DormService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DormService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями без проверки вместимости
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create создает бронирование; к комнатам и студентам оно не привязывается
func (s *Service) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error) {
	if req.AnneeUniversitaire.IsZero() {
		s.logger.Warn("Create: empty anneeUniversitaire")
		return nil, fmt.Errorf("%w: anneeUniversitaire is required", ErrInvalidInput)
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}

	s.logger.Info("Create: creating reservation id=%s, annee=%s", id, req.AnneeUniversitaire.Format(domain.DateFormat))

	reservation, err := s.reservationRepo.Create(ctx, &domain.Reservation{
		ID:                 id,
		AnneeUniversitaire: req.AnneeUniversitaire,
		EstValide:          req.EstValide,
	})
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationExists) {
			s.logger.Warn("Create: reservation id=%s already exists", id)
			return nil, ErrReservationExists
		}
		s.logger.Error("Create: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created reservation id=%s", id)
	return models.FromDomainReservation(reservation), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetAll возвращает все бронирования
func (s *Service) GetAll(ctx context.Context) (*models.ReservationListResponse, error) {
	list, err := s.reservationRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// Update меняет дату учебного года и/или признак действительности бронирования
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: updating reservation id=%s", id)

	var updated *domain.Reservation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Update - get reservation: %w", ErrInternal, err)
		}

		if req.AnneeUniversitaire != nil {
			reservation.AnneeUniversitaire = *req.AnneeUniversitaire
		}
		if req.EstValide != nil {
			reservation.EstValide = *req.EstValide
		}

		if err := s.reservationRepo.Save(txCtx, reservation); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Update - save reservation: %w", ErrInternal, err)
		}

		updated = reservation
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			s.logger.Warn("Update: reservation id=%s not found", id)
		} else {
			s.logger.Error("Update: failed to update reservation id=%s: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("Update: successfully updated reservation id=%s", id)
	return models.FromDomainReservation(updated), nil
}

// Delete удаляет бронирование вместе со связями с комнатами и студентами
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting reservation id=%s", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%s", id)
	return nil
}

// CountInPeriod считает бронирования (включая недействительные), дата которых лежит в [start, end]
func (s *Service) CountInPeriod(ctx context.Context, start, end time.Time) (*models.CountResponse, error) {
	if end.Before(start) {
		s.logger.Warn("CountInPeriod: start=%s is after end=%s", start.Format(domain.DateFormat), end.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: start must not be after end", ErrInvalidPeriod)
	}

	count, err := s.reservationRepo.CountInWindow(ctx, start, end)
	if err != nil {
		s.logger.Error("CountInPeriod: repository error: %v", err)
		return nil, fmt.Errorf("%w: CountInPeriod - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CountInPeriod: %d reservations between %s and %s", count,
		start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	return &models.CountResponse{
		Start: start.Format(domain.DateFormat),
		End:   end.Format(domain.DateFormat),
		Count: count,
	}, nil
}
