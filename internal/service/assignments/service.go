package assignments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DormService/internal/domain"
	chambreRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/chambre"
	etudiantRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/etudiant"
	reservationRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DormService/internal/service/assignments/models"
)

// Service административные привязки бронирований к комнатам и студентам без проверки вместимости
type Service struct {
	reservationRepo ReservationRepository
	chambreRepo     ChambreRepository
	etudiantRepo    EtudiantRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса привязок
func NewService(
	reservationRepo ReservationRepository,
	chambreRepo ChambreRepository,
	etudiantRepo EtudiantRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		chambreRepo:     chambreRepo,
		etudiantRepo:    etudiantRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// AttachReservationToRoom привязывает бронирование к комнате.
// Вместимость не проверяется; повторная привязка ничего не меняет.
func (s *Service) AttachReservationToRoom(ctx context.Context, reservationID string, chambreID int64) (*models.ChambreLinkResponse, error) {
	s.logger.Info("AttachReservationToRoom: reservation=%s, chambre=%d", reservationID, chambreID)

	return s.changeRoomLink(ctx, "AttachReservationToRoom", reservationID, chambreID,
		func(chambre *domain.Chambre, reservation *domain.Reservation) (bool, error) {
			if chambre.HasReservation(reservation.ID) {
				return false, nil
			}
			return true, chambre.AttachReservation(reservation, nil)
		})
}

// DetachReservationFromRoom отвязывает бронирование от комнаты.
// Если бронирование не было привязано к этой комнате, ничего не меняется.
func (s *Service) DetachReservationFromRoom(ctx context.Context, reservationID string, chambreID int64) (*models.ChambreLinkResponse, error) {
	s.logger.Info("DetachReservationFromRoom: reservation=%s, chambre=%d", reservationID, chambreID)

	return s.changeRoomLink(ctx, "DetachReservationFromRoom", reservationID, chambreID,
		func(chambre *domain.Chambre, reservation *domain.Reservation) (bool, error) {
			return chambre.DetachReservation(reservation.ID), nil
		})
}

// AttachReservationToStudent привязывает бронирование к студенту, найденному по фамилии и имени.
// Если студент не найден, возвращается ответ с Found=false без ошибки.
func (s *Service) AttachReservationToStudent(ctx context.Context, reservationID, nom, prenom string) (*models.EtudiantLinkResponse, error) {
	s.logger.Info("AttachReservationToStudent: reservation=%s, etudiant=%s %s", reservationID, nom, prenom)

	return s.changeStudentLink(ctx, "AttachReservationToStudent", reservationID, nom, prenom,
		func(etudiant *domain.Etudiant, reservation *domain.Reservation) bool {
			for _, r := range etudiant.ReservationList() {
				if r != nil && r.ID == reservation.ID {
					return false
				}
			}
			etudiant.AttachReservation(reservation)
			return true
		})
}

// DetachReservationFromStudent отвязывает бронирование от студента, найденного по фамилии и имени.
// Отсутствие студента или связи не является ошибкой.
func (s *Service) DetachReservationFromStudent(ctx context.Context, reservationID, nom, prenom string) (*models.EtudiantLinkResponse, error) {
	s.logger.Info("DetachReservationFromStudent: reservation=%s, etudiant=%s %s", reservationID, nom, prenom)

	return s.changeStudentLink(ctx, "DetachReservationFromStudent", reservationID, nom, prenom,
		func(etudiant *domain.Etudiant, reservation *domain.Reservation) bool {
			return etudiant.DetachReservation(reservation.ID)
		})
}

type roomMutation func(chambre *domain.Chambre, reservation *domain.Reservation) (bool, error)

func (s *Service) changeRoomLink(ctx context.Context, op, reservationID string, chambreID int64, mutate roomMutation) (*models.ChambreLinkResponse, error) {
	if strings.TrimSpace(reservationID) == "" || chambreID <= 0 {
		s.logger.Warn("%s: invalid input reservation=%q, chambre=%d", op, reservationID, chambreID)
		return nil, fmt.Errorf("%w: reservationId and positive chambreId are required", ErrInvalidInput)
	}

	var response *models.ChambreLinkResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		reservation, err := s.getReservation(txCtx, op, reservationID)
		if err != nil {
			return err
		}

		// 2. Получаем комнату
		chambre, err := s.chambreRepo.GetByID(txCtx, chambreID)
		if err != nil {
			if errors.Is(err, chambreRepo.ErrChambreNotFound) {
				s.logger.Warn("%s: chambre id=%d not found", op, chambreID)
				return ErrChambreNotFound
			}
			s.logger.Error("%s: failed to get chambre id=%d: %v", op, chambreID, err)
			return fmt.Errorf("%w: %s - get chambre: %w", ErrInternal, op, err)
		}

		// 3. Меняем связь и сохраняем комнату, если что-то изменилось
		changed, err := mutate(chambre, reservation)
		if err != nil {
			s.logger.Error("%s: failed to change link: %v", op, err)
			return fmt.Errorf("%w: %s - change link: %w", ErrInternal, op, err)
		}

		if changed {
			if err := s.chambreRepo.Save(txCtx, chambre); err != nil {
				if errors.Is(err, chambreRepo.ErrReservationAlreadyLinked) {
					s.logger.Warn("%s: reservation id=%s is linked to another chambre", op, reservationID)
					return ErrReservationLinkedElsewhere
				}
				s.logger.Error("%s: failed to save chambre id=%d: %v", op, chambreID, err)
				return fmt.Errorf("%w: %s - save chambre: %w", ErrInternal, op, err)
			}
		}

		response = models.FromDomainChambre(reservation.ID, chambre, changed)
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: done, changed=%t", op, response.Changed)
	return response, nil
}

type studentMutation func(etudiant *domain.Etudiant, reservation *domain.Reservation) bool

func (s *Service) changeStudentLink(ctx context.Context, op, reservationID, nom, prenom string, mutate studentMutation) (*models.EtudiantLinkResponse, error) {
	if strings.TrimSpace(reservationID) == "" {
		s.logger.Warn("%s: empty reservation id", op)
		return nil, fmt.Errorf("%w: reservationId is required", ErrInvalidInput)
	}

	response := &models.EtudiantLinkResponse{
		ReservationID: reservationID,
		Reservations:  make([]models.ReservationResponse, 0),
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		reservation, err := s.getReservation(txCtx, op, reservationID)
		if err != nil {
			return err
		}

		// 2. Ищем студента; отсутствие студента не ошибка
		etudiant, err := s.etudiantRepo.GetByName(txCtx, nom, prenom)
		if err != nil {
			if errors.Is(err, etudiantRepo.ErrEtudiantNotFound) {
				s.logger.Warn("%s: etudiant %s %s not found, nothing to change", op, nom, prenom)
				return nil
			}
			s.logger.Error("%s: failed to get etudiant %s %s: %v", op, nom, prenom, err)
			return fmt.Errorf("%w: %s - get etudiant: %w", ErrInternal, op, err)
		}

		etudiantID := etudiant.ID
		response.Found = true
		response.EtudiantID = &etudiantID

		// 3. Меняем связь и сохраняем студента, если что-то изменилось
		response.Changed = mutate(etudiant, reservation)
		if response.Changed {
			if err := s.etudiantRepo.Save(txCtx, etudiant); err != nil {
				s.logger.Error("%s: failed to save etudiant id=%d: %v", op, etudiant.ID, err)
				return fmt.Errorf("%w: %s - save etudiant: %w", ErrInternal, op, err)
			}
		}

		response.Reservations = models.FromDomainReservations(etudiant.ReservationList())
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: done, found=%t, changed=%t", op, response.Found, response.Changed)
	return response, nil
}

func (s *Service) getReservation(ctx context.Context, op, reservationID string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found", op, reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: failed to get reservation id=%s: %v", op, reservationID, err)
		return nil, fmt.Errorf("%w: %s - get reservation: %w", ErrInternal, op, err)
	}
	return reservation, nil
}
