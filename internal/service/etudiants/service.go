package etudiants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DormService/internal/domain"
	etudiantRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/etudiant"
	"github.com/m04kA/SMC-DormService/internal/service/etudiants/models"
)

// Service сервис для работы со студентами
type Service struct {
	etudiantRepo EtudiantRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса студентов
func NewService(etudiantRepo EtudiantRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		etudiantRepo: etudiantRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает студента без бронирований
func (s *Service) Create(ctx context.Context, req *models.CreateEtudiantRequest) (*models.EtudiantResponse, error) {
	s.logger.Info("Create: creating etudiant cin=%d", req.Cin)

	etudiant := &domain.Etudiant{
		Nom:    strings.TrimSpace(req.Nom),
		Prenom: strings.TrimSpace(req.Prenom),
		Cin:    req.Cin,
		Ecole:  req.Ecole,
	}
	if req.DateNaissance != nil {
		etudiant.DateNaissance = *req.DateNaissance
	}

	if err := validate(etudiant); err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, err
	}

	created, err := s.etudiantRepo.Create(ctx, etudiant)
	if err != nil {
		return nil, s.mapWriteError("Create", err)
	}

	s.logger.Info("Create: successfully created etudiant id=%d", created.ID)
	return models.FromDomainEtudiant(created), nil
}

// GetByID получает студента с его бронированиями
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EtudiantResponse, error) {
	s.logger.Info("GetByID: fetching etudiant id=%d", id)

	etudiant, err := s.etudiantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, etudiantRepo.ErrEtudiantNotFound) {
			s.logger.Warn("GetByID: etudiant id=%d not found", id)
			return nil, ErrEtudiantNotFound
		}
		s.logger.Error("GetByID: repository error for etudiant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainEtudiant(etudiant), nil
}

// GetAll возвращает всех студентов; при непустом nom только студентов с этой фамилией
func (s *Service) GetAll(ctx context.Context, nom string) (*models.EtudiantListResponse, error) {
	var (
		list []*domain.Etudiant
		err  error
	)

	nom = strings.TrimSpace(nom)
	if nom == "" {
		list, err = s.etudiantRepo.GetAll(ctx)
	} else {
		list, err = s.etudiantRepo.GetAllByNom(ctx, nom)
	}
	if err != nil {
		s.logger.Error("GetAll: repository error (nom=%q): %v", nom, err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d etudiants (nom=%q)", len(list), nom)
	return models.FromDomainEtudiantList(list), nil
}

// Update обновляет данные студента; бронирования сохраняются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateEtudiantRequest) (*models.EtudiantResponse, error) {
	s.logger.Info("Update: updating etudiant id=%d", id)

	var updated *domain.Etudiant

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		etudiant, err := s.etudiantRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, etudiantRepo.ErrEtudiantNotFound) {
				return ErrEtudiantNotFound
			}
			return fmt.Errorf("%w: Update - get etudiant: %w", ErrInternal, err)
		}

		if req.Nom != nil {
			etudiant.Nom = strings.TrimSpace(*req.Nom)
		}
		if req.Prenom != nil {
			etudiant.Prenom = strings.TrimSpace(*req.Prenom)
		}
		if req.Cin != nil {
			etudiant.Cin = *req.Cin
		}
		if req.Ecole != nil {
			etudiant.Ecole = *req.Ecole
		}
		if req.DateNaissance != nil {
			etudiant.DateNaissance = *req.DateNaissance
		}

		if err := validate(etudiant); err != nil {
			return err
		}

		if err := s.etudiantRepo.Save(txCtx, etudiant); err != nil {
			return s.mapWriteError("Update", err)
		}

		updated = etudiant
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrEtudiantNotFound) || errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("Update: etudiant id=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("Update: successfully updated etudiant id=%d", id)
	return models.FromDomainEtudiant(updated), nil
}

// Delete удаляет студента; его бронирования не удаляются
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting etudiant id=%d", id)

	if err := s.etudiantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, etudiantRepo.ErrEtudiantNotFound) {
			s.logger.Warn("Delete: etudiant id=%d not found", id)
			return ErrEtudiantNotFound
		}
		s.logger.Error("Delete: repository error for etudiant id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted etudiant id=%d", id)
	return nil
}

func validate(etudiant *domain.Etudiant) error {
	if etudiant.Nom == "" || etudiant.Prenom == "" {
		return fmt.Errorf("%w: nomEt and prenomEt are required", ErrInvalidInput)
	}
	if etudiant.Cin <= 0 {
		return fmt.Errorf("%w: cin must be positive", ErrInvalidInput)
	}
	return nil
}

func (s *Service) mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, etudiantRepo.ErrEtudiantNotFound):
		return ErrEtudiantNotFound
	case errors.Is(err, etudiantRepo.ErrCinTaken):
		s.logger.Warn("%s: cin already taken", op)
		return ErrCinTaken
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}
