package housing

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DormService/internal/domain"
	"github.com/m04kA/SMC-DormService/internal/service/housing/models"
)

// CreateFoyer создает фойе без университета вместе с переданными блоками и их комнатами
func (s *Service) CreateFoyer(ctx context.Context, req *models.CreateFoyerRequest) (*models.FoyerResponse, error) {
	const op = "CreateFoyer"
	s.logger.Info("%s: nom=%s, blocs=%d", op, req.Nom, len(req.Blocs))

	if err := validateFoyer(req); err != nil {
		s.logResult(op, err)
		return nil, err
	}

	var foyer *domain.Foyer

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.createFoyerTree(txCtx, req, nil)
		if err != nil {
			return err
		}
		foyer = created
		return nil
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}

	s.logger.Info("%s: created foyer id=%d", op, foyer.ID)
	return models.FromDomainFoyer(foyer), nil
}

// CreateFoyerForUniversite создает фойе с блоками и сразу привязывает его к университету
func (s *Service) CreateFoyerForUniversite(ctx context.Context, universiteID int64, req *models.CreateFoyerRequest) (*models.FoyerResponse, error) {
	const op = "CreateFoyerForUniversite"
	s.logger.Info("%s: universite=%d, nom=%s", op, universiteID, req.Nom)

	if err := validateFoyer(req); err != nil {
		s.logResult(op, err)
		return nil, err
	}

	var foyer *domain.Foyer

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		universite, err := s.universiteRepo.GetByID(txCtx, universiteID)
		if err != nil {
			return err
		}
		if universite.HasFoyer() {
			return ErrUniversiteHasFoyer
		}

		created, err := s.createFoyerTree(txCtx, req, &universite.ID)
		if err != nil {
			return err
		}
		foyer = created
		return nil
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}

	s.logger.Info("%s: created foyer id=%d for universite=%d", op, foyer.ID, universiteID)
	return models.FromDomainFoyer(foyer), nil
}

// GetFoyer получает фойе вместе с его блоками
func (s *Service) GetFoyer(ctx context.Context, id int64) (*models.FoyerResponse, error) {
	foyer, err := s.foyerRepo.GetByID(ctx, id)
	if err = mapError("GetFoyer", err); err != nil {
		s.logResult("GetFoyer", err)
		return nil, err
	}
	return models.FromDomainFoyer(foyer), nil
}

// ListFoyers возвращает все фойе
func (s *Service) ListFoyers(ctx context.Context) ([]models.FoyerResponse, error) {
	list, err := s.foyerRepo.GetAll(ctx)
	if err = mapError("ListFoyers", err); err != nil {
		s.logResult("ListFoyers", err)
		return nil, err
	}
	s.logger.Info("ListFoyers: fetched %d foyers", len(list))
	return models.FromDomainFoyerList(list), nil
}

// UpdateFoyer обновляет название и вместимость фойе
func (s *Service) UpdateFoyer(ctx context.Context, id int64, req *models.UpdateFoyerRequest) (*models.FoyerResponse, error) {
	const op = "UpdateFoyer"
	s.logger.Info("%s: id=%d", op, id)

	var foyer *domain.Foyer

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.foyerRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if req.Nom != nil {
			if strings.TrimSpace(*req.Nom) == "" {
				return fmt.Errorf("%w: nomFoyer must not be empty", ErrInvalidInput)
			}
			current.Nom = strings.TrimSpace(*req.Nom)
		}
		if req.Capacite != nil {
			if *req.Capacite < 0 {
				return fmt.Errorf("%w: capaciteFoyer must not be negative", ErrInvalidInput)
			}
			current.Capacite = *req.Capacite
		}

		if err := s.foyerRepo.Update(txCtx, current); err != nil {
			return err
		}
		foyer = current
		return nil
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}
	return models.FromDomainFoyer(foyer), nil
}

// DeleteFoyer удаляет фойе; его блоки остаются без фойе
func (s *Service) DeleteFoyer(ctx context.Context, id int64) error {
	s.logger.Info("DeleteFoyer: id=%d", id)

	err := mapError("DeleteFoyer", s.foyerRepo.Delete(ctx, id))
	s.logResult("DeleteFoyer", err)
	return err
}
