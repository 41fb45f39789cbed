package housing

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DormService/internal/domain"
	"github.com/m04kA/SMC-DormService/internal/service/housing/models"
)

// CreateUniversite создает университет; если передано фойе, создает его вместе с блоками и привязывает
func (s *Service) CreateUniversite(ctx context.Context, req *models.CreateUniversiteRequest) (*models.UniversiteResponse, error) {
	const op = "CreateUniversite"
	s.logger.Info("%s: nom=%s, withFoyer=%t", op, req.Nom, req.Foyer != nil)

	if strings.TrimSpace(req.Nom) == "" {
		err := fmt.Errorf("%w: nomUniversite is required", ErrInvalidInput)
		s.logResult(op, err)
		return nil, err
	}
	if req.Foyer != nil {
		if err := validateFoyer(req.Foyer); err != nil {
			s.logResult(op, err)
			return nil, err
		}
	}

	var universite *domain.Universite

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.universiteRepo.Create(txCtx, &domain.Universite{
			Nom:     strings.TrimSpace(req.Nom),
			Adresse: req.Adresse,
		})
		if err != nil {
			return err
		}

		if req.Foyer != nil {
			universiteID := created.ID
			foyer, err := s.createFoyerTree(txCtx, req.Foyer, &universiteID)
			if err != nil {
				return err
			}
			created.Foyer = foyer
		}

		universite = created
		return nil
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}

	s.logger.Info("%s: created universite id=%d", op, universite.ID)
	return models.FromDomainUniversite(universite), nil
}

// GetUniversite получает университет вместе с его фойе
func (s *Service) GetUniversite(ctx context.Context, id int64) (*models.UniversiteResponse, error) {
	universite, err := s.universiteRepo.GetByID(ctx, id)
	if err = mapError("GetUniversite", err); err != nil {
		s.logResult("GetUniversite", err)
		return nil, err
	}
	return models.FromDomainUniversite(universite), nil
}

// ListUniversites возвращает все университеты
func (s *Service) ListUniversites(ctx context.Context) ([]models.UniversiteResponse, error) {
	list, err := s.universiteRepo.GetAll(ctx)
	if err = mapError("ListUniversites", err); err != nil {
		s.logResult("ListUniversites", err)
		return nil, err
	}
	s.logger.Info("ListUniversites: fetched %d universites", len(list))
	return models.FromDomainUniversiteList(list), nil
}

// UpdateUniversite обновляет название и адрес университета
func (s *Service) UpdateUniversite(ctx context.Context, id int64, req *models.UpdateUniversiteRequest) (*models.UniversiteResponse, error) {
	const op = "UpdateUniversite"
	s.logger.Info("%s: id=%d", op, id)

	var universite *domain.Universite

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.universiteRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if req.Nom != nil {
			if strings.TrimSpace(*req.Nom) == "" {
				return fmt.Errorf("%w: nomUniversite must not be empty", ErrInvalidInput)
			}
			current.Nom = strings.TrimSpace(*req.Nom)
		}
		if req.Adresse != nil {
			current.Adresse = *req.Adresse
		}

		if err := s.universiteRepo.Update(txCtx, current); err != nil {
			return err
		}
		universite = current
		return nil
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}
	return models.FromDomainUniversite(universite), nil
}

// DeleteUniversite удаляет университет; его фойе остаётся без университета
func (s *Service) DeleteUniversite(ctx context.Context, id int64) error {
	s.logger.Info("DeleteUniversite: id=%d", id)

	err := mapError("DeleteUniversite", s.universiteRepo.Delete(ctx, id))
	s.logResult("DeleteUniversite", err)
	return err
}

// AssignFoyerToUniversite привязывает фойе к университету, найденному по названию
func (s *Service) AssignFoyerToUniversite(ctx context.Context, foyerID int64, universiteNom string) (*models.UniversiteResponse, error) {
	s.logger.Info("AssignFoyerToUniversite: foyer=%d, universite=%s", foyerID, universiteNom)

	return s.assignFoyer(ctx, "AssignFoyerToUniversite", foyerID, func(txCtx context.Context) (*domain.Universite, error) {
		return s.universiteRepo.GetByName(txCtx, universiteNom)
	})
}

// AssignFoyerToUniversiteByID привязывает фойе к университету по идентификатору
func (s *Service) AssignFoyerToUniversiteByID(ctx context.Context, foyerID, universiteID int64) (*models.UniversiteResponse, error) {
	s.logger.Info("AssignFoyerToUniversiteByID: foyer=%d, universite=%d", foyerID, universiteID)

	return s.assignFoyer(ctx, "AssignFoyerToUniversiteByID", foyerID, func(txCtx context.Context) (*domain.Universite, error) {
		return s.universiteRepo.GetByID(txCtx, universiteID)
	})
}

type universiteResolver func(ctx context.Context) (*domain.Universite, error)

func (s *Service) assignFoyer(ctx context.Context, op string, foyerID int64, resolve universiteResolver) (*models.UniversiteResponse, error) {
	var universite *domain.Universite

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Находим университет и фойе
		target, err := resolve(txCtx)
		if err != nil {
			return err
		}

		foyer, err := s.foyerRepo.GetByID(txCtx, foyerID)
		if err != nil {
			return err
		}

		// 2. У университета может быть только одно фойе
		if target.HasFoyer() && target.Foyer.ID != foyer.ID {
			return ErrUniversiteHasFoyer
		}

		// 3. Привязываем (повторная привязка того же фойе ничего не меняет)
		if !target.HasFoyer() {
			if err := s.foyerRepo.AssignToUniversite(txCtx, foyer.ID, target.ID); err != nil {
				return err
			}
		}

		universiteID := target.ID
		foyer.UniversiteID = &universiteID
		target.Foyer = foyer
		universite = target
		return nil
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}

	s.logger.Info("%s: foyer=%d assigned to universite=%d", op, foyerID, universite.ID)
	return models.FromDomainUniversite(universite), nil
}

// UnassignFoyer отвязывает фойе от университета; университет без фойе возвращается без изменений
func (s *Service) UnassignFoyer(ctx context.Context, universiteID int64) (*models.UniversiteResponse, error) {
	const op = "UnassignFoyer"
	s.logger.Info("%s: universite=%d", op, universiteID)

	var universite *domain.Universite

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.universiteRepo.GetByID(txCtx, universiteID)
		if err != nil {
			return err
		}

		if current.HasFoyer() {
			if err := s.foyerRepo.UnassignFromUniversite(txCtx, current.Foyer.ID); err != nil {
				return err
			}
			current.Foyer = nil
		}

		universite = current
		return nil
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}
	return models.FromDomainUniversite(universite), nil
}
