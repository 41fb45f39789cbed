package housing

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DormService/internal/domain"
	"github.com/m04kA/SMC-DormService/internal/service/housing/models"
)

// CreateBloc создает блок вместе с переданными комнатами
func (s *Service) CreateBloc(ctx context.Context, req *models.CreateBlocRequest) (*models.BlocResponse, error) {
	const op = "CreateBloc"
	s.logger.Info("%s: nom=%s, chambres=%d", op, req.Nom, len(req.Chambres))

	return s.createBloc(ctx, op, req, func(context.Context) (*int64, error) {
		return req.FoyerID, nil
	})
}

// CreateBlocInFoyer создает блок с комнатами и привязывает его к фойе, найденному по названию
func (s *Service) CreateBlocInFoyer(ctx context.Context, foyerNom string, req *models.CreateBlocRequest) (*models.BlocResponse, error) {
	const op = "CreateBlocInFoyer"
	s.logger.Info("%s: foyer=%s, nom=%s", op, foyerNom, req.Nom)

	return s.createBloc(ctx, op, req, func(txCtx context.Context) (*int64, error) {
		foyer, err := s.foyerRepo.GetByName(txCtx, foyerNom)
		if err != nil {
			return nil, err
		}
		return &foyer.ID, nil
	})
}

func (s *Service) createBloc(ctx context.Context, op string, req *models.CreateBlocRequest, resolveFoyer func(context.Context) (*int64, error)) (*models.BlocResponse, error) {
	if err := validateBloc(req); err != nil {
		s.logResult(op, err)
		return nil, err
	}

	var bloc *domain.Bloc

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		foyerID, err := resolveFoyer(txCtx)
		if err != nil {
			return err
		}

		created, err := s.createBlocTree(txCtx, req, foyerID)
		if err != nil {
			return err
		}
		bloc = created
		return nil
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}

	s.logger.Info("%s: created bloc id=%d with %d chambres", op, bloc.ID, len(bloc.Chambres))
	return models.FromDomainBloc(bloc), nil
}

// GetBloc получает блок вместе с его комнатами
func (s *Service) GetBloc(ctx context.Context, id int64) (*models.BlocResponse, error) {
	bloc, err := s.blocRepo.GetByID(ctx, id)
	if err = mapError("GetBloc", err); err != nil {
		s.logResult("GetBloc", err)
		return nil, err
	}
	return models.FromDomainBloc(bloc), nil
}

// ListBlocs возвращает все блоки
func (s *Service) ListBlocs(ctx context.Context) ([]models.BlocResponse, error) {
	list, err := s.blocRepo.GetAll(ctx)
	if err = mapError("ListBlocs", err); err != nil {
		s.logResult("ListBlocs", err)
		return nil, err
	}
	s.logger.Info("ListBlocs: fetched %d blocs", len(list))
	return models.FromDomainBlocList(list), nil
}

// UpdateBloc обновляет название и вместимость блока
func (s *Service) UpdateBloc(ctx context.Context, id int64, req *models.UpdateBlocRequest) (*models.BlocResponse, error) {
	const op = "UpdateBloc"
	s.logger.Info("%s: id=%d", op, id)

	var bloc *domain.Bloc

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.blocRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if req.Nom != nil {
			if strings.TrimSpace(*req.Nom) == "" {
				return fmt.Errorf("%w: nomBloc must not be empty", ErrInvalidInput)
			}
			current.Nom = strings.TrimSpace(*req.Nom)
		}
		if req.Capacite != nil {
			if *req.Capacite < 0 {
				return fmt.Errorf("%w: capaciteBloc must not be negative", ErrInvalidInput)
			}
			current.Capacite = *req.Capacite
		}

		if err := s.blocRepo.Update(txCtx, current); err != nil {
			return err
		}
		bloc = current
		return nil
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}
	return models.FromDomainBloc(bloc), nil
}

// DeleteBloc удаляет блок вместе с его комнатами
func (s *Service) DeleteBloc(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBloc: id=%d", id)

	err := mapError("DeleteBloc", s.blocRepo.Delete(ctx, id))
	s.logResult("DeleteBloc", err)
	return err
}

// AssignBlocToFoyer привязывает блок к фойе; оба находятся по названию
func (s *Service) AssignBlocToFoyer(ctx context.Context, blocNom, foyerNom string) (*models.BlocResponse, error) {
	const op = "AssignBlocToFoyer"
	s.logger.Info("%s: bloc=%s, foyer=%s", op, blocNom, foyerNom)

	var bloc *domain.Bloc

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.blocRepo.GetByName(txCtx, blocNom)
		if err != nil {
			return err
		}

		foyer, err := s.foyerRepo.GetByName(txCtx, foyerNom)
		if err != nil {
			return err
		}

		if err := s.blocRepo.AssignToFoyer(txCtx, current.ID, foyer.ID); err != nil {
			return err
		}

		current.FoyerID = &foyer.ID
		bloc = current
		return nil
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}

	s.logger.Info("%s: bloc id=%d assigned to foyer id=%d", op, bloc.ID, *bloc.FoyerID)
	return models.FromDomainBloc(bloc), nil
}

// AssignChambresToBloc переносит комнаты с указанными номерами в блок.
// Если хотя бы одна комната не найдена, ни одна не переносится.
func (s *Service) AssignChambresToBloc(ctx context.Context, blocNom string, numeros []int64) (*models.BlocResponse, error) {
	const op = "AssignChambresToBloc"
	s.logger.Info("%s: bloc=%s, numeros=%v", op, blocNom, numeros)

	if len(numeros) == 0 {
		err := fmt.Errorf("%w: at least one numeroChambre is required", ErrInvalidInput)
		s.logResult(op, err)
		return nil, err
	}

	var bloc *domain.Bloc

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		target, err := s.blocRepo.GetByName(txCtx, blocNom)
		if err != nil {
			return err
		}

		for _, numero := range numeros {
			chambre, err := s.chambreRepo.GetByNumero(txCtx, numero)
			if err != nil {
				return err
			}

			// Бронирования комнаты сохраняются: Save синхронизирует их без изменений
			blocID := target.ID
			chambre.BlocID = &blocID
			if err := s.chambreRepo.Save(txCtx, chambre); err != nil {
				return err
			}
		}

		// Перечитываем блок, чтобы вернуть актуальный список комнат
		bloc, err = s.blocRepo.GetByID(txCtx, target.ID)
		return err
	})

	if err = mapError(op, err); err != nil {
		s.logResult(op, err)
		return nil, err
	}

	s.logger.Info("%s: bloc id=%d now has %d chambres", op, bloc.ID, len(bloc.Chambres))
	return models.FromDomainBloc(bloc), nil
}
