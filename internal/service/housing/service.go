package housing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DormService/internal/domain"
	blocRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/bloc"
	chambreRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/chambre"
	foyerRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/foyer"
	universiteRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/universite"
	"github.com/m04kA/SMC-DormService/internal/service/housing/models"
)

// Service сервис структуры жилого фонда: университеты, фойе, блоки и размещение комнат по блокам
type Service struct {
	universiteRepo UniversiteRepository
	foyerRepo      FoyerRepository
	blocRepo       BlocRepository
	chambreRepo    ChambreRepository
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса жилого фонда
func NewService(
	universiteRepo UniversiteRepository,
	foyerRepo FoyerRepository,
	blocRepo BlocRepository,
	chambreRepo ChambreRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		universiteRepo: universiteRepo,
		foyerRepo:      foyerRepo,
		blocRepo:       blocRepo,
		chambreRepo:    chambreRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// createFoyerTree создает фойе и (если переданы) его блоки с комнатами
func (s *Service) createFoyerTree(ctx context.Context, req *models.CreateFoyerRequest, universiteID *int64) (*domain.Foyer, error) {
	foyer, err := s.foyerRepo.Create(ctx, &domain.Foyer{
		Nom:          strings.TrimSpace(req.Nom),
		Capacite:     req.Capacite,
		UniversiteID: universiteID,
	})
	if err != nil {
		return nil, err
	}

	for i := range req.Blocs {
		foyerID := foyer.ID
		bloc, err := s.createBlocTree(ctx, &req.Blocs[i], &foyerID)
		if err != nil {
			return nil, err
		}
		foyer.Blocs = append(foyer.BlocList(), bloc)
	}

	return foyer, nil
}

// createBlocTree создает блок и (если переданы) его комнаты
func (s *Service) createBlocTree(ctx context.Context, req *models.CreateBlocRequest, foyerID *int64) (*domain.Bloc, error) {
	bloc, err := s.blocRepo.Create(ctx, &domain.Bloc{
		Nom:      strings.TrimSpace(req.Nom),
		Capacite: req.Capacite,
		FoyerID:  foyerID,
	})
	if err != nil {
		return nil, err
	}

	for _, c := range req.Chambres {
		roomType, _ := domain.ParseRoomType(c.TypeChambre)
		blocID := bloc.ID
		chambre, err := s.chambreRepo.Create(ctx, &domain.Chambre{
			Numero: c.Numero,
			Type:   roomType,
			BlocID: &blocID,
		})
		if err != nil {
			return nil, err
		}
		bloc.Chambres = append(bloc.ChambreList(), chambre)
	}

	return bloc, nil
}

func validateFoyer(req *models.CreateFoyerRequest) error {
	if strings.TrimSpace(req.Nom) == "" {
		return fmt.Errorf("%w: nomFoyer is required", ErrInvalidInput)
	}
	if req.Capacite < 0 {
		return fmt.Errorf("%w: capaciteFoyer must not be negative", ErrInvalidInput)
	}
	for i := range req.Blocs {
		if err := validateBloc(&req.Blocs[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateBloc(req *models.CreateBlocRequest) error {
	if strings.TrimSpace(req.Nom) == "" {
		return fmt.Errorf("%w: nomBloc is required", ErrInvalidInput)
	}
	if req.Capacite < 0 {
		return fmt.Errorf("%w: capaciteBloc must not be negative", ErrInvalidInput)
	}
	for _, c := range req.Chambres {
		if c.Numero <= 0 {
			return fmt.Errorf("%w: numeroChambre must be positive", ErrInvalidInput)
		}
		if _, ok := domain.ParseRoomType(c.TypeChambre); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidRoomType, c.TypeChambre)
		}
	}
	return nil
}

// mapError переводит ошибки репозиториев в ошибки сервиса
func mapError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidRoomType),
		errors.Is(err, ErrUniversiteNotFound), errors.Is(err, ErrFoyerNotFound),
		errors.Is(err, ErrBlocNotFound), errors.Is(err, ErrChambreNotFound),
		errors.Is(err, ErrUniversiteHasFoyer), errors.Is(err, ErrNumeroTaken),
		errors.Is(err, ErrInternal):
		return err
	case errors.Is(err, universiteRepo.ErrUniversiteNotFound), errors.Is(err, foyerRepo.ErrUnknownUniversite):
		return ErrUniversiteNotFound
	case errors.Is(err, foyerRepo.ErrFoyerNotFound), errors.Is(err, blocRepo.ErrUnknownFoyer):
		return ErrFoyerNotFound
	case errors.Is(err, foyerRepo.ErrUniversiteHasFoyer):
		return ErrUniversiteHasFoyer
	case errors.Is(err, blocRepo.ErrBlocNotFound), errors.Is(err, chambreRepo.ErrUnknownReference):
		return ErrBlocNotFound
	case errors.Is(err, chambreRepo.ErrChambreNotFound):
		return ErrChambreNotFound
	case errors.Is(err, chambreRepo.ErrNumeroTaken):
		return ErrNumeroTaken
	default:
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}

// logResult пишет итог операции: внутренние ошибки как Error, отказы как Warn
func (s *Service) logResult(op string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, ErrInternal):
		s.logger.Error("%s: %v", op, err)
	default:
		s.logger.Warn("%s: %v", op, err)
	}
}
