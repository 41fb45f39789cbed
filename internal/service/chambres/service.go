package chambres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DormService/internal/domain"
	chambreRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/chambre"
	"github.com/m04kA/SMC-DormService/internal/service/chambres/models"
)

// Service сервис для работы с комнатами и статистикой по ним
type Service struct {
	chambreRepo ChambreRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(chambreRepo ChambreRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		chambreRepo: chambreRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает комнату без бронирований
func (s *Service) Create(ctx context.Context, req *models.CreateChambreRequest) (*models.ChambreResponse, error) {
	s.logger.Info("Create: creating chambre numero=%d, type=%s", req.Numero, req.TypeChambre)

	roomType, ok := domain.ParseRoomType(req.TypeChambre)
	if !ok {
		s.logger.Warn("Create: invalid room type=%q", req.TypeChambre)
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoomType, req.TypeChambre)
	}
	if req.Numero <= 0 {
		s.logger.Warn("Create: invalid numero=%d", req.Numero)
		return nil, fmt.Errorf("%w: numeroChambre must be positive", ErrInvalidInput)
	}

	chambre, err := s.chambreRepo.Create(ctx, &domain.Chambre{
		Numero: req.Numero,
		Type:   roomType,
		BlocID: req.BlocID,
	})
	if err != nil {
		return nil, s.mapWriteError("Create", err)
	}

	s.logger.Info("Create: successfully created chambre id=%d", chambre.ID)
	return models.FromDomainChambre(chambre), nil
}

// GetByID получает комнату с её бронированиями
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ChambreResponse, error) {
	s.logger.Info("GetByID: fetching chambre id=%d", id)

	chambre, err := s.chambreRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, chambreRepo.ErrChambreNotFound) {
			s.logger.Warn("GetByID: chambre id=%d not found", id)
			return nil, ErrChambreNotFound
		}
		s.logger.Error("GetByID: repository error for chambre id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainChambre(chambre), nil
}

// GetAll возвращает все комнаты
func (s *Service) GetAll(ctx context.Context) (*models.ChambreListResponse, error) {
	list, err := s.chambreRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d chambres", len(list))
	return models.FromDomainChambreList(list), nil
}

// GetByBlocName возвращает комнаты блока с указанным названием
// Для неизвестного блока возвращается пустой список
func (s *Service) GetByBlocName(ctx context.Context, blocName string) (*models.ChambreListResponse, error) {
	if strings.TrimSpace(blocName) == "" {
		return nil, fmt.Errorf("%w: nomBloc is required", ErrInvalidInput)
	}

	list, err := s.chambreRepo.GetByBlocName(ctx, blocName)
	if err != nil {
		s.logger.Error("GetByBlocName: repository error for bloc=%s: %v", blocName, err)
		return nil, fmt.Errorf("%w: GetByBlocName - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetByBlocName: fetched %d chambres for bloc=%s", len(list), blocName)
	return models.FromDomainChambreList(list), nil
}

// Update меняет номер, тип или блок комнаты; бронирования сохраняются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateChambreRequest) (*models.ChambreResponse, error) {
	s.logger.Info("Update: updating chambre id=%d", id)

	var roomType *domain.RoomType
	if req.TypeChambre != nil {
		parsed, ok := domain.ParseRoomType(*req.TypeChambre)
		if !ok {
			s.logger.Warn("Update: invalid room type=%q", *req.TypeChambre)
			return nil, fmt.Errorf("%w: %q", ErrInvalidRoomType, *req.TypeChambre)
		}
		roomType = &parsed
	}
	if req.Numero != nil && *req.Numero <= 0 {
		return nil, fmt.Errorf("%w: numeroChambre must be positive", ErrInvalidInput)
	}

	var updated *domain.Chambre

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		chambre, err := s.chambreRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, chambreRepo.ErrChambreNotFound) {
				return ErrChambreNotFound
			}
			return fmt.Errorf("%w: Update - get chambre: %w", ErrInternal, err)
		}

		if req.Numero != nil {
			chambre.Numero = *req.Numero
		}
		if roomType != nil {
			chambre.Type = *roomType
		}
		if req.BlocID != nil {
			chambre.BlocID = req.BlocID
		}

		if err := s.chambreRepo.Save(txCtx, chambre); err != nil {
			return s.mapWriteError("Update", err)
		}

		updated = chambre
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrChambreNotFound) {
			s.logger.Warn("Update: chambre id=%d not found", id)
		}
		return nil, err
	}

	s.logger.Info("Update: successfully updated chambre id=%d", id)
	return models.FromDomainChambre(updated), nil
}

// Delete удаляет комнату; бронирования остаются, удаляются только связи
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting chambre id=%d", id)

	if err := s.chambreRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, chambreRepo.ErrChambreNotFound) {
			s.logger.Warn("Delete: chambre id=%d not found", id)
			return ErrChambreNotFound
		}
		s.logger.Error("Delete: repository error for chambre id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted chambre id=%d", id)
	return nil
}

// CountByTypeAndBloc считает комнаты указанного типа в блоке
func (s *Service) CountByTypeAndBloc(ctx context.Context, typeChambre string, blocID int64) (*models.CountResponse, error) {
	roomType, ok := domain.ParseRoomType(typeChambre)
	if !ok {
		s.logger.Warn("CountByTypeAndBloc: invalid room type=%q", typeChambre)
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoomType, typeChambre)
	}

	count, err := s.chambreRepo.CountByTypeAndBloc(ctx, roomType, blocID)
	if err != nil {
		s.logger.Error("CountByTypeAndBloc: repository error: %v", err)
		return nil, fmt.Errorf("%w: CountByTypeAndBloc - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CountByTypeAndBloc: %d chambres of type=%s in bloc=%d", count, roomType, blocID)
	return &models.CountResponse{BlocID: blocID, TypeChambre: string(roomType), Count: count}, nil
}

// TypePercentages считает долю комнат каждого типа от общего числа комнат
func (s *Service) TypePercentages(ctx context.Context) (*models.TypePercentagesResponse, error) {
	resp := &models.TypePercentagesResponse{
		Shares: make([]models.TypeShare, 0, len(domain.RoomTypes)),
	}

	// Все подсчёты в одной транзакции, чтобы доли сходились с общим числом
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		total, err := s.chambreRepo.Count(txCtx)
		if err != nil {
			return fmt.Errorf("%w: TypePercentages - count chambres: %w", ErrInternal, err)
		}
		resp.Total = total

		for _, roomType := range domain.RoomTypes {
			count, err := s.chambreRepo.CountByType(txCtx, roomType)
			if err != nil {
				return fmt.Errorf("%w: TypePercentages - count %s: %w", ErrInternal, roomType, err)
			}

			share := models.TypeShare{TypeChambre: string(roomType), Count: count}
			if total > 0 {
				share.Percentage = float64(count) / float64(total) * 100
			}
			resp.Shares = append(resp.Shares, share)
		}
		return nil
	})

	if err != nil {
		s.logger.Error("TypePercentages: %v", err)
		return nil, err
	}

	for _, share := range resp.Shares {
		s.logger.Info("TypePercentages: %s = %.2f%% (%d of %d)", share.TypeChambre, share.Percentage, share.Count, resp.Total)
	}
	return resp, nil
}

func (s *Service) mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, chambreRepo.ErrChambreNotFound):
		return ErrChambreNotFound
	case errors.Is(err, chambreRepo.ErrNumeroTaken):
		s.logger.Warn("%s: numero already taken", op)
		return ErrNumeroTaken
	case errors.Is(err, chambreRepo.ErrUnknownReference):
		s.logger.Warn("%s: unknown bloc", op)
		return ErrUnknownBloc
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}
