package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// UseCase use case для получения комнат фойе, в которых остались свободные места
type UseCase struct {
	chambreRepo  ChambreRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(chambreRepo ChambreRepository, logger Logger) *UseCase {
	return &UseCase{
		chambreRepo:  chambreRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider заменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: foyer=%s, type=%s", req.FoyerName, req.TypeChambre)

	// 1. Валидация входных данных
	roomType, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем учебный год
	year := domain.AcademicYearWindow(uc.timeProvider.Now())

	// 3. Получаем комнаты фойе нужного типа вместе с их бронированиями
	chambres, err := uc.chambreRepo.GetByFoyerNameAndType(ctx, req.FoyerName, roomType)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get chambres: %v", err)
		return nil, fmt.Errorf("%w: failed to get chambres: %v", ErrInternal, err)
	}

	// 4. Вычисляем свободные места
	rooms := calculateAvailableRooms(chambres, year)

	uc.logger.Info("GetAvailableRooms: %d of %d chambres have free places in foyer=%s",
		len(rooms), len(chambres), req.FoyerName)

	return &Response{
		FoyerName:   req.FoyerName,
		TypeChambre: string(roomType),
		YearStart:   year.Start,
		YearEnd:     year.End,
		Rooms:       rooms,
	}, nil
}
