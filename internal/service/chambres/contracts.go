package chambres

import (
	"context"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// ChambreRepository интерфейс репозитория комнат
type ChambreRepository interface {
	Create(ctx context.Context, chambre *domain.Chambre) (*domain.Chambre, error)
	GetByID(ctx context.Context, id int64) (*domain.Chambre, error)
	GetAll(ctx context.Context) ([]*domain.Chambre, error)
	GetByBlocName(ctx context.Context, blocName string) ([]*domain.Chambre, error)
	Save(ctx context.Context, chambre *domain.Chambre) error
	Delete(ctx context.Context, id int64) error
	CountByTypeAndBloc(ctx context.Context, roomType domain.RoomType, blocID int64) (int64, error)
	CountByType(ctx context.Context, roomType domain.RoomType) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
