package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetAll(ctx context.Context) ([]*domain.Reservation, error)
	CountInWindow(ctx context.Context, start, end time.Time) (int64, error)
	Save(ctx context.Context, reservation *domain.Reservation) error
	Delete(ctx context.Context, id string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
