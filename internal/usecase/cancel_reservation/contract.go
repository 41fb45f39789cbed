package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetValidByStudentCin(ctx context.Context, cin int64) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
}

// ChambreRepository интерфейс репозитория комнат
type ChambreRepository interface {
	GetByReservationID(ctx context.Context, reservationID string) (*domain.Chambre, error)
	Save(ctx context.Context, chambre *domain.Chambre) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик отмен
type Metrics interface {
	IncCancellation()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
