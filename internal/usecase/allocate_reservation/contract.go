package allocate_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// ChambreRepository интерфейс репозитория комнат
type ChambreRepository interface {
	GetByNumero(ctx context.Context, numero int64) (*domain.Chambre, error)
	CountValidReservationsInWindow(ctx context.Context, chambreID int64, start, end time.Time) (int, error)
	Save(ctx context.Context, chambre *domain.Chambre) error
}

// EtudiantRepository интерфейс репозитория студентов
type EtudiantRepository interface {
	GetByCin(ctx context.Context, cin int64) (*domain.Etudiant, error)
	Save(ctx context.Context, etudiant *domain.Etudiant) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик исходов бронирования
type Metrics interface {
	IncAllocation(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
// Location задает часовой пояс учебного года (nil = локальное время процесса)
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
