package assignments

import (
	"context"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
}

// ChambreRepository интерфейс репозитория комнат
type ChambreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Chambre, error)
	Save(ctx context.Context, chambre *domain.Chambre) error
}

// EtudiantRepository интерфейс репозитория студентов
type EtudiantRepository interface {
	GetByName(ctx context.Context, nom, prenom string) (*domain.Etudiant, error)
	Save(ctx context.Context, etudiant *domain.Etudiant) error
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
