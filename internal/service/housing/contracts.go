package housing

import (
	"context"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// UniversiteRepository интерфейс репозитория университетов
type UniversiteRepository interface {
	Create(ctx context.Context, universite *domain.Universite) (*domain.Universite, error)
	GetByID(ctx context.Context, id int64) (*domain.Universite, error)
	GetByName(ctx context.Context, nom string) (*domain.Universite, error)
	GetAll(ctx context.Context) ([]*domain.Universite, error)
	Update(ctx context.Context, universite *domain.Universite) error
	Delete(ctx context.Context, id int64) error
}

// FoyerRepository интерфейс репозитория фойе
type FoyerRepository interface {
	Create(ctx context.Context, foyer *domain.Foyer) (*domain.Foyer, error)
	GetByID(ctx context.Context, id int64) (*domain.Foyer, error)
	GetByName(ctx context.Context, nom string) (*domain.Foyer, error)
	GetAll(ctx context.Context) ([]*domain.Foyer, error)
	Update(ctx context.Context, foyer *domain.Foyer) error
	AssignToUniversite(ctx context.Context, foyerID, universiteID int64) error
	UnassignFromUniversite(ctx context.Context, foyerID int64) error
	Delete(ctx context.Context, id int64) error
}

// BlocRepository интерфейс репозитория блоков
type BlocRepository interface {
	Create(ctx context.Context, bloc *domain.Bloc) (*domain.Bloc, error)
	GetByID(ctx context.Context, id int64) (*domain.Bloc, error)
	GetByName(ctx context.Context, nom string) (*domain.Bloc, error)
	GetAll(ctx context.Context) ([]*domain.Bloc, error)
	Update(ctx context.Context, bloc *domain.Bloc) error
	AssignToFoyer(ctx context.Context, blocID, foyerID int64) error
	Delete(ctx context.Context, id int64) error
}

// ChambreRepository интерфейс репозитория комнат
type ChambreRepository interface {
	Create(ctx context.Context, chambre *domain.Chambre) (*domain.Chambre, error)
	GetByNumero(ctx context.Context, numero int64) (*domain.Chambre, error)
	Save(ctx context.Context, chambre *domain.Chambre) error
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
