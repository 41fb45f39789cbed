package etudiants

import (
	"context"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// EtudiantRepository интерфейс репозитория студентов
type EtudiantRepository interface {
	Create(ctx context.Context, etudiant *domain.Etudiant) (*domain.Etudiant, error)
	GetByID(ctx context.Context, id int64) (*domain.Etudiant, error)
	GetAll(ctx context.Context) ([]*domain.Etudiant, error)
	GetAllByNom(ctx context.Context, nom string) ([]*domain.Etudiant, error)
	Save(ctx context.Context, etudiant *domain.Etudiant) error
	Delete(ctx context.Context, id int64) error
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
