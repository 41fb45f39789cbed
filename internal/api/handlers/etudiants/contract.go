package etudiants

import (
	"context"

	"github.com/m04kA/SMC-DormService/internal/service/etudiants/models"
)

type EtudiantService interface {
	Create(ctx context.Context, req *models.CreateEtudiantRequest) (*models.EtudiantResponse, error)
	GetByID(ctx context.Context, id int64) (*models.EtudiantResponse, error)
	GetAll(ctx context.Context, nom string) (*models.EtudiantListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateEtudiantRequest) (*models.EtudiantResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
