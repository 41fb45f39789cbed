package chambres

import (
	"context"

	"github.com/m04kA/SMC-DormService/internal/service/chambres/models"
)

type ChambreService interface {
	Create(ctx context.Context, req *models.CreateChambreRequest) (*models.ChambreResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ChambreResponse, error)
	GetAll(ctx context.Context) (*models.ChambreListResponse, error)
	GetByBlocName(ctx context.Context, blocName string) (*models.ChambreListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateChambreRequest) (*models.ChambreResponse, error)
	Delete(ctx context.Context, id int64) error
	CountByTypeAndBloc(ctx context.Context, typeChambre string, blocID int64) (*models.CountResponse, error)
	TypePercentages(ctx context.Context) (*models.TypePercentagesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
