package housing

import (
	"context"

	"github.com/m04kA/SMC-DormService/internal/service/housing/models"
)

type HousingService interface {
	CreateUniversite(ctx context.Context, req *models.CreateUniversiteRequest) (*models.UniversiteResponse, error)
	GetUniversite(ctx context.Context, id int64) (*models.UniversiteResponse, error)
	ListUniversites(ctx context.Context) ([]models.UniversiteResponse, error)
	UpdateUniversite(ctx context.Context, id int64, req *models.UpdateUniversiteRequest) (*models.UniversiteResponse, error)
	DeleteUniversite(ctx context.Context, id int64) error
	AssignFoyerToUniversite(ctx context.Context, foyerID int64, universiteNom string) (*models.UniversiteResponse, error)
	AssignFoyerToUniversiteByID(ctx context.Context, foyerID, universiteID int64) (*models.UniversiteResponse, error)
	UnassignFoyer(ctx context.Context, universiteID int64) (*models.UniversiteResponse, error)

	CreateFoyer(ctx context.Context, req *models.CreateFoyerRequest) (*models.FoyerResponse, error)
	CreateFoyerForUniversite(ctx context.Context, universiteID int64, req *models.CreateFoyerRequest) (*models.FoyerResponse, error)
	GetFoyer(ctx context.Context, id int64) (*models.FoyerResponse, error)
	ListFoyers(ctx context.Context) ([]models.FoyerResponse, error)
	UpdateFoyer(ctx context.Context, id int64, req *models.UpdateFoyerRequest) (*models.FoyerResponse, error)
	DeleteFoyer(ctx context.Context, id int64) error

	CreateBloc(ctx context.Context, req *models.CreateBlocRequest) (*models.BlocResponse, error)
	CreateBlocInFoyer(ctx context.Context, foyerNom string, req *models.CreateBlocRequest) (*models.BlocResponse, error)
	GetBloc(ctx context.Context, id int64) (*models.BlocResponse, error)
	ListBlocs(ctx context.Context) ([]models.BlocResponse, error)
	UpdateBloc(ctx context.Context, id int64, req *models.UpdateBlocRequest) (*models.BlocResponse, error)
	DeleteBloc(ctx context.Context, id int64) error
	AssignBlocToFoyer(ctx context.Context, blocNom, foyerNom string) (*models.BlocResponse, error)
	AssignChambresToBloc(ctx context.Context, blocNom string, numeros []int64) (*models.BlocResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
