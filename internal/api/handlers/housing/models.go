package housing

import (
	"github.com/m04kA/SMC-DormService/internal/service/housing/models"
)

// CreateChambreRequest HTTP request model
type CreateChambreRequest struct {
	Numero      int64  `json:"numeroChambre" validate:"required,gt=0"`
	TypeChambre string `json:"typeC" validate:"required"`
}

// CreateBlocRequest HTTP request model
type CreateBlocRequest struct {
	Nom      string                 `json:"nomBloc" validate:"required,max=255"`
	Capacite int64                  `json:"capaciteBloc" validate:"gte=0"`
	FoyerID  *int64                 `json:"idFoyer,omitempty" validate:"omitempty,gt=0"`
	Chambres []CreateChambreRequest `json:"chambres,omitempty" validate:"dive"`
}

// CreateFoyerRequest HTTP request model
type CreateFoyerRequest struct {
	Nom      string              `json:"nomFoyer" validate:"required,max=255"`
	Capacite int64               `json:"capaciteFoyer" validate:"gte=0"`
	Blocs    []CreateBlocRequest `json:"blocs,omitempty" validate:"dive"`
}

// CreateUniversiteRequest HTTP request model
type CreateUniversiteRequest struct {
	Nom     string              `json:"nomUniversite" validate:"required,max=255"`
	Adresse string              `json:"adresse" validate:"max=255"`
	Foyer   *CreateFoyerRequest `json:"foyer,omitempty"`
}

// UpdateUniversiteRequest HTTP request model
type UpdateUniversiteRequest struct {
	Nom     *string `json:"nomUniversite,omitempty" validate:"omitempty,min=1,max=255"`
	Adresse *string `json:"adresse,omitempty" validate:"omitempty,max=255"`
}

// UpdateFoyerRequest HTTP request model
type UpdateFoyerRequest struct {
	Nom      *string `json:"nomFoyer,omitempty" validate:"omitempty,min=1,max=255"`
	Capacite *int64  `json:"capaciteFoyer,omitempty" validate:"omitempty,gte=0"`
}

// UpdateBlocRequest HTTP request model
type UpdateBlocRequest struct {
	Nom      *string `json:"nomBloc,omitempty" validate:"omitempty,min=1,max=255"`
	Capacite *int64  `json:"capaciteBloc,omitempty" validate:"omitempty,gte=0"`
}

// AssignChambresRequest HTTP request model: номера комнат, переносимых в блок
type AssignChambresRequest struct {
	Numeros []int64 `json:"numerosChambres" validate:"required,min=1,dive,gt=0"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlocRequest) ToServiceRequest() *models.CreateBlocRequest {
	chambres := make([]models.CreateChambreRequest, 0, len(r.Chambres))
	for _, c := range r.Chambres {
		chambres = append(chambres, models.CreateChambreRequest{
			Numero:      c.Numero,
			TypeChambre: c.TypeChambre,
		})
	}
	return &models.CreateBlocRequest{
		Nom:      r.Nom,
		Capacite: r.Capacite,
		FoyerID:  r.FoyerID,
		Chambres: chambres,
	}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateFoyerRequest) ToServiceRequest() *models.CreateFoyerRequest {
	blocs := make([]models.CreateBlocRequest, 0, len(r.Blocs))
	for i := range r.Blocs {
		blocs = append(blocs, *r.Blocs[i].ToServiceRequest())
	}
	return &models.CreateFoyerRequest{
		Nom:      r.Nom,
		Capacite: r.Capacite,
		Blocs:    blocs,
	}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateUniversiteRequest) ToServiceRequest() *models.CreateUniversiteRequest {
	req := &models.CreateUniversiteRequest{
		Nom:     r.Nom,
		Adresse: r.Adresse,
	}
	if r.Foyer != nil {
		req.Foyer = r.Foyer.ToServiceRequest()
	}
	return req
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateUniversiteRequest) ToServiceRequest() *models.UpdateUniversiteRequest {
	return &models.UpdateUniversiteRequest{Nom: r.Nom, Adresse: r.Adresse}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateFoyerRequest) ToServiceRequest() *models.UpdateFoyerRequest {
	return &models.UpdateFoyerRequest{Nom: r.Nom, Capacite: r.Capacite}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBlocRequest) ToServiceRequest() *models.UpdateBlocRequest {
	return &models.UpdateBlocRequest{Nom: r.Nom, Capacite: r.Capacite}
}
