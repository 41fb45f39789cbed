package chambres

import (
	"github.com/m04kA/SMC-DormService/internal/service/chambres/models"
)

// CreateChambreRequest HTTP request model
type CreateChambreRequest struct {
	Numero      int64  `json:"numeroChambre" validate:"required,gt=0"`
	TypeChambre string `json:"typeC" validate:"required"`
	BlocID      *int64 `json:"idBloc,omitempty" validate:"omitempty,gt=0"`
}

// UpdateChambreRequest HTTP request model
type UpdateChambreRequest struct {
	Numero      *int64  `json:"numeroChambre,omitempty" validate:"omitempty,gt=0"`
	TypeChambre *string `json:"typeC,omitempty"`
	BlocID      *int64  `json:"idBloc,omitempty" validate:"omitempty,gt=0"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateChambreRequest) ToServiceRequest() *models.CreateChambreRequest {
	return &models.CreateChambreRequest{
		Numero:      r.Numero,
		TypeChambre: r.TypeChambre,
		BlocID:      r.BlocID,
	}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateChambreRequest) ToServiceRequest() *models.UpdateChambreRequest {
	return &models.UpdateChambreRequest{
		Numero:      r.Numero,
		TypeChambre: r.TypeChambre,
		BlocID:      r.BlocID,
	}
}
