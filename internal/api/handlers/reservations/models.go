package reservations

import (
	"fmt"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	"github.com/m04kA/SMC-DormService/internal/service/reservations/models"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ID                 string `json:"idReservation" validate:"omitempty,max=255"`
	AnneeUniversitaire string `json:"anneeUniversitaire" validate:"required"` // "2024-09-15"
	EstValide          *bool  `json:"estValide"`
}

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	AnneeUniversitaire *string `json:"anneeUniversitaire,omitempty"`
	EstValide          *bool   `json:"estValide,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// Без estValide бронирование создается действующим
func (r *CreateReservationRequest) ToServiceRequest() (*models.CreateReservationRequest, error) {
	annee, err := handlers.ParseDate(r.AnneeUniversitaire)
	if err != nil {
		return nil, fmt.Errorf("invalid anneeUniversitaire: %w", err)
	}

	estValide := true
	if r.EstValide != nil {
		estValide = *r.EstValide
	}

	return &models.CreateReservationRequest{
		ID:                 r.ID,
		AnneeUniversitaire: annee,
		EstValide:          estValide,
	}, nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateReservationRequest) ToServiceRequest() (*models.UpdateReservationRequest, error) {
	annee, err := handlers.ParseOptionalDate(r.AnneeUniversitaire)
	if err != nil {
		return nil, fmt.Errorf("invalid anneeUniversitaire: %w", err)
	}

	return &models.UpdateReservationRequest{
		AnneeUniversitaire: annee,
		EstValide:          r.EstValide,
	}, nil
}
