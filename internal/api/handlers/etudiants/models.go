package etudiants

import (
	"fmt"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	"github.com/m04kA/SMC-DormService/internal/service/etudiants/models"
)

// CreateEtudiantRequest HTTP request model
type CreateEtudiantRequest struct {
	Nom           string  `json:"nomEt" validate:"required,max=255"`
	Prenom        string  `json:"prenomEt" validate:"required,max=255"`
	Cin           int64   `json:"cin" validate:"required,gt=0"`
	Ecole         string  `json:"ecole" validate:"max=255"`
	DateNaissance *string `json:"dateNaissance,omitempty"` // "2001-04-12"
}

// UpdateEtudiantRequest HTTP request model
type UpdateEtudiantRequest struct {
	Nom           *string `json:"nomEt,omitempty" validate:"omitempty,min=1,max=255"`
	Prenom        *string `json:"prenomEt,omitempty" validate:"omitempty,min=1,max=255"`
	Cin           *int64  `json:"cin,omitempty" validate:"omitempty,gt=0"`
	Ecole         *string `json:"ecole,omitempty" validate:"omitempty,max=255"`
	DateNaissance *string `json:"dateNaissance,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateEtudiantRequest) ToServiceRequest() (*models.CreateEtudiantRequest, error) {
	dateNaissance, err := handlers.ParseOptionalDate(r.DateNaissance)
	if err != nil {
		return nil, fmt.Errorf("invalid dateNaissance: %w", err)
	}

	return &models.CreateEtudiantRequest{
		Nom:           r.Nom,
		Prenom:        r.Prenom,
		Cin:           r.Cin,
		Ecole:         r.Ecole,
		DateNaissance: dateNaissance,
	}, nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateEtudiantRequest) ToServiceRequest() (*models.UpdateEtudiantRequest, error) {
	dateNaissance, err := handlers.ParseOptionalDate(r.DateNaissance)
	if err != nil {
		return nil, fmt.Errorf("invalid dateNaissance: %w", err)
	}

	return &models.UpdateEtudiantRequest{
		Nom:           r.Nom,
		Prenom:        r.Prenom,
		Cin:           r.Cin,
		Ecole:         r.Ecole,
		DateNaissance: dateNaissance,
	}, nil
}
