package models

import (
	"time"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// Request модели

// CreateEtudiantRequest запрос на создание студента
type CreateEtudiantRequest struct {
	Nom           string     `json:"nomEt"`
	Prenom        string     `json:"prenomEt"`
	Cin           int64      `json:"cin"`
	Ecole         string     `json:"ecole"`
	DateNaissance *time.Time `json:"dateNaissance,omitempty"`
}

// UpdateEtudiantRequest запрос на обновление студента; nil поля не меняются
type UpdateEtudiantRequest struct {
	Nom           *string    `json:"nomEt,omitempty"`
	Prenom        *string    `json:"prenomEt,omitempty"`
	Cin           *int64     `json:"cin,omitempty"`
	Ecole         *string    `json:"ecole,omitempty"`
	DateNaissance *time.Time `json:"dateNaissance,omitempty"`
}

// Response модели

// ReservationResponse бронирование студента
type ReservationResponse struct {
	ID                 string `json:"idReservation"`
	AnneeUniversitaire string `json:"anneeUniversitaire"`
	EstValide          bool   `json:"estValide"`
}

// EtudiantResponse ответ с данными студента
type EtudiantResponse struct {
	ID            int64                 `json:"idEtudiant"`
	Nom           string                `json:"nomEt"`
	Prenom        string                `json:"prenomEt"`
	Cin           int64                 `json:"cin"`
	Ecole         string                `json:"ecole"`
	DateNaissance *string               `json:"dateNaissance,omitempty"` // "2001-04-12"
	Reservations  []ReservationResponse `json:"reservations"`
}

// EtudiantListResponse список студентов
type EtudiantListResponse struct {
	Etudiants []EtudiantResponse `json:"etudiants"`
	Total     int                `json:"total"`
}

// FromDomainEtudiant конвертирует domain.Etudiant в ответ
func FromDomainEtudiant(e *domain.Etudiant) *EtudiantResponse {
	resp := &EtudiantResponse{
		ID:           e.ID,
		Nom:          e.Nom,
		Prenom:       e.Prenom,
		Cin:          e.Cin,
		Ecole:        e.Ecole,
		Reservations: make([]ReservationResponse, 0, len(e.Reservations)),
	}
	if !e.DateNaissance.IsZero() {
		date := e.DateNaissance.Format(domain.DateFormat)
		resp.DateNaissance = &date
	}
	for _, r := range e.ReservationList() {
		if r == nil {
			continue
		}
		resp.Reservations = append(resp.Reservations, ReservationResponse{
			ID:                 r.ID,
			AnneeUniversitaire: r.AnneeUniversitaire.Format(domain.DateFormat),
			EstValide:          r.EstValide,
		})
	}
	return resp
}

// FromDomainEtudiantList конвертирует список студентов
func FromDomainEtudiantList(list []*domain.Etudiant) *EtudiantListResponse {
	result := &EtudiantListResponse{
		Etudiants: make([]EtudiantResponse, 0, len(list)),
		Total:     len(list),
	}
	for _, e := range list {
		result.Etudiants = append(result.Etudiants, *FromDomainEtudiant(e))
	}
	return result
}
