package models

import (
	"time"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// Request модели

// CreateReservationRequest запрос на создание бронирования
// Пустой ID заменяется сгенерированным UUID
type CreateReservationRequest struct {
	ID                 string    `json:"idReservation"`
	AnneeUniversitaire time.Time `json:"anneeUniversitaire"`
	EstValide          bool      `json:"estValide"`
}

// UpdateReservationRequest запрос на обновление бронирования; nil поля не меняются
type UpdateReservationRequest struct {
	AnneeUniversitaire *time.Time `json:"anneeUniversitaire,omitempty"`
	EstValide          *bool      `json:"estValide,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                 string `json:"idReservation"`
	AnneeUniversitaire string `json:"anneeUniversitaire"` // "2024-09-15"
	EstValide          bool   `json:"estValide"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// CountResponse количество бронирований за период
type CountResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Count int64  `json:"count"`
}

// FromDomainReservation конвертирует domain.Reservation в ответ
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                 r.ID,
		AnneeUniversitaire: r.AnneeUniversitaire.Format(domain.DateFormat),
		EstValide:          r.EstValide,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	result := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, r := range list {
		result.Reservations = append(result.Reservations, *FromDomainReservation(r))
	}
	return result
}
