package models

import (
	"github.com/m04kA/SMC-DormService/internal/domain"
)

// ReservationResponse бронирование в ответах
type ReservationResponse struct {
	ID                 string `json:"idReservation"`
	AnneeUniversitaire string `json:"anneeUniversitaire"` // "2024-09-15"
	EstValide          bool   `json:"estValide"`
}

// ChambreLinkResponse комната после изменения связей
type ChambreLinkResponse struct {
	ReservationID string                `json:"idReservation"`
	ChambreID     int64                 `json:"idChambre"`
	NumeroChambre int64                 `json:"numeroChambre"`
	TypeChambre   string                `json:"typeC"`
	Changed       bool                  `json:"changed"` // false, если связь уже была в нужном состоянии
	Reservations  []ReservationResponse `json:"reservations"`
}

// EtudiantLinkResponse результат изменения связи студента с бронированием
type EtudiantLinkResponse struct {
	ReservationID string                `json:"idReservation"`
	Found         bool                  `json:"found"` // false, если студент с таким именем не найден
	EtudiantID    *int64                `json:"idEtudiant,omitempty"`
	Changed       bool                  `json:"changed"`
	Reservations  []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain.Reservation в ответ
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                 r.ID,
		AnneeUniversitaire: r.AnneeUniversitaire.Format(domain.DateFormat),
		EstValide:          r.EstValide,
	}
}

// FromDomainReservations конвертирует список бронирований, пропуская nil
func FromDomainReservations(list []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		if r != nil {
			result = append(result, FromDomainReservation(r))
		}
	}
	return result
}

// FromDomainChambre конвертирует комнату в ответ
func FromDomainChambre(reservationID string, c *domain.Chambre, changed bool) *ChambreLinkResponse {
	return &ChambreLinkResponse{
		ReservationID: reservationID,
		ChambreID:     c.ID,
		NumeroChambre: c.Numero,
		TypeChambre:   string(c.Type),
		Changed:       changed,
		Reservations:  FromDomainReservations(c.ReservationList()),
	}
}
