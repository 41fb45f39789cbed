package models

import (
	"github.com/m04kA/SMC-DormService/internal/domain"
)

// Request модели

// CreateChambreRequest запрос на создание комнаты
type CreateChambreRequest struct {
	Numero      int64  `json:"numeroChambre"`
	TypeChambre string `json:"typeC"`
	BlocID      *int64 `json:"idBloc,omitempty"`
}

// UpdateChambreRequest запрос на обновление комнаты; nil поля не меняются
type UpdateChambreRequest struct {
	Numero      *int64  `json:"numeroChambre,omitempty"`
	TypeChambre *string `json:"typeC,omitempty"`
	BlocID      *int64  `json:"idBloc,omitempty"`
}

// Response модели

// ReservationResponse бронирование, привязанное к комнате
type ReservationResponse struct {
	ID                 string `json:"idReservation"`
	AnneeUniversitaire string `json:"anneeUniversitaire"`
	EstValide          bool   `json:"estValide"`
}

// ChambreResponse ответ с данными комнаты
type ChambreResponse struct {
	ID           int64                 `json:"idChambre"`
	Numero       int64                 `json:"numeroChambre"`
	TypeChambre  string                `json:"typeC"`
	BlocID       *int64                `json:"idBloc,omitempty"`
	Capacity     int                   `json:"capacity"`
	Reservations []ReservationResponse `json:"reservations"`
}

// ChambreListResponse список комнат
type ChambreListResponse struct {
	Chambres []ChambreResponse `json:"chambres"`
	Total    int               `json:"total"`
}

// CountResponse число комнат типа в блоке
type CountResponse struct {
	BlocID      int64  `json:"idBloc"`
	TypeChambre string `json:"typeC"`
	Count       int64  `json:"count"`
}

// TypeShare доля комнат одного типа
type TypeShare struct {
	TypeChambre string  `json:"typeC"`
	Count       int64   `json:"count"`
	Percentage  float64 `json:"percentage"` // 0-100
}

// TypePercentagesResponse распределение комнат по типам
type TypePercentagesResponse struct {
	Total  int64       `json:"total"`
	Shares []TypeShare `json:"shares"`
}

// FromDomainChambre конвертирует domain.Chambre в ответ
func FromDomainChambre(c *domain.Chambre) *ChambreResponse {
	resp := &ChambreResponse{
		ID:           c.ID,
		Numero:       c.Numero,
		TypeChambre:  string(c.Type),
		BlocID:       c.BlocID,
		Capacity:     c.Type.Capacity(),
		Reservations: make([]ReservationResponse, 0, len(c.Reservations)),
	}
	for _, r := range c.ReservationList() {
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

// FromDomainChambreList конвертирует список комнат
func FromDomainChambreList(list []*domain.Chambre) *ChambreListResponse {
	result := &ChambreListResponse{
		Chambres: make([]ChambreResponse, 0, len(list)),
		Total:    len(list),
	}
	for _, c := range list {
		result.Chambres = append(result.Chambres, *FromDomainChambre(c))
	}
	return result
}
