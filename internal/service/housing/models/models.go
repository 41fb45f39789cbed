package models

import (
	"github.com/m04kA/SMC-DormService/internal/domain"
)

// Request модели

// CreateChambreRequest комната, создаваемая вместе с блоком
type CreateChambreRequest struct {
	Numero      int64  `json:"numeroChambre"`
	TypeChambre string `json:"typeC"`
}

// CreateBlocRequest запрос на создание блока (опционально вместе с комнатами)
type CreateBlocRequest struct {
	Nom      string                 `json:"nomBloc"`
	Capacite int64                  `json:"capaciteBloc"`
	FoyerID  *int64                 `json:"idFoyer,omitempty"`
	Chambres []CreateChambreRequest `json:"chambres,omitempty"`
}

// CreateFoyerRequest запрос на создание фойе (опционально вместе с блоками)
type CreateFoyerRequest struct {
	Nom      string              `json:"nomFoyer"`
	Capacite int64               `json:"capaciteFoyer"`
	Blocs    []CreateBlocRequest `json:"blocs,omitempty"`
}

// CreateUniversiteRequest запрос на создание университета (опционально вместе с фойе)
type CreateUniversiteRequest struct {
	Nom     string              `json:"nomUniversite"`
	Adresse string              `json:"adresse"`
	Foyer   *CreateFoyerRequest `json:"foyer,omitempty"`
}

// UpdateUniversiteRequest nil поля не меняются
type UpdateUniversiteRequest struct {
	Nom     *string `json:"nomUniversite,omitempty"`
	Adresse *string `json:"adresse,omitempty"`
}

// UpdateFoyerRequest nil поля не меняются
type UpdateFoyerRequest struct {
	Nom      *string `json:"nomFoyer,omitempty"`
	Capacite *int64  `json:"capaciteFoyer,omitempty"`
}

// UpdateBlocRequest nil поля не меняются
type UpdateBlocRequest struct {
	Nom      *string `json:"nomBloc,omitempty"`
	Capacite *int64  `json:"capaciteBloc,omitempty"`
}

// Response модели

// ChambreResponse комната в составе блока
type ChambreResponse struct {
	ID          int64  `json:"idChambre"`
	Numero      int64  `json:"numeroChambre"`
	TypeChambre string `json:"typeC"`
}

// BlocResponse ответ с данными блока
type BlocResponse struct {
	ID       int64             `json:"idBloc"`
	Nom      string            `json:"nomBloc"`
	Capacite int64             `json:"capaciteBloc"`
	FoyerID  *int64            `json:"idFoyer,omitempty"`
	Chambres []ChambreResponse `json:"chambres"`
}

// FoyerResponse ответ с данными фойе
type FoyerResponse struct {
	ID           int64          `json:"idFoyer"`
	Nom          string         `json:"nomFoyer"`
	Capacite     int64          `json:"capaciteFoyer"`
	UniversiteID *int64         `json:"idUniversite,omitempty"`
	Blocs        []BlocResponse `json:"blocs"`
}

// UniversiteResponse ответ с данными университета
type UniversiteResponse struct {
	ID      int64          `json:"idUniversite"`
	Nom     string         `json:"nomUniversite"`
	Adresse string         `json:"adresse"`
	Foyer   *FoyerResponse `json:"foyer"` // null, если фойе не привязано
}

// FromDomainBloc конвертирует domain.Bloc в ответ
func FromDomainBloc(b *domain.Bloc) *BlocResponse {
	resp := &BlocResponse{
		ID:       b.ID,
		Nom:      b.Nom,
		Capacite: b.Capacite,
		FoyerID:  b.FoyerID,
		Chambres: make([]ChambreResponse, 0, len(b.Chambres)),
	}
	for _, c := range b.ChambreList() {
		resp.Chambres = append(resp.Chambres, ChambreResponse{
			ID:          c.ID,
			Numero:      c.Numero,
			TypeChambre: string(c.Type),
		})
	}
	return resp
}

// FromDomainFoyer конвертирует domain.Foyer в ответ
func FromDomainFoyer(f *domain.Foyer) *FoyerResponse {
	resp := &FoyerResponse{
		ID:           f.ID,
		Nom:          f.Nom,
		Capacite:     f.Capacite,
		UniversiteID: f.UniversiteID,
		Blocs:        make([]BlocResponse, 0, len(f.Blocs)),
	}
	for _, b := range f.BlocList() {
		resp.Blocs = append(resp.Blocs, *FromDomainBloc(b))
	}
	return resp
}

// FromDomainUniversite конвертирует domain.Universite в ответ
func FromDomainUniversite(u *domain.Universite) *UniversiteResponse {
	resp := &UniversiteResponse{
		ID:      u.ID,
		Nom:     u.Nom,
		Adresse: u.Adresse,
	}
	if u.HasFoyer() {
		resp.Foyer = FromDomainFoyer(u.Foyer)
	}
	return resp
}

// FromDomainUniversiteList конвертирует список университетов
func FromDomainUniversiteList(list []*domain.Universite) []UniversiteResponse {
	result := make([]UniversiteResponse, 0, len(list))
	for _, u := range list {
		result = append(result, *FromDomainUniversite(u))
	}
	return result
}

// FromDomainFoyerList конвертирует список фойе
func FromDomainFoyerList(list []*domain.Foyer) []FoyerResponse {
	result := make([]FoyerResponse, 0, len(list))
	for _, f := range list {
		result = append(result, *FromDomainFoyer(f))
	}
	return result
}

// FromDomainBlocList конвертирует список блоков
func FromDomainBlocList(list []*domain.Bloc) []BlocResponse {
	result := make([]BlocResponse, 0, len(list))
	for _, b := range list {
		result = append(result, *FromDomainBloc(b))
	}
	return result
}
