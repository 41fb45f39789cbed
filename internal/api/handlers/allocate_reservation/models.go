package allocate_reservation

import (
	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	allocateReservation "github.com/m04kA/SMC-DormService/internal/usecase/allocate_reservation"
)

// AllocateReservationRequest HTTP request model
type AllocateReservationRequest struct {
	NumeroChambre int64 `json:"numeroChambre" validate:"required,gt=0"`
	Cin           int64 `json:"cin" validate:"required,gt=0"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ReservationID      string `json:"idReservation"`
	AnneeUniversitaire string `json:"anneeUniversitaire"` // "2024-09-15"
	EstValide          bool   `json:"estValide"`
	ChambreID          int64  `json:"idChambre"`
	NumeroChambre      int64  `json:"numeroChambre"`
	TypeChambre        string `json:"typeC"`
	EtudiantID         int64  `json:"idEtudiant"`
	Occupied           int    `json:"occupied"`
	Capacity           int    `json:"capacity"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AllocateReservationRequest) ToUseCaseRequest() *allocateReservation.Request {
	return &allocateReservation.Request{
		NumeroChambre: r.NumeroChambre,
		Cin:           r.Cin,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *allocateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ReservationID:      resp.ReservationID,
		AnneeUniversitaire: resp.AnneeUniversitaire.Format(handlers.DateLayout),
		EstValide:          resp.EstValide,
		ChambreID:          resp.ChambreID,
		NumeroChambre:      resp.NumeroChambre,
		TypeChambre:        resp.TypeChambre,
		EtudiantID:         resp.EtudiantID,
		Occupied:           resp.Occupied,
		Capacity:           resp.Capacity,
	}
}
