package cancel_reservation

import (
	cancelReservation "github.com/m04kA/SMC-DormService/internal/usecase/cancel_reservation"
)

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	ReservationID string `json:"idReservation"`
	ChambreID     *int64 `json:"idChambre,omitempty"`
	Message       string `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelReservationResponse {
	return &CancelReservationResponse{
		ReservationID: resp.ReservationID,
		ChambreID:     resp.ChambreID,
		Message:       resp.Message,
	}
}
