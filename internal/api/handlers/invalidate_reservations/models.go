package invalidate_reservations

import (
	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	invalidateReservations "github.com/m04kA/SMC-DormService/internal/usecase/invalidate_reservations"
)

// InvalidateResponse HTTP response model
type InvalidateResponse struct {
	WindowStart    string   `json:"windowStart"`
	WindowEnd      string   `json:"windowEnd"`
	Invalidated    int      `json:"invalidated"`
	ReservationIDs []string `json:"reservationIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *invalidateReservations.Response) *InvalidateResponse {
	ids := resp.ReservationIDs
	if ids == nil {
		ids = make([]string, 0)
	}
	return &InvalidateResponse{
		WindowStart:    resp.WindowStart.Format(handlers.DateLayout),
		WindowEnd:      resp.WindowEnd.Format(handlers.DateLayout),
		Invalidated:    resp.Invalidated,
		ReservationIDs: ids,
	}
}
