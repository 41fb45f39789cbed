package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	cancelReservation "github.com/m04kA/SMC-DormService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidCin          = "некорректный CIN студента"
	msgNoActiveReservation = "у студента нет действующего бронирования"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/students/{cin}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cin, err := handlers.PathInt64(r, "cin")
	if err != nil {
		h.logger.Warn("DELETE /reservations/students/{cin} - Invalid cin: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCin)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelReservation.Request{Cin: cin})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrNoActiveReservation):
			h.logger.Warn("DELETE /reservations/students/{cin} - No active reservation: cin=%d", cin)
			handlers.RespondNotFound(w, msgNoActiveReservation)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("DELETE /reservations/students/{cin} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCin)

		default:
			h.logger.Error("DELETE /reservations/students/{cin} - Failed to cancel: cin=%d, error=%v", cin, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/students/{cin} - Reservation cancelled: id=%s, cin=%d", result.ReservationID, cin)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
