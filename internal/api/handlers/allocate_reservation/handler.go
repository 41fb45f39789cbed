package allocate_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	allocateReservation "github.com/m04kA/SMC-DormService/internal/usecase/allocate_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRoomNotFound       = "комната не найдена"
	msgStudentNotFound    = "студент не найден"
	msgRoomFull           = "в комнате нет свободных мест"
)

type Handler struct {
	useCase AllocateReservationUseCase
	logger  Logger
}

func NewHandler(useCase AllocateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/allocate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AllocateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/allocate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, allocateReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations/allocate - Room not found: numero=%d", req.NumeroChambre)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, allocateReservation.ErrStudentNotFound):
			h.logger.Warn("POST /reservations/allocate - Student not found: cin=%d", req.Cin)
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, allocateReservation.ErrRoomFull):
			h.logger.Warn("POST /reservations/allocate - Room full: numero=%d, cin=%d", req.NumeroChambre, req.Cin)
			handlers.RespondConflict(w, msgRoomFull)

		case errors.Is(err, allocateReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/allocate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations/allocate - Failed to allocate: numero=%d, cin=%d, error=%v",
				req.NumeroChambre, req.Cin, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/allocate - Reservation created: id=%s, numero=%d, cin=%d",
		result.ReservationID, req.NumeroChambre, req.Cin)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
