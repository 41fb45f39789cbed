package reservations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	reservationsService "github.com/m04kA/SMC-DormService/internal/service/reservations"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgReservationNotFound = "бронирование не найдено"
	msgReservationExists   = "бронирование с таким ID уже существует"
	msgInvalidPeriod       = "некорректный период: ожидаются даты start и end в формате YYYY-MM-DD, start <= end"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/reservations
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationExists):
			h.logger.Warn("POST /reservations - Reservation exists: id=%s", req.ID)
			handlers.RespondConflict(w, msgReservationExists)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/reservations/{reservationId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["reservationId"]

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondLookupError(w, "GET /reservations/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/reservations
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/reservations/{reservationId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["reservationId"]

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, serviceReq)
	if err != nil {
		h.respondLookupError(w, "PUT /reservations/{id}", id, err)
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["reservationId"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondLookupError(w, "DELETE /reservations/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

// Count GET /api/v1/reservations/count?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := handlers.ParseDate(query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /reservations/count - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	end, err := handlers.ParseDate(query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /reservations/count - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.CountInPeriod(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, reservationsService.ErrInvalidPeriod) {
			h.logger.Warn("GET /reservations/count - Invalid period: start=%s, end=%s", query.Get("start"), query.Get("end"))
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /reservations/count - Failed to count reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/count - Counted %d reservations: start=%s, end=%s", result.Count, result.Start, result.End)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondLookupError(w http.ResponseWriter, route, id string, err error) {
	switch {
	case errors.Is(err, reservationsService.ErrReservationNotFound):
		h.logger.Warn("%s - Reservation not found: id=%s", route, id)
		handlers.RespondNotFound(w, msgReservationNotFound)

	case errors.Is(err, reservationsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("%s - Failed: id=%s, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
