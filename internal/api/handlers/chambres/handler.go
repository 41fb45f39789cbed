package chambres

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	chambresService "github.com/m04kA/SMC-DormService/internal/service/chambres"
)

const (
	msgInvalidChambreID   = "некорректный ID комнаты"
	msgInvalidBlocID      = "некорректный ID блока"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingType        = "тип комнаты обязателен"
	msgNotFound           = "комната не найдена"
	msgNumeroTaken        = "комната с таким номером уже существует"
	msgUnknownBloc        = "блок не найден"
	msgInvalidRoomType    = "некорректный тип комнаты, ожидается SIMPLE, DOUBLE или TRIPLE"
)

type Handler struct {
	service ChambreService
	logger  Logger
}

func NewHandler(service ChambreService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/chambres
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateChambreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chambres - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /chambres", err)
		return
	}

	h.logger.Info("POST /chambres - Chambre created: id=%d, numero=%d", result.ID, result.Numero)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/chambres/{chambreId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "chambreId")
	if err != nil {
		h.logger.Warn("GET /chambres/{id} - Invalid chambre ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChambreID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /chambres/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/chambres
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.respondError(w, "GET /chambres", err)
		return
	}

	h.logger.Info("GET /chambres - Chambres retrieved: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListByBlocName GET /api/v1/blocs/by-name/{blocName}/chambres
func (h *Handler) ListByBlocName(w http.ResponseWriter, r *http.Request) {
	blocName := mux.Vars(r)["blocName"]

	result, err := h.service.GetByBlocName(r.Context(), blocName)
	if err != nil {
		h.respondError(w, "GET /blocs/by-name/{name}/chambres", err)
		return
	}

	h.logger.Info("GET /blocs/by-name/{name}/chambres - Chambres retrieved: bloc=%s, total=%d", blocName, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/chambres/{chambreId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "chambreId")
	if err != nil {
		h.logger.Warn("PUT /chambres/{id} - Invalid chambre ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChambreID)
		return
	}

	var req UpdateChambreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /chambres/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "PUT /chambres/{id}", err)
		return
	}

	h.logger.Info("PUT /chambres/{id} - Chambre updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/chambres/{chambreId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "chambreId")
	if err != nil {
		h.logger.Warn("DELETE /chambres/{id} - Invalid chambre ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChambreID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /chambres/{id}", err)
		return
	}

	h.logger.Info("DELETE /chambres/{id} - Chambre deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

// CountByTypeAndBloc GET /api/v1/chambres/stats/count?type=SIMPLE&blocId=1
func (h *Handler) CountByTypeAndBloc(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	typeChambre := query.Get("type")
	if typeChambre == "" {
		h.logger.Warn("GET /chambres/stats/count - Missing type")
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	blocID, err := strconv.ParseInt(query.Get("blocId"), 10, 64)
	if err != nil || blocID <= 0 {
		h.logger.Warn("GET /chambres/stats/count - Invalid bloc ID: %q", query.Get("blocId"))
		handlers.RespondBadRequest(w, msgInvalidBlocID)
		return
	}

	result, err := h.service.CountByTypeAndBloc(r.Context(), typeChambre, blocID)
	if err != nil {
		h.respondError(w, "GET /chambres/stats/count", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// TypePercentages GET /api/v1/chambres/stats/percentages
func (h *Handler) TypePercentages(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.TypePercentages(r.Context())
	if err != nil {
		h.respondError(w, "GET /chambres/stats/percentages", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, chambresService.ErrChambreNotFound):
		h.logger.Warn("%s - Chambre not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, chambresService.ErrNumeroTaken):
		h.logger.Warn("%s - Numero taken: %v", route, err)
		handlers.RespondConflict(w, msgNumeroTaken)

	case errors.Is(err, chambresService.ErrUnknownBloc):
		h.logger.Warn("%s - Unknown bloc: %v", route, err)
		handlers.RespondNotFound(w, msgUnknownBloc)

	case errors.Is(err, chambresService.ErrInvalidRoomType):
		h.logger.Warn("%s - Invalid room type: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRoomType)

	case errors.Is(err, chambresService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
