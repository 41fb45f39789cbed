package etudiants

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	etudiantsService "github.com/m04kA/SMC-DormService/internal/service/etudiants"
)

const (
	msgInvalidEtudiantID  = "некорректный ID студента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "студент не найден"
	msgCinTaken           = "студент с таким CIN уже существует"
)

type Handler struct {
	service EtudiantService
	logger  Logger
}

func NewHandler(service EtudiantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/etudiants
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEtudiantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /etudiants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /etudiants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		h.respondError(w, "POST /etudiants", err)
		return
	}

	h.logger.Info("POST /etudiants - Etudiant created: id=%d, cin=%d", result.ID, result.Cin)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/etudiants/{etudiantId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "etudiantId")
	if err != nil {
		h.logger.Warn("GET /etudiants/{id} - Invalid etudiant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEtudiantID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /etudiants/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/etudiants
// Query params: nom (optional, точное совпадение фамилии)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	nom := r.URL.Query().Get("nom")

	result, err := h.service.GetAll(r.Context(), nom)
	if err != nil {
		h.respondError(w, "GET /etudiants", err)
		return
	}

	h.logger.Info("GET /etudiants - Etudiants retrieved: nom=%q, total=%d", nom, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/etudiants/{etudiantId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "etudiantId")
	if err != nil {
		h.logger.Warn("PUT /etudiants/{id} - Invalid etudiant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEtudiantID)
		return
	}

	var req UpdateEtudiantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /etudiants/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /etudiants/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, serviceReq)
	if err != nil {
		h.respondError(w, "PUT /etudiants/{id}", err)
		return
	}

	h.logger.Info("PUT /etudiants/{id} - Etudiant updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/etudiants/{etudiantId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "etudiantId")
	if err != nil {
		h.logger.Warn("DELETE /etudiants/{id} - Invalid etudiant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEtudiantID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /etudiants/{id}", err)
		return
	}

	h.logger.Info("DELETE /etudiants/{id} - Etudiant deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, etudiantsService.ErrEtudiantNotFound):
		h.logger.Warn("%s - Etudiant not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, etudiantsService.ErrCinTaken):
		h.logger.Warn("%s - CIN taken: %v", route, err)
		handlers.RespondConflict(w, msgCinTaken)

	case errors.Is(err, etudiantsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
