package housing

import (
	"net/http"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
)

// CreateFoyer POST /api/v1/foyers
func (h *Handler) CreateFoyer(w http.ResponseWriter, r *http.Request) {
	var req CreateFoyerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /foyers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateFoyer(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /foyers", err)
		return
	}

	h.logger.Info("POST /foyers - Foyer created: id=%d, nom=%s", result.ID, result.Nom)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// CreateFoyerForUniversite POST /api/v1/universites/{universiteId}/foyer
func (h *Handler) CreateFoyerForUniversite(w http.ResponseWriter, r *http.Request) {
	universiteID, err := handlers.PathInt64(r, "universiteId")
	if err != nil {
		h.logger.Warn("POST /universites/{id}/foyer - Invalid universite ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUniversiteID)
		return
	}

	var req CreateFoyerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /universites/{id}/foyer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateFoyerForUniversite(r.Context(), universiteID, req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /universites/{id}/foyer", err)
		return
	}

	h.logger.Info("POST /universites/{id}/foyer - Foyer created: id=%d, universite_id=%d", result.ID, universiteID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// GetFoyer GET /api/v1/foyers/{foyerId}
func (h *Handler) GetFoyer(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "foyerId")
	if err != nil {
		h.logger.Warn("GET /foyers/{id} - Invalid foyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFoyerID)
		return
	}

	result, err := h.service.GetFoyer(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /foyers/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListFoyers GET /api/v1/foyers
func (h *Handler) ListFoyers(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListFoyers(r.Context())
	if err != nil {
		h.respondError(w, "GET /foyers", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateFoyer PUT /api/v1/foyers/{foyerId}
func (h *Handler) UpdateFoyer(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "foyerId")
	if err != nil {
		h.logger.Warn("PUT /foyers/{id} - Invalid foyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFoyerID)
		return
	}

	var req UpdateFoyerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /foyers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateFoyer(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "PUT /foyers/{id}", err)
		return
	}

	h.logger.Info("PUT /foyers/{id} - Foyer updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteFoyer DELETE /api/v1/foyers/{foyerId}
func (h *Handler) DeleteFoyer(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "foyerId")
	if err != nil {
		h.logger.Warn("DELETE /foyers/{id} - Invalid foyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFoyerID)
		return
	}

	if err := h.service.DeleteFoyer(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /foyers/{id}", err)
		return
	}

	h.logger.Info("DELETE /foyers/{id} - Foyer deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
