package housing

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
)

// CreateUniversite POST /api/v1/universites
// Вложенное фойе (с блоками и комнатами) создается в той же транзакции
func (h *Handler) CreateUniversite(w http.ResponseWriter, r *http.Request) {
	var req CreateUniversiteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /universites - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateUniversite(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /universites", err)
		return
	}

	h.logger.Info("POST /universites - Universite created: id=%d, nom=%s", result.ID, result.Nom)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// GetUniversite GET /api/v1/universites/{universiteId}
func (h *Handler) GetUniversite(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "universiteId")
	if err != nil {
		h.logger.Warn("GET /universites/{id} - Invalid universite ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUniversiteID)
		return
	}

	result, err := h.service.GetUniversite(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /universites/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListUniversites GET /api/v1/universites
func (h *Handler) ListUniversites(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListUniversites(r.Context())
	if err != nil {
		h.respondError(w, "GET /universites", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateUniversite PUT /api/v1/universites/{universiteId}
func (h *Handler) UpdateUniversite(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "universiteId")
	if err != nil {
		h.logger.Warn("PUT /universites/{id} - Invalid universite ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUniversiteID)
		return
	}

	var req UpdateUniversiteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /universites/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateUniversite(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "PUT /universites/{id}", err)
		return
	}

	h.logger.Info("PUT /universites/{id} - Universite updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteUniversite DELETE /api/v1/universites/{universiteId}
func (h *Handler) DeleteUniversite(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "universiteId")
	if err != nil {
		h.logger.Warn("DELETE /universites/{id} - Invalid universite ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUniversiteID)
		return
	}

	if err := h.service.DeleteUniversite(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /universites/{id}", err)
		return
	}

	h.logger.Info("DELETE /universites/{id} - Universite deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

// AssignFoyerByName PUT /api/v1/universites/by-name/{universiteName}/foyer/{foyerId}
func (h *Handler) AssignFoyerByName(w http.ResponseWriter, r *http.Request) {
	universiteName := mux.Vars(r)["universiteName"]

	foyerID, err := handlers.PathInt64(r, "foyerId")
	if err != nil {
		h.logger.Warn("PUT /universites/by-name/{name}/foyer/{foyerId} - Invalid foyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFoyerID)
		return
	}

	result, err := h.service.AssignFoyerToUniversite(r.Context(), foyerID, universiteName)
	if err != nil {
		h.respondError(w, "PUT /universites/by-name/{name}/foyer/{foyerId}", err)
		return
	}

	h.logger.Info("PUT /universites/by-name/{name}/foyer/{foyerId} - Foyer assigned: universite=%s, foyer_id=%d",
		universiteName, foyerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// AssignFoyer PUT /api/v1/universites/{universiteId}/foyer/{foyerId}
func (h *Handler) AssignFoyer(w http.ResponseWriter, r *http.Request) {
	universiteID, err := handlers.PathInt64(r, "universiteId")
	if err != nil {
		h.logger.Warn("PUT /universites/{id}/foyer/{foyerId} - Invalid universite ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUniversiteID)
		return
	}
	foyerID, err := handlers.PathInt64(r, "foyerId")
	if err != nil {
		h.logger.Warn("PUT /universites/{id}/foyer/{foyerId} - Invalid foyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFoyerID)
		return
	}

	result, err := h.service.AssignFoyerToUniversiteByID(r.Context(), foyerID, universiteID)
	if err != nil {
		h.respondError(w, "PUT /universites/{id}/foyer/{foyerId}", err)
		return
	}

	h.logger.Info("PUT /universites/{id}/foyer/{foyerId} - Foyer assigned: universite_id=%d, foyer_id=%d",
		universiteID, foyerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UnassignFoyer DELETE /api/v1/universites/{universiteId}/foyer
func (h *Handler) UnassignFoyer(w http.ResponseWriter, r *http.Request) {
	universiteID, err := handlers.PathInt64(r, "universiteId")
	if err != nil {
		h.logger.Warn("DELETE /universites/{id}/foyer - Invalid universite ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUniversiteID)
		return
	}

	result, err := h.service.UnassignFoyer(r.Context(), universiteID)
	if err != nil {
		h.respondError(w, "DELETE /universites/{id}/foyer", err)
		return
	}

	h.logger.Info("DELETE /universites/{id}/foyer - Foyer unassigned: universite_id=%d", universiteID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
