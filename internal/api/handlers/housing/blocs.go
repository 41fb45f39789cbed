package housing

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
)

// CreateBloc POST /api/v1/blocs
func (h *Handler) CreateBloc(w http.ResponseWriter, r *http.Request) {
	var req CreateBlocRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBloc(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /blocs", err)
		return
	}

	h.logger.Info("POST /blocs - Bloc created: id=%d, nom=%s", result.ID, result.Nom)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// CreateBlocInFoyer POST /api/v1/foyers/by-name/{foyerName}/blocs
func (h *Handler) CreateBlocInFoyer(w http.ResponseWriter, r *http.Request) {
	foyerName := mux.Vars(r)["foyerName"]

	var req CreateBlocRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /foyers/by-name/{name}/blocs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBlocInFoyer(r.Context(), foyerName, req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "POST /foyers/by-name/{name}/blocs", err)
		return
	}

	h.logger.Info("POST /foyers/by-name/{name}/blocs - Bloc created: id=%d, foyer=%s", result.ID, foyerName)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// GetBloc GET /api/v1/blocs/{blocId}
func (h *Handler) GetBloc(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "blocId")
	if err != nil {
		h.logger.Warn("GET /blocs/{id} - Invalid bloc ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlocID)
		return
	}

	result, err := h.service.GetBloc(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /blocs/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListBlocs GET /api/v1/blocs
func (h *Handler) ListBlocs(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlocs(r.Context())
	if err != nil {
		h.respondError(w, "GET /blocs", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateBloc PUT /api/v1/blocs/{blocId}
func (h *Handler) UpdateBloc(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "blocId")
	if err != nil {
		h.logger.Warn("PUT /blocs/{id} - Invalid bloc ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlocID)
		return
	}

	var req UpdateBlocRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /blocs/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBloc(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "PUT /blocs/{id}", err)
		return
	}

	h.logger.Info("PUT /blocs/{id} - Bloc updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteBloc DELETE /api/v1/blocs/{blocId}
func (h *Handler) DeleteBloc(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "blocId")
	if err != nil {
		h.logger.Warn("DELETE /blocs/{id} - Invalid bloc ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlocID)
		return
	}

	if err := h.service.DeleteBloc(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /blocs/{id}", err)
		return
	}

	h.logger.Info("DELETE /blocs/{id} - Bloc deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

// AssignToFoyer PUT /api/v1/blocs/by-name/{blocName}/foyer/{foyerName}
func (h *Handler) AssignToFoyer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blocName, foyerName := vars["blocName"], vars["foyerName"]

	result, err := h.service.AssignBlocToFoyer(r.Context(), blocName, foyerName)
	if err != nil {
		h.respondError(w, "PUT /blocs/by-name/{name}/foyer/{foyerName}", err)
		return
	}

	h.logger.Info("PUT /blocs/by-name/{name}/foyer/{foyerName} - Bloc assigned: bloc=%s, foyer=%s", blocName, foyerName)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// AssignChambres PUT /api/v1/blocs/by-name/{blocName}/chambres
// Все комнаты переносятся в блок одной транзакцией; неизвестный номер отменяет перенос целиком
func (h *Handler) AssignChambres(w http.ResponseWriter, r *http.Request) {
	blocName := mux.Vars(r)["blocName"]

	var req AssignChambresRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /blocs/by-name/{name}/chambres - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AssignChambresToBloc(r.Context(), blocName, req.Numeros)
	if err != nil {
		h.respondError(w, "PUT /blocs/by-name/{name}/chambres", err)
		return
	}

	h.logger.Info("PUT /blocs/by-name/{name}/chambres - Chambres assigned: bloc=%s, count=%d", blocName, len(req.Numeros))
	handlers.RespondJSON(w, http.StatusOK, result)
}
