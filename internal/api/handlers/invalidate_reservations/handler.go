package invalidate_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
)

type Handler struct {
	useCase InvalidateReservationsUseCase
	logger  Logger
}

func NewHandler(useCase InvalidateReservationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/invalidate-expired
// Вызывается внешним планировщиком по окончании учебного года; повторный вызов ничего не меняет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /reservations/invalidate-expired - Failed to invalidate: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reservations/invalidate-expired - Invalidated %d reservations", result.Invalidated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
