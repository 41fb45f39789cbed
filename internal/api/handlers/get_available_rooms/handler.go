package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-DormService/internal/usecase/get_available_rooms"
)

const (
	msgMissingType     = "тип комнаты обязателен"
	msgInvalidRoomType = "некорректный тип комнаты, ожидается SIMPLE, DOUBLE или TRIPLE"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/foyers/{foyerName}/available-rooms
// Query params: type (required, SIMPLE|DOUBLE|TRIPLE)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	foyerName := mux.Vars(r)["foyerName"]

	typeChambre := r.URL.Query().Get("type")
	if typeChambre == "" {
		h.logger.Warn("GET /foyers/{name}/available-rooms - Missing type: foyer=%s", foyerName)
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableRooms.Request{
		FoyerName:   foyerName,
		TypeChambre: typeChambre,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidRoomType):
			h.logger.Warn("GET /foyers/{name}/available-rooms - Invalid room type: %s", typeChambre)
			handlers.RespondBadRequest(w, msgInvalidRoomType)

		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /foyers/{name}/available-rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /foyers/{name}/available-rooms - Failed to get rooms: foyer=%s, type=%s, error=%v",
				foyerName, typeChambre, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /foyers/{name}/available-rooms - Rooms retrieved: foyer=%s, type=%s, rooms=%d",
		foyerName, typeChambre, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
