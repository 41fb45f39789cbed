package housing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	housingService "github.com/m04kA/SMC-DormService/internal/service/housing"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidUniversiteID = "некорректный ID университета"
	msgInvalidFoyerID      = "некорректный ID фойе"
	msgInvalidBlocID       = "некорректный ID блока"
	msgUniversiteNotFound  = "университет не найден"
	msgFoyerNotFound       = "фойе не найдено"
	msgBlocNotFound        = "блок не найден"
	msgChambreNotFound     = "комната не найдена"
	msgUniversiteHasFoyer  = "у университета уже есть другое фойе"
	msgNumeroTaken         = "комната с таким номером уже существует"
	msgInvalidRoomType     = "некорректный тип комнаты, ожидается SIMPLE, DOUBLE или TRIPLE"
)

// Handler справочник структуры общежитий: университеты, фойе, блоки
type Handler struct {
	service HousingService
	logger  Logger
}

func NewHandler(service HousingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, housingService.ErrUniversiteNotFound):
		h.logger.Warn("%s - Universite not found", route)
		handlers.RespondNotFound(w, msgUniversiteNotFound)

	case errors.Is(err, housingService.ErrFoyerNotFound):
		h.logger.Warn("%s - Foyer not found", route)
		handlers.RespondNotFound(w, msgFoyerNotFound)

	case errors.Is(err, housingService.ErrBlocNotFound):
		h.logger.Warn("%s - Bloc not found", route)
		handlers.RespondNotFound(w, msgBlocNotFound)

	case errors.Is(err, housingService.ErrChambreNotFound):
		h.logger.Warn("%s - Chambre not found: %v", route, err)
		handlers.RespondNotFound(w, msgChambreNotFound)

	case errors.Is(err, housingService.ErrUniversiteHasFoyer):
		h.logger.Warn("%s - Universite already has foyer", route)
		handlers.RespondConflict(w, msgUniversiteHasFoyer)

	case errors.Is(err, housingService.ErrNumeroTaken):
		h.logger.Warn("%s - Numero taken: %v", route, err)
		handlers.RespondConflict(w, msgNumeroTaken)

	case errors.Is(err, housingService.ErrInvalidRoomType):
		h.logger.Warn("%s - Invalid room type: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRoomType)

	case errors.Is(err, housingService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
