package assignments

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	assignmentsService "github.com/m04kA/SMC-DormService/internal/service/assignments"
	"github.com/m04kA/SMC-DormService/internal/service/assignments/models"
)

const (
	msgInvalidRoomID       = "некорректный ID комнаты"
	msgMissingStudentName  = "имя и фамилия студента обязательны"
	msgReservationNotFound = "бронирование не найдено"
	msgRoomNotFound        = "комната не найдена"
	msgLinkedElsewhere     = "бронирование уже привязано к другой комнате"
	msgInvalidInput        = "некорректные параметры запроса"
)

type (
	roomLinkFunc    func(ctx context.Context, reservationID string, chambreID int64) (*models.ChambreLinkResponse, error)
	studentLinkFunc func(ctx context.Context, reservationID, nom, prenom string) (*models.EtudiantLinkResponse, error)
)

// Handler ручная привязка бронирований к комнатам и студентам
// Вместимость комнаты здесь не проверяется
type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// AttachRoom PUT /api/v1/reservations/{reservationId}/rooms/{roomId}
func (h *Handler) AttachRoom(w http.ResponseWriter, r *http.Request) {
	h.handleRoom(w, r, "PUT", h.service.AttachReservationToRoom)
}

// DetachRoom DELETE /api/v1/reservations/{reservationId}/rooms/{roomId}
func (h *Handler) DetachRoom(w http.ResponseWriter, r *http.Request) {
	h.handleRoom(w, r, "DELETE", h.service.DetachReservationFromRoom)
}

// AttachStudent PUT /api/v1/reservations/{reservationId}/students?nom=&prenom=
func (h *Handler) AttachStudent(w http.ResponseWriter, r *http.Request) {
	h.handleStudent(w, r, "PUT", h.service.AttachReservationToStudent)
}

// DetachStudent DELETE /api/v1/reservations/{reservationId}/students?nom=&prenom=
func (h *Handler) DetachStudent(w http.ResponseWriter, r *http.Request) {
	h.handleStudent(w, r, "DELETE", h.service.DetachReservationFromStudent)
}

func (h *Handler) handleRoom(w http.ResponseWriter, r *http.Request, method string, link roomLinkFunc) {
	reservationID := mux.Vars(r)["reservationId"]

	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("%s /reservations/{id}/rooms/{roomId} - Invalid room ID: %v", method, err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := link(r.Context(), reservationID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, assignmentsService.ErrReservationNotFound):
			h.logger.Warn("%s /reservations/{id}/rooms/{roomId} - Reservation not found: reservation_id=%s", method, reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, assignmentsService.ErrChambreNotFound):
			h.logger.Warn("%s /reservations/{id}/rooms/{roomId} - Room not found: room_id=%d", method, roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, assignmentsService.ErrReservationLinkedElsewhere):
			h.logger.Warn("%s /reservations/{id}/rooms/{roomId} - Linked elsewhere: reservation_id=%s, room_id=%d",
				method, reservationID, roomID)
			handlers.RespondConflict(w, msgLinkedElsewhere)

		case errors.Is(err, assignmentsService.ErrInvalidInput):
			h.logger.Warn("%s /reservations/{id}/rooms/{roomId} - Invalid input: %v", method, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s /reservations/{id}/rooms/{roomId} - Failed: reservation_id=%s, room_id=%d, error=%v",
				method, reservationID, roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s /reservations/{id}/rooms/{roomId} - Done: reservation_id=%s, room_id=%d, changed=%t",
		method, reservationID, roomID, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleStudent(w http.ResponseWriter, r *http.Request, method string, link studentLinkFunc) {
	reservationID := mux.Vars(r)["reservationId"]

	query := r.URL.Query()
	nom, prenom := query.Get("nom"), query.Get("prenom")
	if nom == "" || prenom == "" {
		h.logger.Warn("%s /reservations/{id}/students - Missing student name: reservation_id=%s", method, reservationID)
		handlers.RespondBadRequest(w, msgMissingStudentName)
		return
	}

	result, err := link(r.Context(), reservationID, nom, prenom)
	if err != nil {
		switch {
		case errors.Is(err, assignmentsService.ErrReservationNotFound):
			h.logger.Warn("%s /reservations/{id}/students - Reservation not found: reservation_id=%s", method, reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, assignmentsService.ErrInvalidInput):
			h.logger.Warn("%s /reservations/{id}/students - Invalid input: %v", method, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s /reservations/{id}/students - Failed: reservation_id=%s, error=%v", method, reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Неизвестный студент не ошибка: отвечаем 200 с found=false
	if !result.Found {
		h.logger.Warn("%s /reservations/{id}/students - Student not found: nom=%s, prenom=%s", method, nom, prenom)
	} else {
		h.logger.Info("%s /reservations/{id}/students - Done: reservation_id=%s, changed=%t", method, reservationID, result.Changed)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
