package main

import (
	"net/http"

	"github.com/gorilla/mux"

	allocateReservationHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/allocate_reservation"
	assignmentsHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/assignments"
	cancelReservationHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/cancel_reservation"
	chambresHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/chambres"
	etudiantsHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/etudiants"
	getAvailableRoomsHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/get_available_rooms"
	housingHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/housing"
	invalidateReservationsHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/invalidate_reservations"
	reservationsHandler "github.com/m04kA/SMC-DormService/internal/api/handlers/reservations"
)

type routeHandlers struct {
	allocateReservation    *allocateReservationHandler.Handler
	cancelReservation      *cancelReservationHandler.Handler
	invalidateReservations *invalidateReservationsHandler.Handler
	getAvailableRooms      *getAvailableRoomsHandler.Handler
	assignments            *assignmentsHandler.Handler
	reservations           *reservationsHandler.Handler
	chambres               *chambresHandler.Handler
	etudiants              *etudiantsHandler.Handler
	housing                *housingHandler.Handler
}

// registerRoutes регистрирует маршруты /api/v1
// Маршруты с фиксированными сегментами идут раньше маршрутов с переменными
func registerRoutes(api *mux.Router, h routeHandlers, cached mux.MiddlewareFunc) {
	get := func(path string, fn http.HandlerFunc) {
		api.Handle(path, fn).Methods(http.MethodGet)
	}
	getCached := func(path string, fn http.HandlerFunc) {
		api.Handle(path, cached(fn)).Methods(http.MethodGet)
	}

	// --- Бронирования ---
	api.HandleFunc("/reservations/allocate", h.allocateReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/invalidate-expired", h.invalidateReservations.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/students/{cin}", h.cancelReservation.Handle).Methods(http.MethodDelete)
	get("/reservations/count", h.reservations.Count)

	api.HandleFunc("/reservations", h.reservations.Create).Methods(http.MethodPost)
	get("/reservations", h.reservations.List)
	get("/reservations/{reservationId}", h.reservations.Get)
	api.HandleFunc("/reservations/{reservationId}", h.reservations.Update).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{reservationId}", h.reservations.Delete).Methods(http.MethodDelete)

	// Ручная привязка бронирований
	api.HandleFunc("/reservations/{reservationId}/rooms/{roomId}", h.assignments.AttachRoom).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{reservationId}/rooms/{roomId}", h.assignments.DetachRoom).Methods(http.MethodDelete)
	api.HandleFunc("/reservations/{reservationId}/students", h.assignments.AttachStudent).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{reservationId}/students", h.assignments.DetachStudent).Methods(http.MethodDelete)

	// --- Комнаты ---
	get("/chambres/stats/count", h.chambres.CountByTypeAndBloc)
	get("/chambres/stats/percentages", h.chambres.TypePercentages)
	api.HandleFunc("/chambres", h.chambres.Create).Methods(http.MethodPost)
	get("/chambres", h.chambres.List)
	get("/chambres/{chambreId}", h.chambres.Get)
	api.HandleFunc("/chambres/{chambreId}", h.chambres.Update).Methods(http.MethodPut)
	api.HandleFunc("/chambres/{chambreId}", h.chambres.Delete).Methods(http.MethodDelete)

	// --- Студенты ---
	api.HandleFunc("/etudiants", h.etudiants.Create).Methods(http.MethodPost)
	get("/etudiants", h.etudiants.List)
	get("/etudiants/{etudiantId}", h.etudiants.Get)
	api.HandleFunc("/etudiants/{etudiantId}", h.etudiants.Update).Methods(http.MethodPut)
	api.HandleFunc("/etudiants/{etudiantId}", h.etudiants.Delete).Methods(http.MethodDelete)

	// --- Университеты ---
	api.HandleFunc("/universites", h.housing.CreateUniversite).Methods(http.MethodPost)
	getCached("/universites", h.housing.ListUniversites)
	api.HandleFunc("/universites/by-name/{universiteName}/foyer/{foyerId}", h.housing.AssignFoyerByName).Methods(http.MethodPut)
	getCached("/universites/{universiteId}", h.housing.GetUniversite)
	api.HandleFunc("/universites/{universiteId}", h.housing.UpdateUniversite).Methods(http.MethodPut)
	api.HandleFunc("/universites/{universiteId}", h.housing.DeleteUniversite).Methods(http.MethodDelete)
	api.HandleFunc("/universites/{universiteId}/foyer", h.housing.CreateFoyerForUniversite).Methods(http.MethodPost)
	api.HandleFunc("/universites/{universiteId}/foyer", h.housing.UnassignFoyer).Methods(http.MethodDelete)
	api.HandleFunc("/universites/{universiteId}/foyer/{foyerId}", h.housing.AssignFoyer).Methods(http.MethodPut)

	// --- Фойе ---
	// Свободные комнаты зависят от бронирований и не кэшируются
	get("/foyers/{foyerName}/available-rooms", h.getAvailableRooms.Handle)
	api.HandleFunc("/foyers", h.housing.CreateFoyer).Methods(http.MethodPost)
	getCached("/foyers", h.housing.ListFoyers)
	api.HandleFunc("/foyers/by-name/{foyerName}/blocs", h.housing.CreateBlocInFoyer).Methods(http.MethodPost)
	getCached("/foyers/{foyerId:[0-9]+}", h.housing.GetFoyer)
	api.HandleFunc("/foyers/{foyerId:[0-9]+}", h.housing.UpdateFoyer).Methods(http.MethodPut)
	api.HandleFunc("/foyers/{foyerId:[0-9]+}", h.housing.DeleteFoyer).Methods(http.MethodDelete)

	// --- Блоки ---
	api.HandleFunc("/blocs", h.housing.CreateBloc).Methods(http.MethodPost)
	getCached("/blocs", h.housing.ListBlocs)
	get("/blocs/by-name/{blocName}/chambres", h.chambres.ListByBlocName)
	api.HandleFunc("/blocs/by-name/{blocName}/chambres", h.housing.AssignChambres).Methods(http.MethodPut)
	api.HandleFunc("/blocs/by-name/{blocName}/foyer/{foyerName}", h.housing.AssignToFoyer).Methods(http.MethodPut)
	getCached("/blocs/{blocId}", h.housing.GetBloc)
	api.HandleFunc("/blocs/{blocId}", h.housing.UpdateBloc).Methods(http.MethodPut)
	api.HandleFunc("/blocs/{blocId}", h.housing.DeleteBloc).Methods(http.MethodDelete)
}
