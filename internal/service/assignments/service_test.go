package assignments

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DormService/internal/domain"
	"github.com/m04kA/SMC-DormService/internal/testutil/memstore"
	"github.com/m04kA/SMC-DormService/pkg/logger"
)

var yearStart = time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)

func newService(store *memstore.Store) *Service {
	return NewService(store.Reservations, store.Chambres, store.Etudiants, store.TxManager, logger.NewWithWriter(io.Discard, "info"))
}

func reservation(id string) domain.Reservation {
	return domain.Reservation{ID: id, AnneeUniversitaire: yearStart, EstValide: true}
}

func TestService_AttachReservationToRoom(t *testing.T) {
	store := memstore.New()
	chambreID := store.AddChambre(101, domain.RoomTypeSimple, nil)
	store.AddReservation(reservation("RES-1"), chambreID, 0)
	store.AddReservation(reservation("RES-2"), 0, 0)
	svc := newService(store)

	// Вместимость не проверяется: SIMPLE с одним жильцом принимает вторую привязку
	resp, err := svc.AttachReservationToRoom(context.Background(), "RES-2", chambreID)

	require.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Equal(t, int64(101), resp.NumeroChambre)
	assert.Len(t, resp.Reservations, 2)
	assert.Equal(t, []string{"RES-1", "RES-2"}, store.ChambreReservationIDs(chambreID))

	// Повторная привязка ничего не меняет
	resp, err = svc.AttachReservationToRoom(context.Background(), "RES-2", chambreID)
	require.NoError(t, err)
	assert.False(t, resp.Changed)
	assert.Equal(t, []string{"RES-1", "RES-2"}, store.ChambreReservationIDs(chambreID))
}

func TestService_AttachReservationToRoom_LinkedElsewhere(t *testing.T) {
	store := memstore.New()
	first := store.AddChambre(101, domain.RoomTypeDouble, nil)
	second := store.AddChambre(102, domain.RoomTypeDouble, nil)
	store.AddReservation(reservation("RES-1"), first, 0)
	svc := newService(store)

	_, err := svc.AttachReservationToRoom(context.Background(), "RES-1", second)

	assert.ErrorIs(t, err, ErrReservationLinkedElsewhere)
	assert.Equal(t, []string{"RES-1"}, store.ChambreReservationIDs(first))
	assert.Empty(t, store.ChambreReservationIDs(second))
}

func TestService_AttachReservationToRoom_NotFound(t *testing.T) {
	store := memstore.New()
	chambreID := store.AddChambre(101, domain.RoomTypeDouble, nil)
	store.AddReservation(reservation("RES-1"), 0, 0)
	svc := newService(store)

	tests := []struct {
		name          string
		reservationID string
		chambreID     int64
		wantErr       error
	}{
		{name: "unknown reservation", reservationID: "RES-X", chambreID: chambreID, wantErr: ErrReservationNotFound},
		{name: "unknown chambre", reservationID: "RES-1", chambreID: 999, wantErr: ErrChambreNotFound},
		{name: "empty reservation id", reservationID: " ", chambreID: chambreID, wantErr: ErrInvalidInput},
		{name: "zero chambre id", reservationID: "RES-1", chambreID: 0, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.AttachReservationToRoom(context.Background(), tt.reservationID, tt.chambreID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
			assert.Empty(t, store.ChambreReservationIDs(chambreID))
		})
	}
}

func TestService_DetachReservationFromRoom(t *testing.T) {
	store := memstore.New()
	chambreID := store.AddChambre(101, domain.RoomTypeDouble, nil)
	store.AddReservation(reservation("RES-1"), chambreID, 0)
	store.AddReservation(reservation("RES-2"), chambreID, 0)
	svc := newService(store)

	resp, err := svc.DetachReservationFromRoom(context.Background(), "RES-1", chambreID)
	require.NoError(t, err)
	assert.True(t, resp.Changed)
	assert.Equal(t, []string{"RES-2"}, store.ChambreReservationIDs(chambreID))

	// Бронирование само не удаляется
	_, exists := store.Reservation("RES-1")
	assert.True(t, exists)

	// Отвязка отсутствующей связи ничего не меняет
	resp, err = svc.DetachReservationFromRoom(context.Background(), "RES-1", chambreID)
	require.NoError(t, err)
	assert.False(t, resp.Changed)
	assert.Equal(t, []string{"RES-2"}, store.ChambreReservationIDs(chambreID))
}

func TestService_AttachReservationToStudent(t *testing.T) {
	store := memstore.New()
	etudiantID := store.AddEtudiant("Ben Ali", "Sami", 12345678)
	store.AddReservation(reservation("RES-1"), 0, 0)
	svc := newService(store)

	resp, err := svc.AttachReservationToStudent(context.Background(), "RES-1", "Ben Ali", "Sami")

	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.True(t, resp.Changed)
	require.NotNil(t, resp.EtudiantID)
	assert.Equal(t, etudiantID, *resp.EtudiantID)
	assert.Equal(t, []string{"RES-1"}, store.EtudiantReservationIDs(etudiantID))

	resp, err = svc.AttachReservationToStudent(context.Background(), "RES-1", "Ben Ali", "Sami")
	require.NoError(t, err)
	assert.False(t, resp.Changed)
	assert.Equal(t, []string{"RES-1"}, store.EtudiantReservationIDs(etudiantID))
}

func TestService_StudentLink_UnknownStudent(t *testing.T) {
	store := memstore.New()
	store.AddReservation(reservation("RES-1"), 0, 0)
	svc := newService(store)

	resp, err := svc.AttachReservationToStudent(context.Background(), "RES-1", "Nobody", "Here")
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.False(t, resp.Changed)
	assert.Nil(t, resp.EtudiantID)

	resp, err = svc.DetachReservationFromStudent(context.Background(), "RES-1", "Nobody", "Here")
	require.NoError(t, err)
	assert.False(t, resp.Found)
}

func TestService_StudentLink_UnknownReservation(t *testing.T) {
	store := memstore.New()
	store.AddEtudiant("Ben Ali", "Sami", 12345678)
	svc := newService(store)

	_, err := svc.AttachReservationToStudent(context.Background(), "RES-X", "Ben Ali", "Sami")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.DetachReservationFromStudent(context.Background(), "RES-X", "Ben Ali", "Sami")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_DetachReservationFromStudent(t *testing.T) {
	store := memstore.New()
	etudiantID := store.AddEtudiant("Ben Ali", "Sami", 12345678)
	store.AddReservation(reservation("RES-1"), 0, etudiantID)
	store.AddReservation(reservation("RES-2"), 0, etudiantID)
	svc := newService(store)

	resp, err := svc.DetachReservationFromStudent(context.Background(), "RES-1", "Ben Ali", "Sami")

	require.NoError(t, err)
	assert.True(t, resp.Changed)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "RES-2", resp.Reservations[0].ID)
	assert.Equal(t, []string{"RES-2"}, store.EtudiantReservationIDs(etudiantID))
}

func TestService_StoreFailure(t *testing.T) {
	store := memstore.New()
	chambreID := store.AddChambre(101, domain.RoomTypeDouble, nil)
	store.AddReservation(reservation("RES-1"), 0, 0)
	store.FailWith(errors.New("connection reset"))
	svc := newService(store)

	_, err := svc.AttachReservationToRoom(context.Background(), "RES-1", chambreID)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.AttachReservationToStudent(context.Background(), "RES-1", "A", "B")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestErrors_PackagePrefix(t *testing.T) {
	for _, err := range []error{
		ErrReservationNotFound,
		ErrChambreNotFound,
		ErrReservationLinkedElsewhere,
		ErrInvalidInput,
		ErrInternal,
	} {
		assert.True(t, strings.HasPrefix(err.Error(), "assignments: "), err.Error())
	}
}
