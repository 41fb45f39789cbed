package cancel_reservation

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DormService/internal/domain"
	"github.com/m04kA/SMC-DormService/internal/testutil/memstore"
	"github.com/m04kA/SMC-DormService/pkg/logger"
	"github.com/m04kA/SMC-DormService/pkg/metrics"
)

var yearStart = time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)

func newUseCase(store *memstore.Store, m Metrics) *UseCase {
	return NewUseCase(store.Reservations, store.Chambres, store.TxManager, m, logger.NewWithWriter(io.Discard, "info"))
}

func TestUseCase_Execute(t *testing.T) {
	store := memstore.New()
	chambreID := store.AddChambre(101, domain.RoomTypeDouble, nil)
	other := store.AddEtudiant("B", "B", 2)
	etudiantID := store.AddEtudiant("A", "A", 1)
	store.AddReservation(domain.Reservation{ID: "RES-1", AnneeUniversitaire: yearStart, EstValide: true}, chambreID, etudiantID)
	store.AddReservation(domain.Reservation{ID: "RES-2", AnneeUniversitaire: yearStart, EstValide: true}, chambreID, other)

	m := metrics.NewWithRegistry("dorm-test", prometheus.NewRegistry())
	uc := newUseCase(store, m)

	resp, err := uc.Execute(context.Background(), &Request{Cin: 1})

	require.NoError(t, err)
	assert.Equal(t, "RES-1", resp.ReservationID)
	assert.Equal(t, "Бронирование RES-1 успешно отменено", resp.Message)
	require.NotNil(t, resp.ChambreID)
	assert.Equal(t, chambreID, *resp.ChambreID)

	_, exists := store.Reservation("RES-1")
	assert.False(t, exists)
	assert.Equal(t, []string{"RES-2"}, store.ChambreReservationIDs(chambreID))
	assert.Empty(t, store.EtudiantReservationIDs(etudiantID))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationCancellations))

	// Повторная отмена ничего не меняет
	_, err = uc.Execute(context.Background(), &Request{Cin: 1})
	assert.ErrorIs(t, err, ErrNoActiveReservation)
	assert.Equal(t, []string{"RES-2"}, store.ChambreReservationIDs(chambreID))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationCancellations))
}

func TestUseCase_Execute_PicksLatestValidReservation(t *testing.T) {
	store := memstore.New()
	chambreA := store.AddChambre(101, domain.RoomTypeSimple, nil)
	chambreB := store.AddChambre(102, domain.RoomTypeSimple, nil)
	etudiantID := store.AddEtudiant("A", "A", 1)
	store.AddReservation(domain.Reservation{
		ID:                 "RES-OLD",
		AnneeUniversitaire: time.Date(2023, time.September, 15, 0, 0, 0, 0, time.UTC),
		EstValide:          true,
	}, chambreA, etudiantID)
	store.AddReservation(domain.Reservation{ID: "RES-NEW", AnneeUniversitaire: yearStart, EstValide: true}, chambreB, etudiantID)

	resp, err := newUseCase(store, nil).Execute(context.Background(), &Request{Cin: 1})

	require.NoError(t, err)
	assert.Equal(t, "RES-NEW", resp.ReservationID)
	assert.Equal(t, []string{"RES-OLD"}, store.ChambreReservationIDs(chambreA))
	assert.Empty(t, store.ChambreReservationIDs(chambreB))
}

func TestUseCase_Execute_IgnoresInvalidReservations(t *testing.T) {
	store := memstore.New()
	chambreID := store.AddChambre(101, domain.RoomTypeSimple, nil)
	etudiantID := store.AddEtudiant("A", "A", 1)
	store.AddReservation(domain.Reservation{ID: "RES-1", AnneeUniversitaire: yearStart, EstValide: false}, chambreID, etudiantID)

	_, err := newUseCase(store, nil).Execute(context.Background(), &Request{Cin: 1})

	assert.ErrorIs(t, err, ErrNoActiveReservation)
	assert.Equal(t, []string{"RES-1"}, store.ChambreReservationIDs(chambreID))
}

func TestUseCase_Execute_ReservationWithoutRoom(t *testing.T) {
	store := memstore.New()
	etudiantID := store.AddEtudiant("A", "A", 1)
	store.AddReservation(domain.Reservation{ID: "RES-1", AnneeUniversitaire: yearStart, EstValide: true}, 0, etudiantID)

	resp, err := newUseCase(store, nil).Execute(context.Background(), &Request{Cin: 1})

	require.NoError(t, err)
	assert.Nil(t, resp.ChambreID)
	assert.Equal(t, 0, store.ReservationCount())
}

func TestUseCase_Execute_Errors(t *testing.T) {
	store := memstore.New()
	uc := newUseCase(store, nil)

	_, err := uc.Execute(context.Background(), &Request{Cin: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	store.FailWith(errors.New("connection reset"))
	_, err = uc.Execute(context.Background(), &Request{Cin: 1})
	assert.ErrorIs(t, err, ErrInternal)
}
