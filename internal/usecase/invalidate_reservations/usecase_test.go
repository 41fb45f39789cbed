package invalidate_reservations

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

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUseCase_Execute(t *testing.T) {
	store := memstore.New()
	chambreID := store.AddChambre(101, domain.RoomTypeTriple, nil)
	store.AddReservation(domain.Reservation{ID: "RES-1", AnneeUniversitaire: date(2024, time.September, 15), EstValide: true}, chambreID, 0)
	store.AddReservation(domain.Reservation{ID: "RES-2", AnneeUniversitaire: date(2025, time.June, 30), EstValide: true}, chambreID, 0)
	store.AddReservation(domain.Reservation{ID: "RES-PREV", AnneeUniversitaire: date(2023, time.September, 15), EstValide: true}, 0, 0)
	store.AddReservation(domain.Reservation{ID: "RES-DONE", AnneeUniversitaire: date(2024, time.September, 15), EstValide: false}, 0, 0)

	m := metrics.NewWithRegistry("dorm-test", prometheus.NewRegistry())
	uc := NewUseCase(store.Reservations, store.TxManager, m, logger.NewWithWriter(io.Discard, "info")).
		WithTimeProvider(fixedClock(date(2025, time.June, 1)))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.September, 15), resp.WindowStart)
	assert.Equal(t, date(2025, time.June, 30), resp.WindowEnd)
	assert.Equal(t, 2, resp.Invalidated)
	assert.ElementsMatch(t, []string{"RES-1", "RES-2"}, resp.ReservationIDs)

	for _, id := range []string{"RES-1", "RES-2"} {
		r, ok := store.Reservation(id)
		require.True(t, ok)
		assert.False(t, r.EstValide, id)
	}
	prev, _ := store.Reservation("RES-PREV")
	assert.True(t, prev.EstValide)

	// Комнаты не отвязываются
	assert.Len(t, store.ChambreReservationIDs(chambreID), 2)

	// Повторный запуск ничего не закрывает
	resp, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Invalidated)
	assert.Empty(t, resp.ReservationIDs)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsInvalidated))
}

func TestUseCase_Execute_EmptyStore(t *testing.T) {
	store := memstore.New()
	uc := NewUseCase(store.Reservations, store.TxManager, nil, logger.NewWithWriter(io.Discard, "info"))

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Invalidated)
}

func TestUseCase_Execute_StoreFailure(t *testing.T) {
	store := memstore.New()
	store.FailWith(errors.New("connection reset"))
	uc := NewUseCase(store.Reservations, store.TxManager, nil, logger.NewWithWriter(io.Discard, "info"))

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
