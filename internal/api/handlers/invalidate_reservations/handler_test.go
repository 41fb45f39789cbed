package invalidate_reservations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invalidateReservations "github.com/m04kA/SMC-DormService/internal/usecase/invalidate_reservations"
	"github.com/m04kA/SMC-DormService/pkg/logger"
)

type fakeUseCase struct {
	resp *invalidateReservations.Response
	err  error
}

func (f *fakeUseCase) Execute(context.Context) (*invalidateReservations.Response, error) {
	return f.resp, f.err
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{resp: &invalidateReservations.Response{
		WindowStart: time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, "info"))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations/invalidate-expired", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body InvalidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Invalidated)
	assert.NotNil(t, body.ReservationIDs)
	assert.Equal(t, "2024-09-15", body.WindowStart)
}

func TestHandler_Handle_Error(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: invalidateReservations.ErrInternal}, logger.NewWithWriter(io.Discard, "info"))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/reservations/invalidate-expired", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
