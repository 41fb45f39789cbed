package allocate_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	allocateReservation "github.com/m04kA/SMC-DormService/internal/usecase/allocate_reservation"
	"github.com/m04kA/SMC-DormService/pkg/logger"
)

type fakeUseCase struct {
	req  *allocateReservation.Request
	resp *allocateReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *allocateReservation.Request) (*allocateReservation.Response, error) {
	f.req = req
	return f.resp, f.err
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/allocate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &allocateReservation.Response{
		ReservationID:      "101-ENIT-2024",
		AnneeUniversitaire: time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC),
		EstValide:          true,
		ChambreID:          7,
		NumeroChambre:      101,
		TypeChambre:        "DOUBLE",
		EtudiantID:         3,
		Occupied:           1,
		Capacity:           2,
	}}
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, "info"))

	rec := doRequest(h, `{"numeroChambre":101,"cin":12345678}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, &allocateReservation.Request{NumeroChambre: 101, Cin: 12345678}, uc.req)

	var body ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "101-ENIT-2024", body.ReservationID)
	assert.Equal(t, "2024-09-15", body.AnneeUniversitaire)
	assert.Equal(t, "DOUBLE", body.TypeChambre)
	assert.Equal(t, 1, body.Occupied)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed json", body: `{"numeroChambre":`, wantStatus: http.StatusBadRequest},
		{name: "missing cin", body: `{"numeroChambre":101}`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"numeroChambre":101,"cin":1,"x":1}`, wantStatus: http.StatusBadRequest},
		{name: "room not found", body: `{"numeroChambre":101,"cin":1}`, err: allocateReservation.ErrRoomNotFound, wantStatus: http.StatusNotFound},
		{name: "student not found", body: `{"numeroChambre":101,"cin":1}`, err: allocateReservation.ErrStudentNotFound, wantStatus: http.StatusNotFound},
		{name: "room full", body: `{"numeroChambre":101,"cin":1}`, err: allocateReservation.ErrRoomFull, wantStatus: http.StatusConflict},
		{name: "internal", body: `{"numeroChambre":101,"cin":1}`, err: fmt.Errorf("%w: boom", allocateReservation.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewWithWriter(io.Discard, "info"))

			rec := doRequest(h, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
		})
	}
}
