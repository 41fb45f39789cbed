package get_available_rooms

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableRooms "github.com/m04kA/SMC-DormService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-DormService/pkg/logger"
)

type fakeUseCase struct {
	req *getAvailableRooms.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableRooms.Request) (*getAvailableRooms.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableRooms.Response{
		FoyerName:   req.FoyerName,
		TypeChambre: "DOUBLE",
		YearStart:   time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC),
		YearEnd:     time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
		Rooms: []getAvailableRooms.Room{
			{ChambreID: 1, Numero: 101, Occupied: 1, AvailablePlaces: 1, TotalPlaces: 2},
		},
	}, nil
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, "info"))
	r := mux.NewRouter()
	r.HandleFunc("/foyers/{foyerName}/available-rooms", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, "/foyers/Foyer%20Nord/available-rooms?type=double")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Foyer Nord", uc.req.FoyerName)
	assert.Equal(t, "double", uc.req.TypeChambre)

	var body AvailableRoomsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-09-15", body.YearStart)
	assert.Equal(t, "2025-06-30", body.YearEnd)
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, 1, body.Rooms[0].AvailablePlaces)
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/foyers/F1/available-rooms").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(&fakeUseCase{err: getAvailableRooms.ErrInvalidRoomType}, "/foyers/F1/available-rooms?type=QUAD").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&fakeUseCase{err: getAvailableRooms.ErrInternal}, "/foyers/F1/available-rooms?type=SIMPLE").Code)
}
