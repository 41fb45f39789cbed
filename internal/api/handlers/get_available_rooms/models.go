package get_available_rooms

import (
	"github.com/m04kA/SMC-DormService/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-DormService/internal/usecase/get_available_rooms"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	FoyerName   string         `json:"nomFoyer"`
	TypeChambre string         `json:"typeC"`
	YearStart   string         `json:"yearStart"` // "2024-09-15"
	YearEnd     string         `json:"yearEnd"`   // "2025-06-30"
	Rooms       []RoomResponse `json:"rooms"`
}

// RoomResponse комната со свободными местами
type RoomResponse struct {
	ChambreID       int64  `json:"idChambre"`
	Numero          int64  `json:"numeroChambre"`
	BlocID          *int64 `json:"idBloc,omitempty"`
	Occupied        int    `json:"occupied"`
	AvailablePlaces int    `json:"availablePlaces"`
	TotalPlaces     int    `json:"totalPlaces"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]RoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, RoomResponse{
			ChambreID:       room.ChambreID,
			Numero:          room.Numero,
			BlocID:          room.BlocID,
			Occupied:        room.Occupied,
			AvailablePlaces: room.AvailablePlaces,
			TotalPlaces:     room.TotalPlaces,
		})
	}

	return &AvailableRoomsResponse{
		FoyerName:   resp.FoyerName,
		TypeChambre: resp.TypeChambre,
		YearStart:   resp.YearStart.Format(handlers.DateLayout),
		YearEnd:     resp.YearEnd.Format(handlers.DateLayout),
		Rooms:       rooms,
	}
}
