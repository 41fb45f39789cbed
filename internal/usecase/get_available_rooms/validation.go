package get_available_rooms

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DormService/internal/domain"
)

// validateRequest валидирует входные данные и возвращает тип комнаты
func validateRequest(req *Request) (domain.RoomType, error) {
	if strings.TrimSpace(req.FoyerName) == "" {
		return "", fmt.Errorf("%w: foyerName is required", ErrInvalidInput)
	}

	roomType, ok := domain.ParseRoomType(req.TypeChambre)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidRoomType, req.TypeChambre)
	}

	return roomType, nil
}

// calculateAvailableRooms оставляет комнаты, где есть свободные места в учебном году
func calculateAvailableRooms(chambres []*domain.Chambre, year domain.AcademicYear) []Room {
	rooms := make([]Room, 0, len(chambres))

	for _, chambre := range chambres {
		availability := domain.NewRoomAvailability(chambre, chambre.OccupancyIn(year))
		if availability.IsFull() {
			continue
		}

		rooms = append(rooms, Room{
			ChambreID:       chambre.ID,
			Numero:          chambre.Numero,
			BlocID:          chambre.BlocID,
			Occupied:        availability.Occupied,
			AvailablePlaces: availability.AvailablePlaces,
			TotalPlaces:     availability.TotalPlaces,
		})
	}

	return rooms
}
