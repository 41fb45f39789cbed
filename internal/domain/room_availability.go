package domain

// RoomAvailability занятость комнаты в текущем учебном году
type RoomAvailability struct {
	Chambre         *Chambre
	Occupied        int // действующие бронирования в окне учебного года
	AvailablePlaces int
	TotalPlaces     int
}

// NewRoomAvailability вычисляет свободные места комнаты по её типу и занятости
func NewRoomAvailability(c *Chambre, occupied int) RoomAvailability {
	total := c.Type.Capacity()
	available := total - occupied
	if available < 0 {
		available = 0
	}
	return RoomAvailability{
		Chambre:         c,
		Occupied:        occupied,
		AvailablePlaces: available,
		TotalPlaces:     total,
	}
}

// IsFull сообщает, что свободных мест не осталось
func (a *RoomAvailability) IsFull() bool {
	return a.AvailablePlaces <= 0
}
