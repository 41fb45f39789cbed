package get_available_rooms

import "time"

// Request модель запроса свободных комнат фойе
type Request struct {
	FoyerName   string // название фойе
	TypeChambre string // SIMPLE, DOUBLE или TRIPLE (без учета регистра)
}

// Response модель ответа со списком комнат, где остались места
type Response struct {
	FoyerName   string
	TypeChambre string
	YearStart   time.Time // начало учебного года, по которому считалась занятость
	YearEnd     time.Time
	Rooms       []Room
}

// Room свободные места комнаты
type Room struct {
	ChambreID       int64
	Numero          int64
	BlocID          *int64
	Occupied        int // действующие бронирования в учебном году
	AvailablePlaces int // сколько ещё студентов можно поселить
	TotalPlaces     int // вместимость по типу комнаты
}
