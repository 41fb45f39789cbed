package allocate_reservation

import "time"

// Request модель запроса на бронирование места в комнате
type Request struct {
	NumeroChambre int64 // номер комнаты
	Cin           int64 // национальный идентификатор студента
}

// Response модель ответа с созданным бронированием
type Response struct {
	ReservationID      string    // идентификатор бронирования
	AnneeUniversitaire time.Time // начало учебного года
	EstValide          bool

	ChambreID     int64
	NumeroChambre int64
	TypeChambre   string
	EtudiantID    int64

	Occupied int // занятость комнаты с учетом нового бронирования
	Capacity int // вместимость комнаты по её типу
}
