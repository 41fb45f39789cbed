package cancel_reservation

// Request модель запроса на отмену бронирования студентом
type Request struct {
	Cin int64 // национальный идентификатор студента
}

// Response подтверждение отмены
type Response struct {
	ReservationID string
	ChambreID     *int64 // комната, от которой отвязано бронирование (nil, если связи не было)
	Message       string
}
