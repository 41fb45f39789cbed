package invalidate_reservations

import "time"

// Response итог закрытия учебного года
type Response struct {
	WindowStart    time.Time
	WindowEnd      time.Time
	Invalidated    int      // сколько бронирований закрыто этим запуском
	ReservationIDs []string // закрытые бронирования
}
