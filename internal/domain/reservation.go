package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation бронирование места в комнате на учебный год
type Reservation struct {
	ID                 string
	AnneeUniversitaire time.Time // дата начала учебного года, к которому относится бронирование
	EstValide          bool
}

// NewReservation создает действующее бронирование на учебный год, начинающийся в yearStart
func NewReservation(yearStart time.Time) *Reservation {
	return &Reservation{
		ID:                 uuid.NewString(),
		AnneeUniversitaire: yearStart,
		EstValide:          true,
	}
}

// Invalidate закрывает бронирование по окончании учебного года
// Возвращает false, если бронирование уже было недействительным
func (r *Reservation) Invalidate() bool {
	if !r.EstValide {
		return false
	}
	r.EstValide = false
	return true
}
