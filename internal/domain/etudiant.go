package domain

import "time"

// Etudiant студент
type Etudiant struct {
	ID            int64
	Nom           string
	Prenom        string
	Cin           int64 // национальный идентификатор, уникален
	Ecole         string
	DateNaissance time.Time
	Reservations  []*Reservation
}

// ReservationList возвращает список бронирований студента, создавая пустой при необходимости
func (e *Etudiant) ReservationList() []*Reservation {
	if e.Reservations == nil {
		e.Reservations = make([]*Reservation, 0)
	}
	return e.Reservations
}

// AttachReservation привязывает бронирование к студенту (идемпотентно)
func (e *Etudiant) AttachReservation(r *Reservation) {
	for _, existing := range e.ReservationList() {
		if existing != nil && existing.ID == r.ID {
			return
		}
	}
	e.Reservations = append(e.Reservations, r)
}

// DetachReservation отвязывает бронирование от студента
// Возвращает false, если бронирование не было привязано
func (e *Etudiant) DetachReservation(reservationID string) bool {
	list := e.ReservationList()
	for i, r := range list {
		if r != nil && r.ID == reservationID {
			e.Reservations = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}
