package domain

import "strings"

// RoomType тип комнаты, определяющий её вместимость
type RoomType string

const (
	RoomTypeSimple RoomType = "SIMPLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeTriple RoomType = "TRIPLE"
)

// RoomTypes все известные типы комнат
var RoomTypes = []RoomType{RoomTypeSimple, RoomTypeDouble, RoomTypeTriple}

// Capacity максимальное число одновременно проживающих
// Для неизвестного типа возвращает 0: такая комната всегда считается заполненной
func (t RoomType) Capacity() int {
	switch t {
	case RoomTypeSimple:
		return 1
	case RoomTypeDouble:
		return 2
	case RoomTypeTriple:
		return 3
	default:
		return 0
	}
}

// IsKnown возвращает true для одного из трёх фиксированных типов
func (t RoomType) IsKnown() bool {
	return t.Capacity() > 0
}

// ParseRoomType разбирает тип комнаты без учета регистра
func ParseRoomType(s string) (RoomType, bool) {
	t := RoomType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsKnown()
}

// Chambre комната в блоке общежития
type Chambre struct {
	ID           int64
	Numero       int64
	Type         RoomType
	BlocID       *int64
	Reservations []*Reservation
}

// ReservationList возвращает список бронирований комнаты, создавая пустой при необходимости
func (c *Chambre) ReservationList() []*Reservation {
	if c.Reservations == nil {
		c.Reservations = make([]*Reservation, 0)
	}
	return c.Reservations
}

// HasReservation проверяет, привязано ли бронирование к комнате
func (c *Chambre) HasReservation(reservationID string) bool {
	for _, r := range c.Reservations {
		if r != nil && r.ID == reservationID {
			return true
		}
	}
	return false
}

// HasFreePlace сообщает, может ли комната принять ещё одного жильца при текущей занятости
func (c *Chambre) HasFreePlace(occupancy int) bool {
	return occupancy < c.Type.Capacity()
}

// AttachReservation привязывает бронирование к комнате.
// Если occupancy != nil, привязка выполняется только при наличии свободного места,
// иначе возвращается ErrRoomFull. Повторная привязка того же бронирования ничего не меняет.
func (c *Chambre) AttachReservation(r *Reservation, occupancy *int) error {
	if occupancy != nil && !c.HasFreePlace(*occupancy) {
		return ErrRoomFull
	}
	if c.HasReservation(r.ID) {
		return nil
	}
	c.Reservations = append(c.ReservationList(), r)
	return nil
}

// DetachReservation отвязывает бронирование от комнаты
// Возвращает false, если бронирование не было привязано
func (c *Chambre) DetachReservation(reservationID string) bool {
	list := c.ReservationList()
	for i, r := range list {
		if r != nil && r.ID == reservationID {
			c.Reservations = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// OccupancyIn считает загруженные действующие бронирования комнаты, дата которых попадает в учебный год
func (c *Chambre) OccupancyIn(year AcademicYear) int {
	count := 0
	for _, r := range c.Reservations {
		if r != nil && r.EstValide && year.Contains(r.AnneeUniversitaire) {
			count++
		}
	}
	return count
}
