package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomType_Capacity(t *testing.T) {
	assert.Equal(t, 1, RoomTypeSimple.Capacity())
	assert.Equal(t, 2, RoomTypeDouble.Capacity())
	assert.Equal(t, 3, RoomTypeTriple.Capacity())
	assert.Equal(t, 0, RoomType("SUITE").Capacity())
	assert.Equal(t, 0, RoomType("").Capacity())
}

func TestParseRoomType(t *testing.T) {
	rt, ok := ParseRoomType(" double ")
	assert.True(t, ok)
	assert.Equal(t, RoomTypeDouble, rt)

	_, ok = ParseRoomType("quadruple")
	assert.False(t, ok)
}

func TestChambre_AttachReservation(t *testing.T) {
	t.Run("nil collection is treated as empty", func(t *testing.T) {
		c := &Chambre{Type: RoomTypeSimple, Reservations: nil}
		require.NoError(t, c.AttachReservation(&Reservation{ID: "r1"}, nil))
		assert.Len(t, c.Reservations, 1)
	})

	t.Run("guard rejects full room without mutation", func(t *testing.T) {
		c := &Chambre{Type: RoomTypeSimple, Reservations: []*Reservation{{ID: "r1"}}}
		occupancy := 1
		err := c.AttachReservation(&Reservation{ID: "r2"}, &occupancy)
		assert.ErrorIs(t, err, ErrRoomFull)
		assert.Len(t, c.Reservations, 1)
	})

	t.Run("guard accepts while places remain", func(t *testing.T) {
		c := &Chambre{Type: RoomTypeDouble}
		occupancy := 1
		require.NoError(t, c.AttachReservation(&Reservation{ID: "r2"}, &occupancy))
		assert.True(t, c.HasReservation("r2"))
	})

	t.Run("unknown type is always full", func(t *testing.T) {
		c := &Chambre{Type: RoomType("SUITE")}
		occupancy := 0
		assert.ErrorIs(t, c.AttachReservation(&Reservation{ID: "r1"}, &occupancy), ErrRoomFull)
	})

	t.Run("without guard capacity is ignored", func(t *testing.T) {
		c := &Chambre{Type: RoomTypeSimple, Reservations: []*Reservation{{ID: "r1"}}}
		require.NoError(t, c.AttachReservation(&Reservation{ID: "r2"}, nil))
		assert.Len(t, c.Reservations, 2)
	})

	t.Run("attaching twice keeps one link", func(t *testing.T) {
		c := &Chambre{Type: RoomTypeTriple}
		r := &Reservation{ID: "r1"}
		require.NoError(t, c.AttachReservation(r, nil))
		require.NoError(t, c.AttachReservation(r, nil))
		assert.Len(t, c.Reservations, 1)
	})
}

func TestChambre_DetachReservation(t *testing.T) {
	c := &Chambre{Reservations: []*Reservation{{ID: "r1"}, {ID: "r2"}}}

	assert.True(t, c.DetachReservation("r1"))
	assert.False(t, c.HasReservation("r1"))
	assert.False(t, c.DetachReservation("absent"))
	assert.Len(t, c.Reservations, 1)

	empty := &Chambre{}
	assert.False(t, empty.DetachReservation("r1"))
	assert.NotNil(t, empty.Reservations)
}

func TestRoomAvailability(t *testing.T) {
	a := NewRoomAvailability(&Chambre{Type: RoomTypeTriple}, 2)
	assert.Equal(t, 1, a.AvailablePlaces)
	assert.False(t, a.IsFull())
	assert.Equal(t, 3, a.TotalPlaces)

	over := NewRoomAvailability(&Chambre{Type: RoomTypeSimple}, 3)
	assert.Equal(t, 0, over.AvailablePlaces)
	assert.True(t, over.IsFull())
}

func TestChambre_OccupancyIn(t *testing.T) {
	year := AcademicYearWindow(date(2024, 10, 1))
	c := &Chambre{
		Type: RoomTypeTriple,
		Reservations: []*Reservation{
			{ID: "in", AnneeUniversitaire: date(2024, 9, 15), EstValide: true},
			{ID: "end", AnneeUniversitaire: date(2025, 6, 30), EstValide: true},
			{ID: "invalid", AnneeUniversitaire: date(2024, 9, 15), EstValide: false},
			{ID: "previous", AnneeUniversitaire: date(2023, 9, 15), EstValide: true},
			nil,
		},
	}

	assert.Equal(t, 2, c.OccupancyIn(year))
}
