package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEtudiant_Reservations(t *testing.T) {
	e := &Etudiant{Nom: "Doe", Prenom: "John", Reservations: nil}
	r := &Reservation{ID: "RES001"}

	e.AttachReservation(r)
	e.AttachReservation(r)
	assert.Len(t, e.Reservations, 1)

	assert.True(t, e.DetachReservation("RES001"))
	assert.False(t, e.DetachReservation("RES001"))
	assert.Empty(t, e.Reservations)
}

func TestNewReservation(t *testing.T) {
	start := time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)

	a := NewReservation(start)
	b := NewReservation(start)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.EstValide)
	assert.Equal(t, start, a.AnneeUniversitaire)

	assert.True(t, a.Invalidate())
	assert.False(t, a.Invalidate())
}
