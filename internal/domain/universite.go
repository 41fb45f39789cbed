package domain

// Universite университет; владеет не более чем одним фойе
type Universite struct {
	ID      int64
	Nom     string
	Adresse string
	Foyer   *Foyer
}

// HasFoyer возвращает true, если к университету привязано фойе
func (u *Universite) HasFoyer() bool {
	return u.Foyer != nil
}
