package domain

// Bloc корпус (крыло) фойе
type Bloc struct {
	ID       int64
	Nom      string
	Capacite int64
	FoyerID  *int64
	Chambres []*Chambre
}

// ChambreList возвращает комнаты блока, создавая пустой список при необходимости
func (b *Bloc) ChambreList() []*Chambre {
	if b.Chambres == nil {
		b.Chambres = make([]*Chambre, 0)
	}
	return b.Chambres
}
