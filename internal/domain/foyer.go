package domain

// Foyer общежитие (резиденция), принадлежащее университету
type Foyer struct {
	ID           int64
	Nom          string
	Capacite     int64
	UniversiteID *int64 // NULL = фойе не привязано к университету
	Blocs        []*Bloc
}

// BlocList возвращает блоки фойе, создавая пустой список при необходимости
func (f *Foyer) BlocList() []*Bloc {
	if f.Blocs == nil {
		f.Blocs = make([]*Bloc, 0)
	}
	return f.Blocs
}
