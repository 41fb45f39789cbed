package housing

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-DormService/internal/domain"
	blocRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/bloc"
	chambreRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/chambre"
	foyerRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/foyer"
	universiteRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/universite"
)

// fakeDB таблицы жилого фонда в памяти; связи хранятся внешними ключами, как в PostgreSQL
type fakeDB struct {
	nextID      int64
	universites map[int64]domain.Universite
	foyers      map[int64]domain.Foyer
	blocs       map[int64]domain.Bloc
	chambres    map[int64]domain.Chambre
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		universites: make(map[int64]domain.Universite),
		foyers:      make(map[int64]domain.Foyer),
		blocs:       make(map[int64]domain.Bloc),
		chambres:    make(map[int64]domain.Chambre),
	}
}

func (db *fakeDB) id() int64 {
	db.nextID++
	return db.nextID
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (db *fakeDB) blocWithChambres(id int64) *domain.Bloc {
	b := db.blocs[id]
	b.Chambres = make([]*domain.Chambre, 0)
	for _, cid := range sortedIDs(db.chambres) {
		c := db.chambres[cid]
		if c.BlocID != nil && *c.BlocID == id {
			b.Chambres = append(b.Chambres, &c)
		}
	}
	return &b
}

func (db *fakeDB) foyerWithBlocs(id int64) *domain.Foyer {
	f := db.foyers[id]
	f.Blocs = make([]*domain.Bloc, 0)
	for _, bid := range sortedIDs(db.blocs) {
		b := db.blocs[bid]
		if b.FoyerID != nil && *b.FoyerID == id {
			b.Chambres = make([]*domain.Chambre, 0)
			f.Blocs = append(f.Blocs, &b)
		}
	}
	return &f
}

func (db *fakeDB) universiteWithFoyer(id int64) *domain.Universite {
	u := db.universites[id]
	u.Foyer = nil
	for _, fid := range sortedIDs(db.foyers) {
		f := db.foyers[fid]
		if f.UniversiteID != nil && *f.UniversiteID == id {
			u.Foyer = &domain.Foyer{ID: f.ID, Nom: f.Nom, Capacite: f.Capacite, UniversiteID: f.UniversiteID, Blocs: make([]*domain.Bloc, 0)}
		}
	}
	return &u
}

type fakeUniversites struct{ db *fakeDB }

func (r fakeUniversites) Create(ctx context.Context, u *domain.Universite) (*domain.Universite, error) {
	u.ID = r.db.id()
	r.db.universites[u.ID] = domain.Universite{ID: u.ID, Nom: u.Nom, Adresse: u.Adresse}
	return u, nil
}

func (r fakeUniversites) GetByID(ctx context.Context, id int64) (*domain.Universite, error) {
	if _, ok := r.db.universites[id]; !ok {
		return nil, universiteRepo.ErrUniversiteNotFound
	}
	return r.db.universiteWithFoyer(id), nil
}

func (r fakeUniversites) GetByName(ctx context.Context, nom string) (*domain.Universite, error) {
	for _, id := range sortedIDs(r.db.universites) {
		if r.db.universites[id].Nom == nom {
			return r.db.universiteWithFoyer(id), nil
		}
	}
	return nil, universiteRepo.ErrUniversiteNotFound
}

func (r fakeUniversites) GetAll(ctx context.Context) ([]*domain.Universite, error) {
	result := make([]*domain.Universite, 0)
	for _, id := range sortedIDs(r.db.universites) {
		result = append(result, r.db.universiteWithFoyer(id))
	}
	return result, nil
}

func (r fakeUniversites) Update(ctx context.Context, u *domain.Universite) error {
	if _, ok := r.db.universites[u.ID]; !ok {
		return universiteRepo.ErrUniversiteNotFound
	}
	r.db.universites[u.ID] = domain.Universite{ID: u.ID, Nom: u.Nom, Adresse: u.Adresse}
	return nil
}

func (r fakeUniversites) Delete(ctx context.Context, id int64) error {
	if _, ok := r.db.universites[id]; !ok {
		return universiteRepo.ErrUniversiteNotFound
	}
	delete(r.db.universites, id)
	for fid, f := range r.db.foyers {
		if f.UniversiteID != nil && *f.UniversiteID == id {
			f.UniversiteID = nil
			r.db.foyers[fid] = f
		}
	}
	return nil
}

type fakeFoyers struct{ db *fakeDB }

func (r fakeFoyers) checkUniversite(foyerID int64, universiteID *int64) error {
	if universiteID == nil {
		return nil
	}
	if _, ok := r.db.universites[*universiteID]; !ok {
		return foyerRepo.ErrUnknownUniversite
	}
	for id, f := range r.db.foyers {
		if id != foyerID && f.UniversiteID != nil && *f.UniversiteID == *universiteID {
			return foyerRepo.ErrUniversiteHasFoyer
		}
	}
	return nil
}

func (r fakeFoyers) Create(ctx context.Context, f *domain.Foyer) (*domain.Foyer, error) {
	if err := r.checkUniversite(0, f.UniversiteID); err != nil {
		return nil, err
	}
	f.ID = r.db.id()
	r.db.foyers[f.ID] = domain.Foyer{ID: f.ID, Nom: f.Nom, Capacite: f.Capacite, UniversiteID: f.UniversiteID}
	return f, nil
}

func (r fakeFoyers) GetByID(ctx context.Context, id int64) (*domain.Foyer, error) {
	if _, ok := r.db.foyers[id]; !ok {
		return nil, foyerRepo.ErrFoyerNotFound
	}
	return r.db.foyerWithBlocs(id), nil
}

func (r fakeFoyers) GetByName(ctx context.Context, nom string) (*domain.Foyer, error) {
	for _, id := range sortedIDs(r.db.foyers) {
		if r.db.foyers[id].Nom == nom {
			return r.db.foyerWithBlocs(id), nil
		}
	}
	return nil, foyerRepo.ErrFoyerNotFound
}

func (r fakeFoyers) GetAll(ctx context.Context) ([]*domain.Foyer, error) {
	result := make([]*domain.Foyer, 0)
	for _, id := range sortedIDs(r.db.foyers) {
		result = append(result, r.db.foyerWithBlocs(id))
	}
	return result, nil
}

func (r fakeFoyers) Update(ctx context.Context, f *domain.Foyer) error {
	current, ok := r.db.foyers[f.ID]
	if !ok {
		return foyerRepo.ErrFoyerNotFound
	}
	current.Nom, current.Capacite = f.Nom, f.Capacite
	r.db.foyers[f.ID] = current
	return nil
}

func (r fakeFoyers) AssignToUniversite(ctx context.Context, foyerID, universiteID int64) error {
	current, ok := r.db.foyers[foyerID]
	if !ok {
		return foyerRepo.ErrFoyerNotFound
	}
	if err := r.checkUniversite(foyerID, &universiteID); err != nil {
		return err
	}
	current.UniversiteID = &universiteID
	r.db.foyers[foyerID] = current
	return nil
}

func (r fakeFoyers) UnassignFromUniversite(ctx context.Context, foyerID int64) error {
	current, ok := r.db.foyers[foyerID]
	if !ok {
		return foyerRepo.ErrFoyerNotFound
	}
	current.UniversiteID = nil
	r.db.foyers[foyerID] = current
	return nil
}

func (r fakeFoyers) Delete(ctx context.Context, id int64) error {
	if _, ok := r.db.foyers[id]; !ok {
		return foyerRepo.ErrFoyerNotFound
	}
	delete(r.db.foyers, id)
	return nil
}

type fakeBlocs struct{ db *fakeDB }

func (r fakeBlocs) Create(ctx context.Context, b *domain.Bloc) (*domain.Bloc, error) {
	if b.FoyerID != nil {
		if _, ok := r.db.foyers[*b.FoyerID]; !ok {
			return nil, blocRepo.ErrUnknownFoyer
		}
	}
	b.ID = r.db.id()
	r.db.blocs[b.ID] = domain.Bloc{ID: b.ID, Nom: b.Nom, Capacite: b.Capacite, FoyerID: b.FoyerID}
	return b, nil
}

func (r fakeBlocs) GetByID(ctx context.Context, id int64) (*domain.Bloc, error) {
	if _, ok := r.db.blocs[id]; !ok {
		return nil, blocRepo.ErrBlocNotFound
	}
	return r.db.blocWithChambres(id), nil
}

func (r fakeBlocs) GetByName(ctx context.Context, nom string) (*domain.Bloc, error) {
	for _, id := range sortedIDs(r.db.blocs) {
		if r.db.blocs[id].Nom == nom {
			return r.db.blocWithChambres(id), nil
		}
	}
	return nil, blocRepo.ErrBlocNotFound
}

func (r fakeBlocs) GetAll(ctx context.Context) ([]*domain.Bloc, error) {
	result := make([]*domain.Bloc, 0)
	for _, id := range sortedIDs(r.db.blocs) {
		result = append(result, r.db.blocWithChambres(id))
	}
	return result, nil
}

func (r fakeBlocs) Update(ctx context.Context, b *domain.Bloc) error {
	current, ok := r.db.blocs[b.ID]
	if !ok {
		return blocRepo.ErrBlocNotFound
	}
	current.Nom, current.Capacite = b.Nom, b.Capacite
	r.db.blocs[b.ID] = current
	return nil
}

func (r fakeBlocs) AssignToFoyer(ctx context.Context, blocID, foyerID int64) error {
	current, ok := r.db.blocs[blocID]
	if !ok {
		return blocRepo.ErrBlocNotFound
	}
	if _, ok := r.db.foyers[foyerID]; !ok {
		return blocRepo.ErrUnknownFoyer
	}
	current.FoyerID = &foyerID
	r.db.blocs[blocID] = current
	return nil
}

func (r fakeBlocs) Delete(ctx context.Context, id int64) error {
	if _, ok := r.db.blocs[id]; !ok {
		return blocRepo.ErrBlocNotFound
	}
	delete(r.db.blocs, id)
	for cid, c := range r.db.chambres {
		if c.BlocID != nil && *c.BlocID == id {
			delete(r.db.chambres, cid)
		}
	}
	return nil
}

type fakeChambres struct{ db *fakeDB }

func (r fakeChambres) Create(ctx context.Context, c *domain.Chambre) (*domain.Chambre, error) {
	for _, existing := range r.db.chambres {
		if existing.Numero == c.Numero {
			return nil, chambreRepo.ErrNumeroTaken
		}
	}
	c.ID = r.db.id()
	r.db.chambres[c.ID] = *c
	return c, nil
}

func (r fakeChambres) GetByNumero(ctx context.Context, numero int64) (*domain.Chambre, error) {
	for _, id := range sortedIDs(r.db.chambres) {
		if c := r.db.chambres[id]; c.Numero == numero {
			return &c, nil
		}
	}
	return nil, chambreRepo.ErrChambreNotFound
}

func (r fakeChambres) Save(ctx context.Context, c *domain.Chambre) error {
	if _, ok := r.db.chambres[c.ID]; !ok {
		return chambreRepo.ErrChambreNotFound
	}
	if c.BlocID != nil {
		if _, ok := r.db.blocs[*c.BlocID]; !ok {
			return chambreRepo.ErrUnknownReference
		}
	}
	r.db.chambres[c.ID] = *c
	return nil
}

// fakeTxManager откатывает таблицы, если функция вернула ошибку
type fakeTxManager struct{ db *fakeDB }

func cloneMap[V any](m map[int64]V) map[int64]V {
	c := make(map[int64]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func (t fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	universites, foyers := cloneMap(t.db.universites), cloneMap(t.db.foyers)
	blocs, chambres := cloneMap(t.db.blocs), cloneMap(t.db.chambres)

	if err := fn(ctx); err != nil {
		t.db.universites, t.db.foyers = universites, foyers
		t.db.blocs, t.db.chambres = blocs, chambres
		return err
	}
	return nil
}
