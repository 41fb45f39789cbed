// Package memstore хранилище комнат, студентов и бронирований в памяти для тестов usecase и сервисов.
// Повторяет поведение PostgreSQL-репозиториев: те же ошибки, каскадное удаление связей,
// одна комната на бронирование, откат изменений при ошибке внутри транзакции.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-DormService/internal/domain"
	chambreRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/chambre"
	etudiantRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/etudiant"
	reservationRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/reservation"
)

type chambreRow struct {
	numero   int64
	roomType domain.RoomType
	blocID   *int64
}

type etudiantRow struct {
	nom, prenom, ecole string
	cin                int64
	dateNaissance      time.Time
}

type state struct {
	chambres      map[int64]chambreRow
	etudiants     map[int64]etudiantRow
	reservations  map[string]domain.Reservation
	chambreLinks  map[int64][]string
	etudiantLinks map[int64][]string
}

func (s state) clone() state {
	c := state{
		chambres:      make(map[int64]chambreRow, len(s.chambres)),
		etudiants:     make(map[int64]etudiantRow, len(s.etudiants)),
		reservations:  make(map[string]domain.Reservation, len(s.reservations)),
		chambreLinks:  make(map[int64][]string, len(s.chambreLinks)),
		etudiantLinks: make(map[int64][]string, len(s.etudiantLinks)),
	}
	for k, v := range s.chambres {
		c.chambres[k] = v
	}
	for k, v := range s.etudiants {
		c.etudiants[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.chambreLinks {
		c.chambreLinks[k] = append([]string(nil), v...)
	}
	for k, v := range s.etudiantLinks {
		c.etudiantLinks[k] = append([]string(nil), v...)
	}
	return c
}

// Store общее состояние; Chambres, Etudiants, Reservations и TxManager работают с ним
type Store struct {
	mu     sync.Mutex
	txMu   sync.Mutex
	data   state
	nextID int64

	foyerOfBloc map[int64]string
	failWith    error

	Chambres     *Chambres
	Etudiants    *Etudiants
	Reservations *Reservations
	TxManager    *TxManager
}

// New создает пустое хранилище
func New() *Store {
	s := &Store{
		data: state{
			chambres:      make(map[int64]chambreRow),
			etudiants:     make(map[int64]etudiantRow),
			reservations:  make(map[string]domain.Reservation),
			chambreLinks:  make(map[int64][]string),
			etudiantLinks: make(map[int64][]string),
		},
		foyerOfBloc: make(map[int64]string),
	}
	s.Chambres = &Chambres{s: s}
	s.Etudiants = &Etudiants{s: s}
	s.Reservations = &Reservations{s: s}
	s.TxManager = &TxManager{s: s}
	return s
}

// FailWith заставляет все операции хранилища возвращать err (nil отключает)
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// AddChambre добавляет комнату
func (s *Store) AddChambre(numero int64, roomType domain.RoomType, blocID *int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.data.chambres[s.nextID] = chambreRow{numero: numero, roomType: roomType, blocID: blocID}
	return s.nextID
}

// AddEtudiant добавляет студента
func (s *Store) AddEtudiant(nom, prenom string, cin int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.data.etudiants[s.nextID] = etudiantRow{nom: nom, prenom: prenom, cin: cin}
	return s.nextID
}

// AddReservation добавляет бронирование и (если id > 0) связывает его с комнатой и студентом
func (s *Store) AddReservation(r domain.Reservation, chambreID, etudiantID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.reservations[r.ID] = r
	if chambreID > 0 {
		s.data.chambreLinks[chambreID] = append(s.data.chambreLinks[chambreID], r.ID)
	}
	if etudiantID > 0 {
		s.data.etudiantLinks[etudiantID] = append(s.data.etudiantLinks[etudiantID], r.ID)
	}
}

// PlaceBlocInFoyer относит блок к фойе с указанным названием
func (s *Store) PlaceBlocInFoyer(blocID int64, foyerName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.foyerOfBloc[blocID] = foyerName
}

// ChambreReservationIDs идентификаторы бронирований, связанных с комнатой
func (s *Store) ChambreReservationIDs(chambreID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.data.chambreLinks[chambreID]...)
}

// EtudiantReservationIDs идентификаторы бронирований, связанных со студентом
func (s *Store) EtudiantReservationIDs(etudiantID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.data.etudiantLinks[etudiantID]...)
}

// Reservation возвращает копию бронирования
func (s *Store) Reservation(id string) (domain.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.data.reservations[id]
	return r, ok
}

// ReservationCount общее количество бронирований
func (s *Store) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.reservations)
}

func (s *Store) reservationsOf(ids []string) []*domain.Reservation {
	list := make([]*domain.Reservation, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.data.reservations[id]; ok {
			r := r
			list = append(list, &r)
		}
	}
	return list
}

func (s *Store) chambre(id int64) *domain.Chambre {
	row := s.data.chambres[id]
	return &domain.Chambre{
		ID:           id,
		Numero:       row.numero,
		Type:         row.roomType,
		BlocID:       row.blocID,
		Reservations: s.reservationsOf(s.data.chambreLinks[id]),
	}
}

func (s *Store) etudiant(id int64) *domain.Etudiant {
	row := s.data.etudiants[id]
	return &domain.Etudiant{
		ID:            id,
		Nom:           row.nom,
		Prenom:        row.prenom,
		Cin:           row.cin,
		Ecole:         row.ecole,
		DateNaissance: row.dateNaissance,
		Reservations:  s.reservationsOf(s.data.etudiantLinks[id]),
	}
}

func idsOf(reservations []*domain.Reservation) []string {
	ids := make([]string, 0, len(reservations))
	for _, r := range reservations {
		if r != nil {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Chambres реализация репозитория комнат
type Chambres struct{ s *Store }

func (c *Chambres) GetByID(ctx context.Context, id int64) (*domain.Chambre, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.failWith != nil {
		return nil, c.s.failWith
	}
	if _, ok := c.s.data.chambres[id]; !ok {
		return nil, chambreRepo.ErrChambreNotFound
	}
	return c.s.chambre(id), nil
}

func (c *Chambres) GetByNumero(ctx context.Context, numero int64) (*domain.Chambre, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.failWith != nil {
		return nil, c.s.failWith
	}
	for _, id := range sortedKeys(c.s.data.chambres) {
		if c.s.data.chambres[id].numero == numero {
			return c.s.chambre(id), nil
		}
	}
	return nil, chambreRepo.ErrChambreNotFound
}

func (c *Chambres) GetByReservationID(ctx context.Context, reservationID string) (*domain.Chambre, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.failWith != nil {
		return nil, c.s.failWith
	}
	for _, id := range sortedKeys(c.s.data.chambreLinks) {
		for _, rid := range c.s.data.chambreLinks[id] {
			if rid == reservationID {
				return c.s.chambre(id), nil
			}
		}
	}
	return nil, chambreRepo.ErrChambreNotFound
}

func (c *Chambres) GetByFoyerNameAndType(ctx context.Context, foyerName string, roomType domain.RoomType) ([]*domain.Chambre, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.failWith != nil {
		return nil, c.s.failWith
	}
	result := make([]*domain.Chambre, 0)
	for _, id := range sortedKeys(c.s.data.chambres) {
		row := c.s.data.chambres[id]
		if row.blocID == nil || row.roomType != roomType || c.s.foyerOfBloc[*row.blocID] != foyerName {
			continue
		}
		result = append(result, c.s.chambre(id))
	}
	return result, nil
}

func (c *Chambres) Save(ctx context.Context, chambre *domain.Chambre) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.failWith != nil {
		return c.s.failWith
	}
	if _, ok := c.s.data.chambres[chambre.ID]; !ok {
		return chambreRepo.ErrChambreNotFound
	}
	ids := idsOf(chambre.ReservationList())
	for _, rid := range ids {
		if _, ok := c.s.data.reservations[rid]; !ok {
			return chambreRepo.ErrUnknownReference
		}
		for otherID, links := range c.s.data.chambreLinks {
			if otherID == chambre.ID {
				continue
			}
			for _, linked := range links {
				if linked == rid {
					return chambreRepo.ErrReservationAlreadyLinked
				}
			}
		}
	}
	c.s.data.chambres[chambre.ID] = chambreRow{numero: chambre.Numero, roomType: chambre.Type, blocID: chambre.BlocID}
	c.s.data.chambreLinks[chambre.ID] = ids
	return nil
}

func (c *Chambres) CountValidReservationsInWindow(ctx context.Context, chambreID int64, start, end time.Time) (int, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.failWith != nil {
		return 0, c.s.failWith
	}
	count := 0
	for _, rid := range c.s.data.chambreLinks[chambreID] {
		r, ok := c.s.data.reservations[rid]
		if !ok || !r.EstValide {
			continue
		}
		if !r.AnneeUniversitaire.Before(start) && !r.AnneeUniversitaire.After(end) {
			count++
		}
	}
	return count, nil
}

// Etudiants реализация репозитория студентов
type Etudiants struct{ s *Store }

func (e *Etudiants) GetByCin(ctx context.Context, cin int64) (*domain.Etudiant, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.s.failWith != nil {
		return nil, e.s.failWith
	}
	for _, id := range sortedKeys(e.s.data.etudiants) {
		if e.s.data.etudiants[id].cin == cin {
			return e.s.etudiant(id), nil
		}
	}
	return nil, etudiantRepo.ErrEtudiantNotFound
}

func (e *Etudiants) GetByName(ctx context.Context, nom, prenom string) (*domain.Etudiant, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.s.failWith != nil {
		return nil, e.s.failWith
	}
	for _, id := range sortedKeys(e.s.data.etudiants) {
		row := e.s.data.etudiants[id]
		if row.nom == nom && row.prenom == prenom {
			return e.s.etudiant(id), nil
		}
	}
	return nil, etudiantRepo.ErrEtudiantNotFound
}

func (e *Etudiants) Save(ctx context.Context, etudiant *domain.Etudiant) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	if e.s.failWith != nil {
		return e.s.failWith
	}
	if _, ok := e.s.data.etudiants[etudiant.ID]; !ok {
		return etudiantRepo.ErrEtudiantNotFound
	}
	ids := idsOf(etudiant.ReservationList())
	for _, rid := range ids {
		if _, ok := e.s.data.reservations[rid]; !ok {
			return etudiantRepo.ErrUnknownReservation
		}
	}
	e.s.data.etudiants[etudiant.ID] = etudiantRow{
		nom:           etudiant.Nom,
		prenom:        etudiant.Prenom,
		ecole:         etudiant.Ecole,
		cin:           etudiant.Cin,
		dateNaissance: etudiant.DateNaissance,
	}
	e.s.data.etudiantLinks[etudiant.ID] = ids
	return nil
}

// Reservations реализация репозитория бронирований
type Reservations struct{ s *Store }

func (r *Reservations) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	if _, ok := r.s.data.reservations[reservation.ID]; ok {
		return nil, reservationRepo.ErrReservationExists
	}
	r.s.data.reservations[reservation.ID] = *reservation
	return reservation, nil
}

func (r *Reservations) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	res, ok := r.s.data.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return &res, nil
}

func (r *Reservations) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	result := make([]*domain.Reservation, 0, len(r.s.data.reservations))
	for _, res := range r.s.data.reservations {
		res := res
		result = append(result, &res)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *Reservations) CountInWindow(ctx context.Context, start, end time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return 0, r.s.failWith
	}
	var count int64
	for _, res := range r.s.data.reservations {
		if !res.AnneeUniversitaire.Before(start) && !res.AnneeUniversitaire.After(end) {
			count++
		}
	}
	return count, nil
}

func (r *Reservations) GetValidByStudentCin(ctx context.Context, cin int64) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	var latest *domain.Reservation
	for _, id := range sortedKeys(r.s.data.etudiants) {
		if r.s.data.etudiants[id].cin != cin {
			continue
		}
		for _, rid := range r.s.data.etudiantLinks[id] {
			res, ok := r.s.data.reservations[rid]
			if !ok || !res.EstValide {
				continue
			}
			if latest == nil || res.AnneeUniversitaire.After(latest.AnneeUniversitaire) ||
				(res.AnneeUniversitaire.Equal(latest.AnneeUniversitaire) && res.ID > latest.ID) {
				res := res
				latest = &res
			}
		}
	}
	if latest == nil {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return latest, nil
}

func (r *Reservations) GetValidInWindow(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	result := make([]*domain.Reservation, 0)
	for _, res := range r.s.data.reservations {
		if res.EstValide && !res.AnneeUniversitaire.Before(start) && !res.AnneeUniversitaire.After(end) {
			res := res
			result = append(result, &res)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *Reservations) Save(ctx context.Context, reservation *domain.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.data.reservations[reservation.ID]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.s.data.reservations[reservation.ID] = *reservation
	return nil
}

// Delete удаляет бронирование вместе со всеми его связями
func (r *Reservations) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.data.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(r.s.data.reservations, id)
	for k, links := range r.s.data.chambreLinks {
		r.s.data.chambreLinks[k] = without(links, id)
	}
	for k, links := range r.s.data.etudiantLinks {
		r.s.data.etudiantLinks[k] = without(links, id)
	}
	return nil
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// TxManager выполняет функции по одной за раз и откатывает состояние, если функция вернула ошибку
type TxManager struct {
	s     *Store
	Calls int
}

func (t *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, fn)
}

func (t *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, fn)
}

func (t *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, fn)
}

type txKey struct{}

func (t *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	// Вложенный вызов выполняется в уже открытой транзакции
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	t.s.mu.Lock()
	t.Calls++
	snapshot := t.s.data.clone()
	t.s.mu.Unlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		t.s.mu.Lock()
		t.s.data = snapshot
		t.s.mu.Unlock()
		return err
	}
	return nil
}
