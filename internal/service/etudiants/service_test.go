package etudiants

import (
	"context"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DormService/internal/domain"
	etudiantRepo "github.com/m04kA/SMC-DormService/internal/infra/storage/etudiant"
	"github.com/m04kA/SMC-DormService/internal/service/etudiants/models"
	"github.com/m04kA/SMC-DormService/pkg/logger"
)

type fakeRepo struct {
	etudiants map[int64]domain.Etudiant
	nextID    int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{etudiants: make(map[int64]domain.Etudiant)}
}

func (f *fakeRepo) cinTaken(cin, exceptID int64) bool {
	for id, e := range f.etudiants {
		if id != exceptID && e.Cin == cin {
			return true
		}
	}
	return false
}

func (f *fakeRepo) Create(ctx context.Context, etudiant *domain.Etudiant) (*domain.Etudiant, error) {
	if f.cinTaken(etudiant.Cin, 0) {
		return nil, etudiantRepo.ErrCinTaken
	}
	f.nextID++
	etudiant.ID = f.nextID
	f.etudiants[etudiant.ID] = *etudiant
	return etudiant, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Etudiant, error) {
	e, ok := f.etudiants[id]
	if !ok {
		return nil, etudiantRepo.ErrEtudiantNotFound
	}
	return &e, nil
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]*domain.Etudiant, error) {
	return f.GetAllByNom(ctx, "")
}

func (f *fakeRepo) GetAllByNom(ctx context.Context, nom string) ([]*domain.Etudiant, error) {
	result := make([]*domain.Etudiant, 0)
	for _, e := range f.etudiants {
		if nom == "" || e.Nom == nom {
			e := e
			result = append(result, &e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeRepo) Save(ctx context.Context, etudiant *domain.Etudiant) error {
	if _, ok := f.etudiants[etudiant.ID]; !ok {
		return etudiantRepo.ErrEtudiantNotFound
	}
	if f.cinTaken(etudiant.Cin, etudiant.ID) {
		return etudiantRepo.ErrCinTaken
	}
	f.etudiants[etudiant.ID] = *etudiant
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.etudiants[id]; !ok {
		return etudiantRepo.ErrEtudiantNotFound
	}
	delete(f.etudiants, id)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(repo *fakeRepo) *Service {
	return NewService(repo, fakeTxManager{}, logger.NewWithWriter(io.Discard, "info"))
}

func TestService_Create(t *testing.T) {
	svc := newService(newFakeRepo())
	birth := time.Date(2001, time.April, 12, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Create(context.Background(), &models.CreateEtudiantRequest{
		Nom: "Doe", Prenom: "John", Cin: 12345678, Ecole: "ESPRIT", DateNaissance: &birth,
	})
	require.NoError(t, err)
	assert.Equal(t, "Doe", resp.Nom)
	require.NotNil(t, resp.DateNaissance)
	assert.Equal(t, "2001-04-12", *resp.DateNaissance)
	assert.Empty(t, resp.Reservations)

	_, err = svc.Create(context.Background(), &models.CreateEtudiantRequest{Nom: "Roe", Prenom: "Jane", Cin: 12345678})
	assert.ErrorIs(t, err, ErrCinTaken)
}

func TestService_Create_Validation(t *testing.T) {
	svc := newService(newFakeRepo())

	tests := []struct {
		name string
		req  models.CreateEtudiantRequest
	}{
		{name: "empty nom", req: models.CreateEtudiantRequest{Prenom: "John", Cin: 1}},
		{name: "blank prenom", req: models.CreateEtudiantRequest{Nom: "Doe", Prenom: "  ", Cin: 1}},
		{name: "zero cin", req: models.CreateEtudiantRequest{Nom: "Doe", Prenom: "John"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_GetAll_ByNom(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	for i, nom := range []string{"Doe", "Roe", "Doe"} {
		_, err := svc.Create(context.Background(), &models.CreateEtudiantRequest{Nom: nom, Prenom: "X", Cin: int64(i + 1)})
		require.NoError(t, err)
	}

	all, err := svc.GetAll(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	does, err := svc.GetAll(context.Background(), "Doe")
	require.NoError(t, err)
	assert.Equal(t, 2, does.Total)
}

func TestService_Update(t *testing.T) {
	repo := newFakeRepo()
	repo.etudiants[1] = domain.Etudiant{
		ID: 1, Nom: "Doe", Prenom: "John", Cin: 1,
		Reservations: []*domain.Reservation{{ID: "RES-1", EstValide: true}},
	}
	repo.etudiants[2] = domain.Etudiant{ID: 2, Nom: "Roe", Prenom: "Jane", Cin: 2}
	repo.nextID = 2
	svc := newService(repo)

	ecole := "ENIT"
	resp, err := svc.Update(context.Background(), 1, &models.UpdateEtudiantRequest{Ecole: &ecole})
	require.NoError(t, err)
	assert.Equal(t, "ENIT", resp.Ecole)
	require.Len(t, resp.Reservations, 1)

	cin := int64(2)
	_, err = svc.Update(context.Background(), 1, &models.UpdateEtudiantRequest{Cin: &cin})
	assert.ErrorIs(t, err, ErrCinTaken)

	_, err = svc.Update(context.Background(), 9, &models.UpdateEtudiantRequest{Ecole: &ecole})
	assert.ErrorIs(t, err, ErrEtudiantNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeRepo()
	repo.etudiants[1] = domain.Etudiant{ID: 1, Nom: "Doe", Prenom: "John", Cin: 1}
	svc := newService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrEtudiantNotFound)
}
