package etudiants

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	etudiantsService "github.com/m04kA/SMC-DormService/internal/service/etudiants"
	"github.com/m04kA/SMC-DormService/internal/service/etudiants/models"
	"github.com/m04kA/SMC-DormService/pkg/logger"
)

type fakeService struct {
	EtudiantService

	created *models.CreateEtudiantRequest
	nom     string
	err     error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateEtudiantRequest) (*models.EtudiantResponse, error) {
	f.created = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.EtudiantResponse{ID: 1, Nom: req.Nom, Prenom: req.Prenom, Cin: req.Cin}, nil
}

func (f *fakeService) GetAll(_ context.Context, nom string) (*models.EtudiantListResponse, error) {
	f.nom = nom
	return &models.EtudiantListResponse{Etudiants: []models.EtudiantResponse{}}, f.err
}

func newRouter(svc *fakeService) *mux.Router {
	h := NewHandler(svc, logger.NewWithWriter(io.Discard, "info"))
	r := mux.NewRouter()
	r.HandleFunc("/etudiants", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/etudiants", h.List).Methods(http.MethodGet)
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestHandler_Create(t *testing.T) {
	svc := &fakeService{}

	rec := serve(newRouter(svc), http.MethodPost, "/etudiants",
		`{"nomEt":"Ben Salah","prenomEt":"Amine","cin":12345678,"ecole":"ENIT","dateNaissance":"2001-04-12"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.created.DateNaissance)
	assert.Equal(t, 2001, svc.created.DateNaissance.Year())
}

func TestHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "missing prenom", body: `{"nomEt":"A","cin":1}`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"nomEt":"A","prenomEt":"B","cin":1,"dateNaissance":"12.04.2001"}`, wantStatus: http.StatusBadRequest},
		{name: "cin taken", body: `{"nomEt":"A","prenomEt":"B","cin":1}`, err: etudiantsService.ErrCinTaken, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newRouter(&fakeService{err: tt.err}), http.MethodPost, "/etudiants", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_List_FiltersByNom(t *testing.T) {
	svc := &fakeService{}

	rec := serve(newRouter(svc), http.MethodGet, "/etudiants?nom=Trabelsi", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Trabelsi", svc.nom)
}
