package universite

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DormService/internal/domain"
	"github.com/m04kA/SMC-DormService/pkg/pgerrors"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

var rowColumns = []string{"id", "nom", "adresse", "id", "nom", "capacite"}

const selectWithFoyer = "SELECT u.id, u.nom, u.adresse, f.id, f.nom, f.capacite FROM universites u " +
	"LEFT JOIN foyers f ON f.universite_id = u.id"

func TestRepository_Create(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO universites (nom,adresse) VALUES ($1,$2) RETURNING id")).
		WithArgs("ESPRIT", "Ariana").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	universite, err := repo.Create(context.Background(), &domain.Universite{Nom: "ESPRIT", Adresse: "Ariana"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), universite.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	testCases := []struct {
		name      string
		row       []driver.Value
		wantFoyer bool
	}{
		{
			name:      "with foyer",
			row:       []driver.Value{3, "ESPRIT", "Ariana", 8, "Foyer A", 120},
			wantFoyer: true,
		},
		{
			name: "without foyer",
			row:  []driver.Value{3, "ESPRIT", nil, nil, nil, nil},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)

			mock.ExpectQuery(regexp.QuoteMeta(selectWithFoyer + " WHERE u.id = $1 ORDER BY u.id ASC")).
				WithArgs(int64(3)).
				WillReturnRows(sqlmock.NewRows(rowColumns).AddRow(tc.row...))

			universite, err := repo.GetByID(context.Background(), 3)

			require.NoError(t, err)
			assert.Equal(t, "ESPRIT", universite.Nom)
			assert.Equal(t, tc.wantFoyer, universite.HasFoyer())
			if tc.wantFoyer {
				assert.Equal(t, int64(8), universite.Foyer.ID)
				require.NotNil(t, universite.Foyer.UniversiteID)
				assert.Equal(t, int64(3), *universite.Foyer.UniversiteID)
				assert.NotNil(t, universite.Foyer.Blocs)
			} else {
				assert.Empty(t, universite.Adresse)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByName_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectWithFoyer + " WHERE u.nom = $1")).
		WithArgs("Inconnue").
		WillReturnRows(sqlmock.NewRows(rowColumns))

	_, err := repo.GetByName(context.Background(), "Inconnue")

	assert.ErrorIs(t, err, ErrUniversiteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectWithFoyer + " ORDER BY u.id ASC")).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(1, "ESPRIT", "Ariana", 8, "Foyer A", 120).
			AddRow(2, "INSAT", nil, nil, nil, nil))

	universites, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, universites, 2)
	assert.True(t, universites[0].HasFoyer())
	assert.False(t, universites[1].HasFoyer())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	testCases := []struct {
		name         string
		rowsAffected int64
		expectedErr  error
	}{
		{name: "updated", rowsAffected: 1},
		{name: "unknown universite", rowsAffected: 0, expectedErr: ErrUniversiteNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE universites SET nom = $1, adresse = $2 WHERE id = $3")).
				WithArgs("ESPRIT", "Ariana", int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tc.rowsAffected))

			err := repo.Update(context.Background(), &domain.Universite{ID: 3, Nom: "ESPRIT", Adresse: "Ariana"})

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Delete_KeepsDriverCause(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM universites WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnError(&pq.Error{Code: pgerrors.CodeSerializationFailure})

	err := repo.Delete(context.Background(), 3)

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, pgerrors.IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
