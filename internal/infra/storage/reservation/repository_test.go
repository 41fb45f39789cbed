package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

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

var (
	rowColumns = []string{"id", "annee_universitaire", "est_valide"}
	yearStart  = time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)
	yearEnd    = time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
)

func TestRepository_Create(t *testing.T) {
	testCases := []struct {
		name        string
		execErr     error
		expectedErr error
	}{
		{name: "created"},
		{
			name:        "duplicate id",
			execErr:     &pq.Error{Code: pgerrors.CodeUniqueViolation},
			expectedErr: ErrReservationExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			reservation := &domain.Reservation{ID: "RES-1", AnneeUniversitaire: yearStart, EstValide: true}

			exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations (id,annee_universitaire,est_valide) VALUES ($1,$2,$3)")).
				WithArgs("RES-1", yearStart, true)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			created, err := repo.Create(context.Background(), reservation)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, reservation, created)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetValidByStudentCin(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT r.id, r.annee_universitaire, r.est_valide FROM reservations r "+
			"JOIN etudiant_reservations er ON er.reservation_id = r.id "+
			"JOIN etudiants e ON e.id = er.etudiant_id "+
			"WHERE e.cin = $1 AND r.est_valide = $2 "+
			"ORDER BY r.annee_universitaire DESC, r.id DESC LIMIT 1")).
		WithArgs(int64(12345678), true).
		WillReturnRows(sqlmock.NewRows(rowColumns).AddRow("RES-2", yearStart, true))

	reservation, err := repo.GetValidByStudentCin(context.Background(), 12345678)

	require.NoError(t, err)
	assert.Equal(t, "RES-2", reservation.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetValidByStudentCin_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations r")).
		WillReturnRows(sqlmock.NewRows(rowColumns))

	_, err := repo.GetValidByStudentCin(context.Background(), 1)

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetValidInWindow(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM reservations WHERE est_valide = $1 AND annee_universitaire >= $2 AND annee_universitaire <= $3")).
		WithArgs(true, yearStart, yearEnd).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow("RES-1", yearStart, true).
			AddRow("RES-2", yearStart, true))

	reservations, err := repo.GetValidInWindow(context.Background(), yearStart, yearEnd)

	require.NoError(t, err)
	assert.Len(t, reservations, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountInWindow(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM reservations WHERE annee_universitaire >= $1 AND annee_universitaire <= $2")).
		WithArgs(yearStart, yearEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountInWindow(context.Background(), yearStart, yearEnd)

	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveAndDelete_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET annee_universitaire = $1, est_valide = $2 WHERE id = $3")).
		WithArgs(yearStart, false, "RES-404").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs("RES-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), &domain.Reservation{ID: "RES-404", AnneeUniversitaire: yearStart})
	assert.ErrorIs(t, err, ErrReservationNotFound)

	err = repo.Delete(context.Background(), "RES-404")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetValidInWindow_RowErrorKeepsDriverCause(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE est_valide = $1")).
		WithArgs(true, yearStart, yearEnd).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow("RES-1", yearStart, true).
			RowError(0, &pq.Error{Code: pgerrors.CodeSerializationFailure}))

	_, err := repo.GetValidInWindow(context.Background(), yearStart, yearEnd)

	assert.ErrorIs(t, err, ErrScanRow)
	assert.True(t, pgerrors.IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
