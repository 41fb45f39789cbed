package chambre

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DormService/internal/domain"
	"github.com/m04kA/SMC-DormService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DormService/pkg/pgerrors"
)

func newTestRepository(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), db, mock
}

var (
	chambreRowColumns     = []string{"id", "numero", "type_chambre", "bloc_id"}
	reservationRowColumns = []string{"id", "annee_universitaire", "est_valide"}
	yearStart             = time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)
)

func TestRepository_GetByNumero(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id, c.numero, c.type_chambre, c.bloc_id FROM chambres c WHERE c.numero = $1")).
		WithArgs(int64(101)).
		WillReturnRows(sqlmock.NewRows(chambreRowColumns).AddRow(7, 101, "DOUBLE", 3))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations r JOIN chambre_reservations cr ON cr.reservation_id = r.id WHERE cr.chambre_id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(reservationRowColumns).AddRow("RES-1", yearStart, true))

	chambre, err := repo.GetByNumero(context.Background(), 101)

	require.NoError(t, err)
	assert.Equal(t, int64(7), chambre.ID)
	assert.Equal(t, domain.RoomTypeDouble, chambre.Type)
	require.NotNil(t, chambre.BlocID)
	assert.Equal(t, int64(3), *chambre.BlocID)
	require.Len(t, chambre.Reservations, 1)
	assert.Equal(t, "RES-1", chambre.Reservations[0].ID)
	assert.True(t, chambre.Reservations[0].EstValide)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByNumero_NotFound(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM chambres c WHERE c.numero = $1")).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows(chambreRowColumns))

	_, err := repo.GetByNumero(context.Background(), 999)

	assert.ErrorIs(t, err, ErrChambreNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByNumero_LocksRowInTransaction(t *testing.T) {
	repo, db, mock := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM chambres c WHERE c.numero = $1 FOR UPDATE")).
		WithArgs(int64(101)).
		WillReturnRows(sqlmock.NewRows(chambreRowColumns).AddRow(7, 101, "SIMPLE", nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations r JOIN chambre_reservations cr")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(reservationRowColumns))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	chambre, err := repo.GetByNumero(ctx, 101)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Nil(t, chambre.BlocID)
	assert.NotNil(t, chambre.Reservations)
	assert.Empty(t, chambre.Reservations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountValidReservationsInWindow(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	end := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM chambre_reservations cr JOIN reservations r ON r.id = cr.reservation_id "+
			"WHERE cr.chambre_id = $1 AND r.est_valide = $2 AND r.annee_universitaire >= $3 AND r.annee_universitaire <= $4")).
		WithArgs(int64(7), true, yearStart, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountValidReservationsInWindow(context.Background(), 7, yearStart, end)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	chambre := &domain.Chambre{
		ID:     7,
		Numero: 101,
		Type:   domain.RoomTypeDouble,
		Reservations: []*domain.Reservation{
			{ID: "RES-1", AnneeUniversitaire: yearStart, EstValide: true},
			{ID: "RES-2", AnneeUniversitaire: yearStart, EstValide: true},
		},
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE chambres SET numero = $1, type_chambre = $2, bloc_id = $3 WHERE id = $4")).
		WithArgs(int64(101), "DOUBLE", sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM chambre_reservations WHERE chambre_id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO chambre_reservations (chambre_id,reservation_id) VALUES ($1,$2),($3,$4)")).
		WithArgs(int64(7), "RES-1", int64(7), "RES-2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Save(context.Background(), chambre))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_EmptyCollectionOnlyClearsLinks(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE chambres SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM chambre_reservations WHERE chambre_id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), &domain.Chambre{ID: 7, Numero: 101, Type: domain.RoomTypeSimple}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_NotFound(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE chambres SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), &domain.Chambre{ID: 42, Numero: 1, Type: domain.RoomTypeSimple})

	assert.ErrorIs(t, err, ErrChambreNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_ReservationLinkedElsewhere(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE chambres SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM chambre_reservations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO chambre_reservations")).
		WillReturnError(&pq.Error{Code: pgerrors.CodeUniqueViolation})

	err := repo.Save(context.Background(), &domain.Chambre{
		ID:           7,
		Numero:       101,
		Type:         domain.RoomTypeSimple,
		Reservations: []*domain.Reservation{{ID: "RES-1"}},
	})

	assert.ErrorIs(t, err, ErrReservationAlreadyLinked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_NumeroTaken(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO chambres (numero,type_chambre,bloc_id) VALUES ($1,$2,$3) RETURNING id")).
		WithArgs(int64(101), "SIMPLE", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: pgerrors.CodeUniqueViolation})

	_, err := repo.Create(context.Background(), &domain.Chambre{Numero: 101, Type: domain.RoomTypeSimple})

	assert.ErrorIs(t, err, ErrNumeroTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExecErrorKeepsDriverCause(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM chambres WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnError(&pq.Error{Code: pgerrors.CodeSerializationFailure})

	err := repo.Delete(context.Background(), 7)

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, pgerrors.IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByTypeAndBloc(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM chambres WHERE bloc_id = $1 AND type_chambre = $2")).
		WithArgs(int64(3), "TRIPLE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountByTypeAndBloc(context.Background(), domain.RoomTypeTriple, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll_RowErrorKeepsDriverCause(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM chambres c ORDER BY c.numero ASC")).
		WillReturnRows(sqlmock.NewRows(chambreRowColumns).
			AddRow(7, 101, "SIMPLE", nil).
			RowError(0, &pq.Error{Code: pgerrors.CodeSerializationFailure}))

	_, err := repo.GetAll(context.Background())

	assert.ErrorIs(t, err, ErrScanRow)
	assert.True(t, pgerrors.IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LoadReservations_RowErrorKeepsDriverCause(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM chambres c WHERE c.numero = $1")).
		WithArgs(int64(101)).
		WillReturnRows(sqlmock.NewRows(chambreRowColumns).AddRow(7, 101, "SIMPLE", nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations r JOIN chambre_reservations cr")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(reservationRowColumns).
			AddRow("RES-1", yearStart, true).
			RowError(0, &pq.Error{Code: pgerrors.CodeSerializationFailure}))

	_, err := repo.GetByNumero(context.Background(), 101)

	assert.ErrorIs(t, err, ErrScanRow)
	assert.True(t, pgerrors.IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
