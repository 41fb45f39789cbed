package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DormService/internal/domain"
	"github.com/m04kA/SMC-DormService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DormService/pkg/pgerrors"
	"github.com/m04kA/SMC-DormService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование
// Идентификатор генерируется в домене (domain.NewReservation), а не базой
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns("id", "annee_universitaire", "est_valide").
		Values(reservation.ID, reservation.AnneeUniversitaire, reservation.EstValide).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrReservationExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return reservation, nil
}

// GetByID получает бронирование по идентификатору
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "annee_universitaire", "est_valide").
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var reservation domain.Reservation
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&reservation.AnneeUniversitaire,
		&reservation.EstValide,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return &reservation, nil
}

// GetAll возвращает все бронирования, сначала новые
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select("id", "annee_universitaire", "est_valide").
		From("reservations").
		OrderBy("annee_universitaire DESC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetAll", query, args)
}

// GetValidByStudentCin возвращает действующее бронирование студента.
// Если действующих бронирований несколько, возвращается самое позднее по дате учебного года.
func (r *Repository) GetValidByStudentCin(ctx context.Context, cin int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("r.id", "r.annee_universitaire", "r.est_valide").
		From("reservations r").
		Join("etudiant_reservations er ON er.reservation_id = r.id").
		Join("etudiants e ON e.id = er.etudiant_id").
		Where(squirrel.Eq{"e.cin": cin, "r.est_valide": true}).
		OrderBy("r.annee_universitaire DESC", "r.id DESC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetValidByStudentCin - build select query: %v", ErrBuildQuery, err)
	}

	var reservation domain.Reservation
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&reservation.AnneeUniversitaire,
		&reservation.EstValide,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetValidByStudentCin - scan reservation: %w", ErrScanRow, err)
	}

	return &reservation, nil
}

// GetValidInWindow возвращает действующие бронирования, дата которых лежит в [start, end] включительно
func (r *Repository) GetValidInWindow(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select("id", "annee_universitaire", "est_valide").
		From("reservations").
		Where(squirrel.Eq{"est_valide": true}).
		Where(squirrel.GtOrEq{"annee_universitaire": start}).
		Where(squirrel.LtOrEq{"annee_universitaire": end}).
		OrderBy("annee_universitaire ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetValidInWindow - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetValidInWindow", query, args)
}

// CountInWindow считает все бронирования (включая недействительные) с датой в [start, end]
func (r *Repository) CountInWindow(ctx context.Context, start, end time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.GtOrEq{"annee_universitaire": start}).
		Where(squirrel.LtOrEq{"annee_universitaire": end}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountInWindow - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountInWindow - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// Save обновляет дату и признак действительности бронирования
func (r *Repository) Save(ctx context.Context, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("annee_universitaire", reservation.AnneeUniversitaire).
		Set("est_valide", reservation.EstValide).
		Where(squirrel.Eq{"id": reservation.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Save - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Save - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование; связи с комнатами и студентами удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// scanReservations сканирует строки (id, annee_universitaire, est_valide)
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation
		if err := rows.Scan(&reservation.ID, &reservation.AnneeUniversitaire, &reservation.EstValide); err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %w", ErrScanRow, err)
		}
		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}
