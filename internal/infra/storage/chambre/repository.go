package chambre

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

// Repository репозиторий для работы с комнатами и их связями с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var chambreColumns = []string{"c.id", "c.numero", "c.type_chambre", "c.bloc_id"}

// Create создает комнату и связи с её бронированиями
// Для атомарности вызывать внутри транзакции
func (r *Repository) Create(ctx context.Context, chambre *domain.Chambre) (*domain.Chambre, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("chambres").
		Columns("numero", "type_chambre", "bloc_id").
		Values(chambre.Numero, string(chambre.Type), chambre.BlocID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&chambre.ID); err != nil {
		return nil, mapWriteError("Create", err, ErrNumeroTaken)
	}

	if err := r.insertLinks(ctx, chambre.ID, chambre.ReservationList()); err != nil {
		return nil, err
	}

	return chambre, nil
}

// GetByID получает комнату вместе с привязанными бронированиями
// Внутри транзакции строка комнаты блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Chambre, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"c.id": id})
}

// GetByNumero получает комнату по номеру вместе с привязанными бронированиями
// Внутри транзакции строка комнаты блокируется (FOR UPDATE): так сериализуются конкурентные бронирования одной комнаты
func (r *Repository) GetByNumero(ctx context.Context, numero int64) (*domain.Chambre, error) {
	return r.getOne(ctx, "GetByNumero", squirrel.Eq{"c.numero": numero})
}

// GetByReservationID получает комнату, к которой привязано бронирование
func (r *Repository) GetByReservationID(ctx context.Context, reservationID string) (*domain.Chambre, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(chambreColumns...).
		From("chambres c").
		Join("chambre_reservations cr ON cr.chambre_id = c.id").
		Where(squirrel.Eq{"cr.reservation_id": reservationID}).
		OrderBy("c.id ASC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF c")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	chambre, err := scanChambre(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChambreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - scan chambre: %w", ErrScanRow, err)
	}

	if err := r.loadReservations(ctx, chambre); err != nil {
		return nil, err
	}

	return chambre, nil
}

// GetAll возвращает все комнаты
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Chambre, error) {
	query, args, err := psqlbuilder.Select(chambreColumns...).
		From("chambres c").
		OrderBy("c.numero ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.getMany(ctx, "GetAll", query, args)
}

// GetByBlocName возвращает комнаты блока с указанным названием
func (r *Repository) GetByBlocName(ctx context.Context, blocName string) ([]*domain.Chambre, error) {
	query, args, err := psqlbuilder.Select(chambreColumns...).
		From("chambres c").
		Join("blocs b ON b.id = c.bloc_id").
		Where(squirrel.Eq{"b.nom": blocName}).
		OrderBy("c.numero ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBlocName - build select query: %v", ErrBuildQuery, err)
	}

	return r.getMany(ctx, "GetByBlocName", query, args)
}

// GetByFoyerNameAndType возвращает комнаты заданного типа во всех блоках фойе
func (r *Repository) GetByFoyerNameAndType(ctx context.Context, foyerName string, roomType domain.RoomType) ([]*domain.Chambre, error) {
	query, args, err := psqlbuilder.Select(chambreColumns...).
		From("chambres c").
		Join("blocs b ON b.id = c.bloc_id").
		Join("foyers f ON f.id = b.foyer_id").
		Where(squirrel.Eq{"f.nom": foyerName, "c.type_chambre": string(roomType)}).
		OrderBy("c.numero ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByFoyerNameAndType - build select query: %v", ErrBuildQuery, err)
	}

	return r.getMany(ctx, "GetByFoyerNameAndType", query, args)
}

// Save обновляет комнату и синхронизирует таблицу связей с коллекцией Reservations
// Для атомарности вызывать внутри транзакции
func (r *Repository) Save(ctx context.Context, chambre *domain.Chambre) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("chambres").
		Set("numero", chambre.Numero).
		Set("type_chambre", string(chambre.Type)).
		Set("bloc_id", chambre.BlocID).
		Where(squirrel.Eq{"id": chambre.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("Save", err, ErrNumeroTaken)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Save - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrChambreNotFound
	}

	// Синхронизация связей: удаляем старые, вставляем текущие
	query, args, err = psqlbuilder.Delete("chambre_reservations").
		Where(squirrel.Eq{"chambre_id": chambre.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build delete links query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - delete links: %w", ErrExecQuery, err)
	}

	return r.insertLinks(ctx, chambre.ID, chambre.ReservationList())
}

// Delete удаляет комнату; связи с бронированиями удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("chambres").
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
		return ErrChambreNotFound
	}

	return nil
}

// CountValidReservationsInWindow считает действующие бронирования комнаты,
// дата учебного года которых лежит в [start, end] включительно
func (r *Repository) CountValidReservationsInWindow(ctx context.Context, chambreID int64, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("chambre_reservations cr").
		Join("reservations r ON r.id = cr.reservation_id").
		Where(squirrel.Eq{"cr.chambre_id": chambreID, "r.est_valide": true}).
		Where(squirrel.GtOrEq{"r.annee_universitaire": start}).
		Where(squirrel.LtOrEq{"r.annee_universitaire": end}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountValidReservationsInWindow - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountValidReservationsInWindow - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// CountByTypeAndBloc считает комнаты заданного типа в блоке
func (r *Repository) CountByTypeAndBloc(ctx context.Context, roomType domain.RoomType, blocID int64) (int64, error) {
	return r.count(ctx, "CountByTypeAndBloc", squirrel.Eq{"type_chambre": string(roomType), "bloc_id": blocID})
}

// CountByType считает комнаты заданного типа
func (r *Repository) CountByType(ctx context.Context, roomType domain.RoomType) (int64, error) {
	return r.count(ctx, "CountByType", squirrel.Eq{"type_chambre": string(roomType)})
}

// Count считает все комнаты
func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "Count", nil)
}

func (r *Repository) count(ctx context.Context, op string, where squirrel.Sqlizer) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("chambres")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %w", ErrScanRow, op, err)
	}

	return count, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Chambre, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(chambreColumns...).
		From("chambres c").
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	chambre, err := scanChambre(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChambreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan chambre: %w", ErrScanRow, op, err)
	}

	if err := r.loadReservations(ctx, chambre); err != nil {
		return nil, err
	}

	return chambre, nil
}

func (r *Repository) getMany(ctx context.Context, op, query string, args []interface{}) ([]*domain.Chambre, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}

	chambres := make([]*domain.Chambre, 0)
	for rows.Next() {
		chambre, err := scanChambre(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		chambres = append(chambres, chambre)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}
	rows.Close()

	// Бронирования загружаются после закрытия курсора: в транзакции нельзя держать два активных запроса
	for _, chambre := range chambres {
		if err := r.loadReservations(ctx, chambre); err != nil {
			return nil, err
		}
	}

	return chambres, nil
}

// loadReservations заполняет коллекцию бронирований комнаты
func (r *Repository) loadReservations(ctx context.Context, chambre *domain.Chambre) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("r.id", "r.annee_universitaire", "r.est_valide").
		From("reservations r").
		Join("chambre_reservations cr ON cr.reservation_id = r.id").
		Where(squirrel.Eq{"cr.chambre_id": chambre.ID}).
		OrderBy("r.annee_universitaire ASC", "r.id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadReservations - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	chambre.Reservations = make([]*domain.Reservation, 0)
	for rows.Next() {
		var reservation domain.Reservation
		if err := rows.Scan(&reservation.ID, &reservation.AnneeUniversitaire, &reservation.EstValide); err != nil {
			return fmt.Errorf("%w: loadReservations - scan row: %w", ErrScanRow, err)
		}
		chambre.Reservations = append(chambre.Reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadReservations - rows error: %w", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) insertLinks(ctx context.Context, chambreID int64, reservations []*domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("chambre_reservations").
		Columns("chambre_id", "reservation_id")
	for _, reservation := range reservations {
		insertBuilder = insertBuilder.Values(chambreID, reservation.ID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertLinks - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError("insertLinks", err, ErrReservationAlreadyLinked)
	}

	return nil
}

// mapWriteError переводит ошибки ограничений PostgreSQL в ошибки репозитория
func mapWriteError(op string, err error, uniqueErr error) error {
	switch {
	case pgerrors.IsUniqueViolation(err):
		return uniqueErr
	case pgerrors.IsForeignKeyViolation(err):
		return ErrUnknownReference
	default:
		return fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanChambre(row rowScanner) (*domain.Chambre, error) {
	var chambre domain.Chambre
	var roomType string
	var blocID sql.NullInt64

	if err := row.Scan(&chambre.ID, &chambre.Numero, &roomType, &blocID); err != nil {
		return nil, err
	}

	chambre.Type = domain.RoomType(roomType)
	if blocID.Valid {
		chambre.BlocID = &blocID.Int64
	}
	chambre.Reservations = make([]*domain.Reservation, 0)

	return &chambre, nil
}
