package etudiant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DormService/internal/domain"
	"github.com/m04kA/SMC-DormService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DormService/pkg/pgerrors"
	"github.com/m04kA/SMC-DormService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со студентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория студентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var etudiantColumns = []string{"id", "nom", "prenom", "cin", "ecole", "date_naissance"}

// Create создает студента и связи с его бронированиями
func (r *Repository) Create(ctx context.Context, etudiant *domain.Etudiant) (*domain.Etudiant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("etudiants").
		Columns("nom", "prenom", "cin", "ecole", "date_naissance").
		Values(etudiant.Nom, etudiant.Prenom, etudiant.Cin, etudiant.Ecole, nullDate(etudiant)).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&etudiant.ID); err != nil {
		return nil, mapWriteError("Create", err)
	}

	if err := r.insertLinks(ctx, etudiant.ID, etudiant.ReservationList()); err != nil {
		return nil, err
	}

	return etudiant, nil
}

// GetByID получает студента вместе с его бронированиями
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Etudiant, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id}, nil)
}

// GetByCin получает студента по национальному идентификатору
func (r *Repository) GetByCin(ctx context.Context, cin int64) (*domain.Etudiant, error) {
	return r.getOne(ctx, "GetByCin", squirrel.Eq{"cin": cin}, nil)
}

// GetByName получает студента по фамилии и имени
// При совпадении нескольких студентов возвращается первый по id
func (r *Repository) GetByName(ctx context.Context, nom, prenom string) (*domain.Etudiant, error) {
	return r.getOne(ctx, "GetByName", squirrel.Eq{"nom": nom, "prenom": prenom}, []string{"id ASC"})
}

// GetAll возвращает всех студентов
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Etudiant, error) {
	return r.getMany(ctx, "GetAll", nil)
}

// GetAllByNom возвращает студентов с указанной фамилией
func (r *Repository) GetAllByNom(ctx context.Context, nom string) ([]*domain.Etudiant, error) {
	return r.getMany(ctx, "GetAllByNom", squirrel.Eq{"nom": nom})
}

func (r *Repository) getMany(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Etudiant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(etudiantColumns...).
		From("etudiants").
		OrderBy("nom ASC", "prenom ASC", "id ASC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}

	etudiants := make([]*domain.Etudiant, 0)
	for rows.Next() {
		etudiant, err := scanEtudiant(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		etudiants = append(etudiants, etudiant)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}
	rows.Close()

	for _, etudiant := range etudiants {
		if err := r.loadReservations(ctx, etudiant); err != nil {
			return nil, err
		}
	}

	return etudiants, nil
}

// Save обновляет студента и синхронизирует его связи с бронированиями
// Для атомарности вызывать внутри транзакции
func (r *Repository) Save(ctx context.Context, etudiant *domain.Etudiant) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("etudiants").
		Set("nom", etudiant.Nom).
		Set("prenom", etudiant.Prenom).
		Set("cin", etudiant.Cin).
		Set("ecole", etudiant.Ecole).
		Set("date_naissance", nullDate(etudiant)).
		Where(squirrel.Eq{"id": etudiant.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("Save", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Save - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEtudiantNotFound
	}

	query, args, err = psqlbuilder.Delete("etudiant_reservations").
		Where(squirrel.Eq{"etudiant_id": etudiant.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build delete links query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - delete links: %w", ErrExecQuery, err)
	}

	return r.insertLinks(ctx, etudiant.ID, etudiant.ReservationList())
}

// Delete удаляет студента; связи с бронированиями удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("etudiants").
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
		return ErrEtudiantNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq, orderBy []string) (*domain.Etudiant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(etudiantColumns...).
		From("etudiants").
		Where(where)

	if len(orderBy) > 0 {
		selectBuilder = selectBuilder.OrderBy(orderBy...).Limit(1)
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	etudiant, err := scanEtudiant(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEtudiantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan etudiant: %w", ErrScanRow, op, err)
	}

	if err := r.loadReservations(ctx, etudiant); err != nil {
		return nil, err
	}

	return etudiant, nil
}

// loadReservations заполняет коллекцию бронирований студента
func (r *Repository) loadReservations(ctx context.Context, etudiant *domain.Etudiant) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("r.id", "r.annee_universitaire", "r.est_valide").
		From("reservations r").
		Join("etudiant_reservations er ON er.reservation_id = r.id").
		Where(squirrel.Eq{"er.etudiant_id": etudiant.ID}).
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

	etudiant.Reservations = make([]*domain.Reservation, 0)
	for rows.Next() {
		var reservation domain.Reservation
		if err := rows.Scan(&reservation.ID, &reservation.AnneeUniversitaire, &reservation.EstValide); err != nil {
			return fmt.Errorf("%w: loadReservations - scan row: %w", ErrScanRow, err)
		}
		etudiant.Reservations = append(etudiant.Reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadReservations - rows error: %w", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) insertLinks(ctx context.Context, etudiantID int64, reservations []*domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("etudiant_reservations").
		Columns("etudiant_id", "reservation_id")
	for _, reservation := range reservations {
		insertBuilder = insertBuilder.Values(etudiantID, reservation.ID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertLinks - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError("insertLinks", err)
	}

	return nil
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerrors.IsUniqueViolation(err):
		return ErrCinTaken
	case pgerrors.IsForeignKeyViolation(err):
		return ErrUnknownReservation
	default:
		return fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
}

// nullDate дата рождения не обязательна: нулевое значение хранится как NULL
func nullDate(etudiant *domain.Etudiant) sql.NullTime {
	return sql.NullTime{Time: etudiant.DateNaissance, Valid: !etudiant.DateNaissance.IsZero()}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEtudiant(row rowScanner) (*domain.Etudiant, error) {
	var etudiant domain.Etudiant
	var ecole sql.NullString
	var dateNaissance sql.NullTime

	if err := row.Scan(
		&etudiant.ID,
		&etudiant.Nom,
		&etudiant.Prenom,
		&etudiant.Cin,
		&ecole,
		&dateNaissance,
	); err != nil {
		return nil, err
	}

	etudiant.Ecole = ecole.String
	etudiant.DateNaissance = dateNaissance.Time
	etudiant.Reservations = make([]*domain.Reservation, 0)

	return &etudiant, nil
}
