package foyer

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

// Repository репозиторий для работы с фойе
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория фойе
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var foyerColumns = []string{"id", "nom", "capacite", "universite_id"}

// Create создает фойе
func (r *Repository) Create(ctx context.Context, foyer *domain.Foyer) (*domain.Foyer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("foyers").
		Columns("nom", "capacite", "universite_id").
		Values(foyer.Nom, foyer.Capacite, foyer.UniversiteID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&foyer.ID); err != nil {
		return nil, mapWriteError("Create", err)
	}

	foyer.BlocList()
	return foyer, nil
}

// GetByID получает фойе вместе с его блоками
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Foyer, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByName получает фойе по названию вместе с его блоками
func (r *Repository) GetByName(ctx context.Context, nom string) (*domain.Foyer, error) {
	return r.getOne(ctx, "GetByName", squirrel.Eq{"nom": nom})
}

// GetAll возвращает все фойе вместе с их блоками
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Foyer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(foyerColumns...).
		From("foyers").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}

	foyers := make([]*domain.Foyer, 0)
	for rows.Next() {
		foyer, err := scanFoyer(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}
		foyers = append(foyers, foyer)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}
	rows.Close()

	for _, foyer := range foyers {
		if err := r.loadBlocs(ctx, foyer); err != nil {
			return nil, err
		}
	}

	return foyers, nil
}

// Update обновляет название и вместимость фойе
func (r *Repository) Update(ctx context.Context, foyer *domain.Foyer) error {
	query, args, err := psqlbuilder.Update("foyers").
		Set("nom", foyer.Nom).
		Set("capacite", foyer.Capacite).
		Where(squirrel.Eq{"id": foyer.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, "Update", query, args)
}

// AssignToUniversite привязывает фойе к университету
// У университета может быть только одно фойе (UNIQUE universite_id)
func (r *Repository) AssignToUniversite(ctx context.Context, foyerID, universiteID int64) error {
	query, args, err := psqlbuilder.Update("foyers").
		Set("universite_id", universiteID).
		Where(squirrel.Eq{"id": foyerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AssignToUniversite - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, "AssignToUniversite", query, args)
}

// UnassignFromUniversite отвязывает фойе от университета
func (r *Repository) UnassignFromUniversite(ctx context.Context, foyerID int64) error {
	query, args, err := psqlbuilder.Update("foyers").
		Set("universite_id", nil).
		Where(squirrel.Eq{"id": foyerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UnassignFromUniversite - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, "UnassignFromUniversite", query, args)
}

// Delete удаляет фойе; блоки остаются без фойе (ON DELETE SET NULL)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("foyers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, "Delete", query, args)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Foyer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(foyerColumns...).
		From("foyers").
		Where(where).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	foyer, err := scanFoyer(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFoyerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan foyer: %w", ErrScanRow, op, err)
	}

	if err := r.loadBlocs(ctx, foyer); err != nil {
		return nil, err
	}

	return foyer, nil
}

// loadBlocs заполняет список блоков фойе (без комнат)
func (r *Repository) loadBlocs(ctx context.Context, foyer *domain.Foyer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "nom", "capacite").
		From("blocs").
		Where(squirrel.Eq{"foyer_id": foyer.ID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadBlocs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadBlocs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	foyer.Blocs = make([]*domain.Bloc, 0)
	for rows.Next() {
		foyerID := foyer.ID
		bloc := domain.Bloc{FoyerID: &foyerID, Chambres: make([]*domain.Chambre, 0)}
		if err := rows.Scan(&bloc.ID, &bloc.Nom, &bloc.Capacite); err != nil {
			return fmt.Errorf("%w: loadBlocs - scan row: %w", ErrScanRow, err)
		}
		foyer.Blocs = append(foyer.Blocs, &bloc)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadBlocs - rows error: %w", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) execAffecting(ctx context.Context, op, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrFoyerNotFound
	}

	return nil
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerrors.IsUniqueViolation(err):
		return ErrUniversiteHasFoyer
	case pgerrors.IsForeignKeyViolation(err):
		return ErrUnknownUniversite
	default:
		return fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFoyer(row rowScanner) (*domain.Foyer, error) {
	var foyer domain.Foyer
	var universiteID sql.NullInt64

	if err := row.Scan(&foyer.ID, &foyer.Nom, &foyer.Capacite, &universiteID); err != nil {
		return nil, err
	}

	if universiteID.Valid {
		foyer.UniversiteID = &universiteID.Int64
	}
	foyer.Blocs = make([]*domain.Bloc, 0)

	return &foyer, nil
}
