package universite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DormService/internal/domain"
	"github.com/m04kA/SMC-DormService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DormService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с университетами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория университетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Университет выбирается вместе с привязанным фойе (если есть)
var universiteColumns = []string{"u.id", "u.nom", "u.adresse", "f.id", "f.nom", "f.capacite"}

// Create создает университет; фойе привязывается отдельно через репозиторий фойе
func (r *Repository) Create(ctx context.Context, universite *domain.Universite) (*domain.Universite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("universites").
		Columns("nom", "adresse").
		Values(universite.Nom, universite.Adresse).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&universite.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return universite, nil
}

// GetByID получает университет вместе с его фойе
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Universite, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"u.id": id})
}

// GetByName получает университет по названию; при совпадении названий берётся первый по id
func (r *Repository) GetByName(ctx context.Context, nom string) (*domain.Universite, error) {
	return r.getOne(ctx, "GetByName", squirrel.Eq{"u.nom": nom})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Universite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(universiteColumns...).
		From("universites u").
		LeftJoin("foyers f ON f.universite_id = u.id").
		Where(where).
		OrderBy("u.id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	universite, err := scanUniversite(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUniversiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan universite: %w", ErrScanRow, op, err)
	}

	return universite, nil
}

// GetAll возвращает все университеты
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Universite, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(universiteColumns...).
		From("universites u").
		LeftJoin("foyers f ON f.universite_id = u.id").
		OrderBy("u.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	universites := make([]*domain.Universite, 0)
	for rows.Next() {
		universite, err := scanUniversite(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}
		universites = append(universites, universite)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return universites, nil
}

// Update обновляет название и адрес университета
func (r *Repository) Update(ctx context.Context, universite *domain.Universite) error {
	query, args, err := psqlbuilder.Update("universites").
		Set("nom", universite.Nom).
		Set("adresse", universite.Adresse).
		Where(squirrel.Eq{"id": universite.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, "Update", query, args)
}

// Delete удаляет университет; привязанное фойе остаётся без университета (ON DELETE SET NULL)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("universites").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, "Delete", query, args)
}

func (r *Repository) execAffecting(ctx context.Context, op, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrUniversiteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUniversite(row rowScanner) (*domain.Universite, error) {
	var universite domain.Universite
	var adresse sql.NullString
	var foyerID, foyerCapacite sql.NullInt64
	var foyerNom sql.NullString

	if err := row.Scan(
		&universite.ID,
		&universite.Nom,
		&adresse,
		&foyerID,
		&foyerNom,
		&foyerCapacite,
	); err != nil {
		return nil, err
	}

	universite.Adresse = adresse.String
	if foyerID.Valid {
		universiteID := universite.ID
		universite.Foyer = &domain.Foyer{
			ID:           foyerID.Int64,
			Nom:          foyerNom.String,
			Capacite:     foyerCapacite.Int64,
			UniversiteID: &universiteID,
			Blocs:        make([]*domain.Bloc, 0),
		}
	}

	return &universite, nil
}
