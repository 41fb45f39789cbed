package bloc

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

// Repository репозиторий для работы с блоками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блоков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var blocColumns = []string{"id", "nom", "capacite", "foyer_id"}

// Create создает блок без комнат; комнаты создаются через репозиторий комнат
func (r *Repository) Create(ctx context.Context, bloc *domain.Bloc) (*domain.Bloc, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocs").
		Columns("nom", "capacite", "foyer_id").
		Values(bloc.Nom, bloc.Capacite, bloc.FoyerID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&bloc.ID); err != nil {
		return nil, mapWriteError("Create", err)
	}

	bloc.ChambreList()
	return bloc, nil
}

// GetByID получает блок вместе с его комнатами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Bloc, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByName получает блок по названию вместе с его комнатами
func (r *Repository) GetByName(ctx context.Context, nom string) (*domain.Bloc, error) {
	return r.getOne(ctx, "GetByName", squirrel.Eq{"nom": nom})
}

// GetAll возвращает все блоки вместе с их комнатами
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Bloc, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blocColumns...).
		From("blocs").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}

	blocs := make([]*domain.Bloc, 0)
	for rows.Next() {
		bloc, err := scanBloc(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}
		blocs = append(blocs, bloc)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}
	rows.Close()

	for _, bloc := range blocs {
		if err := r.loadChambres(ctx, bloc); err != nil {
			return nil, err
		}
	}

	return blocs, nil
}

// Update обновляет название и вместимость блока
func (r *Repository) Update(ctx context.Context, bloc *domain.Bloc) error {
	query, args, err := psqlbuilder.Update("blocs").
		Set("nom", bloc.Nom).
		Set("capacite", bloc.Capacite).
		Where(squirrel.Eq{"id": bloc.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, "Update", query, args)
}

// AssignToFoyer привязывает блок к фойе
func (r *Repository) AssignToFoyer(ctx context.Context, blocID, foyerID int64) error {
	query, args, err := psqlbuilder.Update("blocs").
		Set("foyer_id", foyerID).
		Where(squirrel.Eq{"id": blocID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AssignToFoyer - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, "AssignToFoyer", query, args)
}

// Delete удаляет блок; его комнаты и их связи удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("blocs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, "Delete", query, args)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Bloc, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blocColumns...).
		From("blocs").
		Where(where).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	bloc, err := scanBloc(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlocNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan bloc: %w", ErrScanRow, op, err)
	}

	if err := r.loadChambres(ctx, bloc); err != nil {
		return nil, err
	}

	return bloc, nil
}

// loadChambres заполняет список комнат блока (без бронирований)
func (r *Repository) loadChambres(ctx context.Context, bloc *domain.Bloc) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "numero", "type_chambre").
		From("chambres").
		Where(squirrel.Eq{"bloc_id": bloc.ID}).
		OrderBy("numero ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadChambres - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadChambres - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bloc.Chambres = make([]*domain.Chambre, 0)
	for rows.Next() {
		blocID := bloc.ID
		chambre := domain.Chambre{BlocID: &blocID, Reservations: make([]*domain.Reservation, 0)}
		var roomType string
		if err := rows.Scan(&chambre.ID, &chambre.Numero, &roomType); err != nil {
			return fmt.Errorf("%w: loadChambres - scan row: %w", ErrScanRow, err)
		}
		chambre.Type = domain.RoomType(roomType)
		bloc.Chambres = append(bloc.Chambres, &chambre)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadChambres - rows error: %w", ErrScanRow, err)
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
		return ErrBlocNotFound
	}

	return nil
}

func mapWriteError(op string, err error) error {
	if pgerrors.IsForeignKeyViolation(err) {
		return ErrUnknownFoyer
	}
	return fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBloc(row rowScanner) (*domain.Bloc, error) {
	var bloc domain.Bloc
	var foyerID sql.NullInt64

	if err := row.Scan(&bloc.ID, &bloc.Nom, &bloc.Capacite, &foyerID); err != nil {
		return nil, err
	}

	if foyerID.Valid {
		bloc.FoyerID = &foyerID.Int64
	}
	bloc.Chambres = make([]*domain.Chambre, 0)

	return &bloc, nil
}
