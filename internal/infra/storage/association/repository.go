package association

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RoomBookingService/internal/domain"
	"github.com/m04kA/RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/RoomBookingService/pkg/pgerr"
	"github.com/m04kA/RoomBookingService/pkg/psqlbuilder"
)

// Repository репозиторий ассоциаций (арендаторов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ассоциаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает ассоциацию. CodeHash должен быть уже захеширован.
func (r *Repository) Create(ctx context.Context, association *domain.Association) (*domain.Association, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("associations").
		Columns("name", "code_hash").
		Values(association.Name, association.CodeHash).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&association.ID,
		&association.CreatedAt,
		&association.UpdatedAt,
	)
	if pgerr.IsUniqueViolation(err) {
		return nil, fmt.Errorf("%w: Create - %q", ErrNameTaken, association.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return association, nil
}

// GetByID получает ассоциацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Association, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "code_hash", "created_at", "updated_at").
		From("associations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Association
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.Name,
		&a.CodeHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssociationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan association: %v", ErrScanRow, err)
	}

	return &a, nil
}

// List возвращает все ассоциации с количеством бронирований, по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Association, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.name",
		"a.code_hash",
		"a.created_at",
		"a.updated_at",
		"COUNT(b.id)",
	).
		From("associations a").
		LeftJoin("bookings b ON b.association_id = a.id").
		GroupBy("a.id").
		OrderBy("a.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	associations := make([]*domain.Association, 0)
	for rows.Next() {
		var a domain.Association
		if err := rows.Scan(&a.ID, &a.Name, &a.CodeHash, &a.CreatedAt, &a.UpdatedAt, &a.BookingCount); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		associations = append(associations, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return associations, nil
}

// ListCredentials возвращает id, имя и хеш кода всех ассоциаций (для входа по коду)
func (r *Repository) ListCredentials(ctx context.Context) ([]*domain.Association, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "code_hash").
		From("associations").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCredentials - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCredentials - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	associations := make([]*domain.Association, 0)
	for rows.Next() {
		var a domain.Association
		if err := rows.Scan(&a.ID, &a.Name, &a.CodeHash); err != nil {
			return nil, fmt.Errorf("%w: ListCredentials - scan row: %v", ErrScanRow, err)
		}
		associations = append(associations, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCredentials - rows error: %v", ErrScanRow, err)
	}

	return associations, nil
}

// CountBookings возвращает количество бронирований ассоциации
func (r *Repository) CountBookings(ctx context.Context, id int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"association_id": id}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountBookings - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBookings - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateCodeHash заменяет хеш кода ассоциации
func (r *Repository) UpdateCodeHash(ctx context.Context, id int64, codeHash string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("associations").
		Set("code_hash", codeHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCodeHash - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateCodeHash - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCodeHash - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAssociationNotFound
	}

	return nil
}

// Delete удаляет ассоциацию. Бронирования удаляются каскадно (ON DELETE CASCADE).
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("associations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAssociationNotFound
	}

	return nil
}
