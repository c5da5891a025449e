package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RoomBookingService/internal/domain"
	"github.com/m04kA/RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/RoomBookingService/pkg/pgerr"
	"github.com/m04kA/RoomBookingService/pkg/psqlbuilder"
)

// Колонки бронирования вместе с названиями комнаты и ассоциации.
// Порядок должен совпадать с scanBooking.
var bookingColumns = []string{
	"b.id",
	"b.booking_date",
	"b.room_id",
	"b.start_time",
	"b.end_time",
	"b.duration_minutes",
	"b.booker_first_name",
	"b.booker_last_name",
	"b.association_id",
	"b.created_at",
	"r.name",
	"a.name",
}

const (
	bookingsTable    = "bookings b"
	joinRooms        = "rooms r ON r.id = b.room_id"
	joinAssociations = "associations a ON a.id = b.association_id"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет принятое бронирование.
// Нарушение уникального индекса (date, room, start) и конфликт сериализации
// возвращаются как ErrSlotConflict.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_date",
			"room_id",
			"start_time",
			"end_time",
			"duration_minutes",
			"booker_first_name",
			"booker_last_name",
			"association_id",
		).
		Values(
			booking.BookingDate.Format(domain.DateFormat),
			booking.RoomID,
			booking.StartTime,
			booking.EndTime,
			booking.DurationMinutes,
			booking.BookerFirstName,
			booking.BookerLastName,
			booking.AssociationID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt)
	switch {
	case err == nil:
		return booking, nil
	case pgerr.IsUniqueViolation(err), pgerr.IsSerializationFailure(err):
		return nil, fmt.Errorf("%w: Create - %v", ErrSlotConflict, err)
	case pgerr.IsForeignKeyViolation(err):
		return nil, fmt.Errorf("%w: Create - %v", ErrUnknownReference, err)
	default:
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		LeftJoin(joinRooms).
		LeftJoin(joinAssociations).
		Where(squirrel.Eq{"b.id": id})

	// Внутри транзакции удаления блокируем строку
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListByDateAndRoom возвращает бронирования комнаты на дату в порядке создания.
// В транзакции строки блокируются (FOR UPDATE), чтобы проверка конфликта и вставка были атомарны.
func (r *Repository) ListByDateAndRoom(ctx context.Context, date time.Time, roomID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		LeftJoin(joinRooms).
		LeftJoin(joinAssociations).
		Where(squirrel.Eq{
			"b.booking_date": date.Format(domain.DateFormat),
			"b.room_id":      roomID,
		}).
		OrderBy("b.id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateAndRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateAndRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByDate возвращает бронирования всех комнат на дату, отсортированные по времени
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		LeftJoin(joinRooms).
		LeftJoin(joinAssociations).
		Where(squirrel.Eq{"b.booking_date": date.Format(domain.DateFormat)}).
		OrderBy("b.room_id ASC", "b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListForCalendar возвращает бронирования за период (обе границы включительно),
// опционально только для одной комнаты
func (r *Repository) ListForCalendar(ctx context.Context, filter domain.CalendarFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		LeftJoin(joinRooms).
		LeftJoin(joinAssociations).
		Where(squirrel.GtOrEq{"b.booking_date": filter.FromDate.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"b.booking_date": filter.ToDate.Format(domain.DateFormat)}).
		OrderBy("b.booking_date ASC", "b.start_time ASC", "b.room_id ASC")

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.room_id": *filter.RoomID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForCalendar - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForCalendar - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// History возвращает страницу истории бронирований, сначала новые
func (r *Repository) History(ctx context.Context, filter domain.HistoryFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyHistoryFilter(
		psqlbuilder.Select(bookingColumns...).
			From(bookingsTable).
			LeftJoin(joinRooms).
			LeftJoin(joinAssociations),
		filter,
	).
		OrderBy("b.booking_date DESC", "b.start_time DESC", "b.id DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: History - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: History - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountHistory возвращает общее количество записей истории без учета пагинации
func (r *Repository) CountHistory(ctx context.Context, filter domain.HistoryFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyHistoryFilter(
		psqlbuilder.Select("COUNT(*)").From(bookingsTable),
		filter,
	).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountHistory - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountHistory - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// Delete физически удаляет бронирование и возвращает число удаленных строк
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return 0, ErrBookingNotFound
	}

	return rowsAffected, nil
}

func applyHistoryFilter(sb squirrel.SelectBuilder, filter domain.HistoryFilter) squirrel.SelectBuilder {
	if filter.AssociationID != nil {
		sb = sb.Where(squirrel.Eq{"b.association_id": *filter.AssociationID})
	}
	if filter.FromDate != nil {
		sb = sb.Where(squirrel.GtOrEq{"b.booking_date": filter.FromDate.Format(domain.DateFormat)})
	}
	if filter.ToDate != nil {
		sb = sb.Where(squirrel.LtOrEq{"b.booking_date": filter.ToDate.Format(domain.DateFormat)})
	}
	return sb
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking                   domain.Booking
		roomName, associationName sql.NullString
	)

	err := row.Scan(
		&booking.ID,
		&booking.BookingDate,
		&booking.RoomID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.DurationMinutes,
		&booking.BookerFirstName,
		&booking.BookerLastName,
		&booking.AssociationID,
		&booking.CreatedAt,
		&roomName,
		&associationName,
	)
	if err != nil {
		return nil, err
	}

	booking.RoomName = roomName.String
	booking.AssociationName = associationName.String

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
