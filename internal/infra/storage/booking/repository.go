package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GroupBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

var bookingColumns = []string{
	"id",
	"resource_id",
	"user_id",
	"booking_date",
	"start_time",
	"quantity",
	"status",
	"total_price",
	"hold_expires_at",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Ошибка драйвера сохраняется в цепочке, чтобы менеджер транзакций распознал конфликт сериализации.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"resource_id",
			"user_id",
			"booking_date",
			"start_time",
			"quantity",
			"status",
			"total_price",
			"hold_expires_at",
			"notes",
		).
		Values(
			booking.ResourceID,
			booking.UserID,
			booking.BookingDate,
			booking.StartTime,
			booking.Quantity,
			string(booking.Status),
			booking.TotalPrice,
			booking.HoldExpiresAt,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
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

// GetByUserID возвращает бронирования пользователя, новые слоты первыми
// status == nil - все статусы
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID})
	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*status)})
	}

	query, args, err := builder.
		OrderBy("booking_date DESC", "start_time DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetSlotOccupancy возвращает сумму мест, занятых в слоте на момент now
// Бронирования без quantity считаются одноместными
func (r *Repository) GetSlotOccupancy(
	ctx context.Context,
	resourceID int64,
	date time.Time,
	startTime types.TimeString,
	now time.Time,
) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(COALESCE(quantity, 1)), 0)").
		From("bookings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(occupyingAt(now)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetSlotOccupancy - build select query: %v", ErrBuildQuery, err)
	}

	var occupancy int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&occupancy); err != nil {
		return 0, fmt.Errorf("%w: GetSlotOccupancy - execute query: %v", ErrExecQuery, err)
	}

	return occupancy, nil
}

// LockSlotOccupancy блокирует слот до конца транзакции и возвращает его занятость
// 1. pg_advisory_xact_lock по ключу (resource, date, time) сериализует конкурирующие бронирования слота,
// включая первое бронирование пустого слота, когда строк для FOR UPDATE еще нет
// 2. Живые строки слота читаются с FOR UPDATE, сумма считается на стороне приложения
// (PostgreSQL не допускает FOR UPDATE вместе с агрегатами)
func (r *Repository) LockSlotOccupancy(
	ctx context.Context,
	resourceID int64,
	date time.Time,
	startTime types.TimeString,
	now time.Time,
) (int, error) {
	tx, ok := dbmetrics.TxFromContext(ctx)
	if !ok {
		return 0, fmt.Errorf("%w: LockSlotOccupancy", ErrTransaction)
	}

	lockQuery, lockArgs, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(hashtextextended(?, 0))", slotLockKey(resourceID, date, startTime))).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: LockSlotOccupancy - build lock query: %v", ErrBuildQuery, err)
	}

	if _, err := tx.ExecContext(ctx, lockQuery, lockArgs...); err != nil {
		return 0, fmt.Errorf("%w: LockSlotOccupancy - acquire advisory lock: %w", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Select("COALESCE(quantity, 1)").
		From("bookings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(occupyingAt(now)).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: LockSlotOccupancy - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: LockSlotOccupancy - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	occupancy := 0
	for rows.Next() {
		var quantity int
		if err := rows.Scan(&quantity); err != nil {
			return 0, fmt.Errorf("%w: LockSlotOccupancy - scan quantity: %v", ErrScanRow, err)
		}
		occupancy += quantity
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: LockSlotOccupancy - rows error: %w", ErrScanRow, err)
	}

	return occupancy, nil
}

// GetOccupancyForDates возвращает занятость всех слотов ресурса за указанные даты одним запросом
// Слоты без бронирований в результат не попадают (занятость 0)
func (r *Repository) GetOccupancyForDates(
	ctx context.Context,
	resourceID int64,
	dates []time.Time,
	now time.Time,
) (map[domain.SlotKey]int, error) {
	occupancy := make(map[domain.SlotKey]int)
	if len(dates) == 0 {
		return occupancy, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"booking_date",
		"start_time",
		"COALESCE(SUM(COALESCE(quantity, 1)), 0)",
	).
		From("bookings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"booking_date": dates}).
		Where(occupyingAt(now)).
		GroupBy("booking_date", "start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupancyForDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupancyForDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			date      time.Time
			startTime types.TimeString
			total     int
		)
		if err := rows.Scan(&date, &startTime, &total); err != nil {
			return nil, fmt.Errorf("%w: GetOccupancyForDates - scan row: %v", ErrScanRow, err)
		}
		occupancy[domain.NewSlotKey(date, startTime)] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupancyForDates - rows error: %v", ErrScanRow, err)
	}

	return occupancy, nil
}

// GetSlotOccupants возвращает бронирования, занимающие слот на момент now
func (r *Repository) GetSlotOccupants(
	ctx context.Context,
	resourceID int64,
	date time.Time,
	startTime types.TimeString,
	now time.Time,
) ([]domain.SlotOccupant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "COALESCE(quantity, 1)", "status").
		From("bookings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(occupyingAt(now)).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotOccupants - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotOccupants - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	occupants := make([]domain.SlotOccupant, 0)
	for rows.Next() {
		var o domain.SlotOccupant
		if err := rows.Scan(&o.BookingID, &o.UserID, &o.Quantity, &o.Status); err != nil {
			return nil, fmt.Errorf("%w: GetSlotOccupants - scan row: %v", ErrScanRow, err)
		}
		occupants = append(occupants, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotOccupants - rows error: %v", ErrScanRow, err)
	}

	return occupants, nil
}

// Cancel отменяет бронирование с указанием причины
// Обновляются только бронирования в отменяемых статусах
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(domain.StatusCancelled)).
		Set("cancellation_reason", reason).
		Set("cancelled_at", now).
		Set("hold_expires_at", nil).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(
			domain.StatusPending,
			domain.StatusPendingConfirmation,
			domain.StatusConfirmed,
		)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execSingle(ctx, executor, query, args, "Cancel", ErrCannotCancel)
}

// Confirm подтверждает живое удержание
func (r *Repository) Confirm(ctx context.Context, id int64, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(domain.StatusConfirmed)).
		Set("hold_expires_at", nil).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": string(domain.StatusPending)}).
		Where(squirrel.Or{
			squirrel.Eq{"hold_expires_at": nil},
			squirrel.Gt{"hold_expires_at": now},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	return r.execSingle(ctx, executor, query, args, "Confirm", ErrCannotConfirm)
}

// ExpireHolds переводит просроченные удержания в статус expired
// За один вызов обрабатывается не более limit строк; строки, заблокированные другими транзакциями, пропускаются
func (r *Repository) ExpireHolds(ctx context.Context, now time.Time, limit int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(domain.StatusExpired)).
		Set("updated_at", now).
		Where(squirrel.Expr(
			"id IN (SELECT id FROM bookings WHERE status = ? AND hold_expires_at <= ? ORDER BY hold_expires_at LIMIT ? FOR UPDATE SKIP LOCKED)",
			string(domain.StatusPending), now, limit,
		)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireHolds - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireHolds - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireHolds - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

func (r *Repository) execSingle(
	ctx context.Context,
	executor DBExecutor,
	query string,
	args []interface{},
	op string,
	errNoRows error,
) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return errNoRows
	}

	return nil
}

// occupyingAt условие "бронирование занимает места на момент now"
func occupyingAt(now time.Time) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.Eq{"status": statusStrings(domain.OccupyingStatuses...)},
		squirrel.Or{
			squirrel.NotEq{"status": string(domain.StatusPending)},
			squirrel.Eq{"hold_expires_at": nil},
			squirrel.Gt{"hold_expires_at": now},
		},
	}
}

func statusStrings(statuses ...domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func slotLockKey(resourceID int64, date time.Time, startTime types.TimeString) string {
	return fmt.Sprintf("booking-slot:%d:%s:%s", resourceID, date.Format(domain.DateFormat), startTime)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ResourceID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Quantity,
		&booking.Status,
		&booking.TotalPrice,
		&booking.HoldExpiresAt,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
