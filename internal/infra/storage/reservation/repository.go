package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelReservations/pkg/psqlbuilder"
)

// exclusionViolationCode код ошибки PostgreSQL при нарушении EXCLUDE ограничения
// (пересечение daterange для одного номера)
const exclusionViolationCode = "23P01"

var reservationColumns = []string{
	"id",
	"confirmation_code",
	"hotel_id",
	"room_id",
	"guest_user_id",
	"agency_user_id",
	"block_booking_id",
	"check_in",
	"check_out",
	"guests",
	"status",
	"room_number",
	"nightly_rate",
	"total_amount",
	"discount_amount",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
//
// Проверка доступности выполняется в usecase (availability.IsRoomAvailable) внутри
// сериализуемой транзакции; EXCLUDE ограничение в БД страхует от гонки check-then-act.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"confirmation_code",
			"hotel_id",
			"room_id",
			"guest_user_id",
			"agency_user_id",
			"block_booking_id",
			"check_in",
			"check_out",
			"guests",
			"status",
			"room_number",
			"nightly_rate",
			"total_amount",
			"discount_amount",
			"notes",
		).
		Values(
			reservation.ConfirmationCode,
			reservation.HotelID,
			reservation.RoomID,
			reservation.GuestUserID,
			reservation.AgencyUserID,
			reservation.BlockBookingID,
			reservation.CheckIn,
			reservation.CheckOut,
			reservation.Guests,
			reservation.Status,
			reservation.RoomNumber,
			reservation.NightlyRate,
			reservation.TotalAmount,
			reservation.DiscountAmount,
			reservation.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reservation.ID, &createdAt, &updatedAt)
	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrRoomNotAvailable
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetByGuestID получает бронирования гостя, опционально фильтруя по статусу
func (r *Repository) GetByGuestID(ctx context.Context, guestUserID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"guest_user_id": guestUserID}).
		OrderBy("check_in DESC", "id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuestID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuestID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetByBlockBookingID получает все бронирования групповой брони
func (r *Repository) GetByBlockBookingID(ctx context.Context, blockBookingID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"block_booking_id": blockBookingID}).
		OrderBy("room_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBlockBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBlockBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetWithFilter получает бронирования отеля с гибкой фильтрацией
//
// Примеры использования:
//
// 1. Все активные бронирования отеля:
//    filter := domain.ReservationsFilter{HotelID: 1}
//
// 2. Бронирования номеров, пересекающиеся с периодом [From, To):
//    filter := domain.ReservationsFilter{HotelID: 1, RoomIDs: ids, From: &checkIn, To: &checkOut}
//
// 3. Проверка доступности перед созданием (внутри транзакции, с блокировкой строк):
//    filter := domain.ReservationsFilter{HotelID: 1, RoomIDs: ids, From: &checkIn, To: &checkOut, ForUpdate: true}
//
// 4. Только no-show за период:
//    status := domain.StatusNoShow
//    filter := domain.ReservationsFilter{HotelID: 1, From: &from, To: &to, Status: &status}
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"hotel_id": filter.HotelID})

	if len(filter.RoomIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": filter.RoomIDs})
	}

	// Пересечение полуинтервалов: check_in < To AND check_out > From
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"check_in": *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"check_out": *filter.From})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	selectBuilder = selectBuilder.OrderBy("check_in ASC", "room_number ASC")

	// FOR UPDATE имеет смысл только внутри транзакции
	if filter.ForUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus переводит бронирование из статуса from в статус to.
// Условие по текущему статусу защищает от параллельных изменений.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execSingleRow(ctx, executor, "UpdateStatus", id, query, args)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, from domain.ReservationStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execSingleRow(ctx, executor, "Cancel", id, query, args)
}

// execSingleRow выполняет UPDATE и различает "нет такой записи" и "статус уже изменился"
func (r *Repository) execSingleRow(ctx context.Context, executor DBExecutor, op string, id int64, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrStatusConflict
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		reservation    domain.Reservation
		agencyUserID   sql.NullInt64
		blockBookingID sql.NullInt64
		notes          sql.NullString
		reason         sql.NullString
		cancelledAt    sql.NullTime
		createdAt      sql.NullTime
		updatedAt      sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.ConfirmationCode,
		&reservation.HotelID,
		&reservation.RoomID,
		&reservation.GuestUserID,
		&agencyUserID,
		&blockBookingID,
		&reservation.CheckIn,
		&reservation.CheckOut,
		&reservation.Guests,
		&reservation.Status,
		&reservation.RoomNumber,
		&reservation.NightlyRate,
		&reservation.TotalAmount,
		&reservation.DiscountAmount,
		&notes,
		&reason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if agencyUserID.Valid {
		reservation.AgencyUserID = &agencyUserID.Int64
	}
	if blockBookingID.Valid {
		reservation.BlockBookingID = &blockBookingID.Int64
	}
	if notes.Valid {
		reservation.Notes = &notes.String
	}
	if reason.Valid {
		reservation.CancellationReason = &reason.String
	}
	if cancelledAt.Valid {
		reservation.CancelledAt = &cancelledAt.Time
	}
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == exclusionViolationCode
}
