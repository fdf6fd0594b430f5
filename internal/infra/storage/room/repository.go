package room

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

// uniqueViolationCode код ошибки PostgreSQL при нарушении UNIQUE ограничения
const uniqueViolationCode = "23505"

var roomColumns = []string{
	"id",
	"hotel_id",
	"number",
	"room_type",
	"capacity",
	"nightly_rate",
	"status",
	"floor",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с номерами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый номер
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"hotel_id",
			"number",
			"room_type",
			"capacity",
			"nightly_rate",
			"status",
			"floor",
		).
		Values(
			room.HotelID,
			room.Number,
			room.Type,
			room.Capacity,
			room.NightlyRate,
			room.Status,
			room.Floor,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// ListByHotel получает все номера отеля, отсортированные по номеру
func (r *Repository) ListByHotel(ctx context.Context, hotelID int64) ([]*domain.Room, error) {
	return r.list(ctx, "ListByHotel", squirrel.Eq{"hotel_id": hotelID})
}

// GetByIDs получает номера отеля по списку ID.
// Номера из других отелей в результат не попадают.
func (r *Repository) GetByIDs(ctx context.Context, hotelID int64, ids []int64) ([]*domain.Room, error) {
	if len(ids) == 0 {
		return []*domain.Room{}, nil
	}
	return r.list(ctx, "GetByIDs", squirrel.And{
		squirrel.Eq{"hotel_id": hotelID},
		squirrel.Eq{"id": ids},
	})
}

// CountByHotel возвращает количество номеров отеля, исключая номера на обслуживании
func (r *Repository) CountByHotel(ctx context.Context, hotelID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rooms").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		Where(squirrel.NotEq{"status": domain.RoomStatusMaintenance}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByHotel - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByHotel - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет номер
func (r *Repository) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("number", room.Number).
		Set("room_type", room.Type).
		Set("capacity", room.Capacity).
		Set("nightly_rate", room.NightlyRate).
		Set("status", room.Status).
		Set("floor", room.Floor).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID, "hotel_id": room.HotelID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	room.UpdatedAt = updatedAt.Time
	return room, nil
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(where).
		OrderBy("number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rooms, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.Number,
		&room.Type,
		&room.Capacity,
		&room.NightlyRate,
		&room.Status,
		&room.Floor,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
