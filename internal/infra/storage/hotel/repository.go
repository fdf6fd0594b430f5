package hotel

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelReservations/pkg/psqlbuilder"
)

var hotelColumns = []string{
	"id",
	"name",
	"address",
	"city",
	"stars",
	"block_minimum_rooms",
	"block_discount_percentage",
	"manager_ids",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с отелями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отелей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отель
func (r *Repository) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("hotels").
		Columns(
			"name",
			"address",
			"city",
			"stars",
			"block_minimum_rooms",
			"block_discount_percentage",
			"manager_ids",
		).
		Values(
			hotel.Name,
			hotel.Address,
			hotel.City,
			hotel.Stars,
			hotel.BlockMinimumRooms,
			hotel.BlockDiscountPercentage,
			pq.Array(hotel.ManagerIDs),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&hotel.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	hotel.CreatedAt = createdAt.Time
	hotel.UpdatedAt = updatedAt.Time

	return hotel, nil
}

// GetByID получает отель по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hotelColumns...).
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	hotel, err := scanHotel(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hotel: %v", ErrScanRow, err)
	}

	return hotel, nil
}

// List получает список отелей, опционально фильтруя по городу
func (r *Repository) List(ctx context.Context, city *string) ([]*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(hotelColumns...).
		From("hotels").
		OrderBy("name ASC")

	if city != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"city": *city})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hotels := make([]*domain.Hotel, 0)
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return hotels, nil
}

// Update обновляет данные отеля (включая параметры групповой скидки)
func (r *Repository) Update(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("hotels").
		Set("name", hotel.Name).
		Set("address", hotel.Address).
		Set("city", hotel.City).
		Set("stars", hotel.Stars).
		Set("block_minimum_rooms", hotel.BlockMinimumRooms).
		Set("block_discount_percentage", hotel.BlockDiscountPercentage).
		Set("manager_ids", pq.Array(hotel.ManagerIDs)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": hotel.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	hotel.UpdatedAt = updatedAt.Time
	return hotel, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanHotel сканирует одну строку в доменную модель
func scanHotel(row rowScanner) (*domain.Hotel, error) {
	var (
		hotel              domain.Hotel
		minimumRooms       sql.NullInt64
		discountPercentage sql.NullFloat64
		managerIDs         pq.Int64Array
		createdAt          sql.NullTime
		updatedAt          sql.NullTime
	)

	err := row.Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Address,
		&hotel.City,
		&hotel.Stars,
		&minimumRooms,
		&discountPercentage,
		&managerIDs,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if minimumRooms.Valid {
		v := int(minimumRooms.Int64)
		hotel.BlockMinimumRooms = &v
	}
	if discountPercentage.Valid {
		v := discountPercentage.Float64
		hotel.BlockDiscountPercentage = &v
	}
	hotel.ManagerIDs = []int64(managerIDs)
	hotel.CreatedAt = createdAt.Time
	hotel.UpdatedAt = updatedAt.Time

	return &hotel, nil
}
