package blockbooking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelReservations/pkg/psqlbuilder"
)

// Repository репозиторий групповых бронирований (заголовок брони агентства)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория групповых бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заголовок групповой брони.
// Должен вызываться в той же транзакции, что и создание бронирований номеров.
func (r *Repository) Create(ctx context.Context, block *domain.BlockBooking) (*domain.BlockBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("block_bookings").
		Columns(
			"confirmation_code",
			"hotel_id",
			"agency_user_id",
			"room_count",
			"check_in",
			"check_out",
			"subtotal",
			"is_eligible",
			"discount_percentage",
			"discount_amount",
			"final_amount",
		).
		Values(
			block.ConfirmationCode,
			block.HotelID,
			block.AgencyUserID,
			block.RoomCount,
			block.CheckIn,
			block.CheckOut,
			block.Subtotal,
			block.IsEligible,
			block.DiscountPercentage,
			block.DiscountAmount,
			block.FinalAmount,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &block.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return block, nil
}

// GetByID получает групповую бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlockBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"confirmation_code",
		"hotel_id",
		"agency_user_id",
		"room_count",
		"check_in",
		"check_out",
		"subtotal",
		"is_eligible",
		"discount_percentage",
		"discount_amount",
		"final_amount",
		"created_at",
	).
		From("block_bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var block domain.BlockBooking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&block.ConfirmationCode,
		&block.HotelID,
		&block.AgencyUserID,
		&block.RoomCount,
		&block.CheckIn,
		&block.CheckOut,
		&block.Subtotal,
		&block.IsEligible,
		&block.DiscountPercentage,
		&block.DiscountAmount,
		&block.FinalAmount,
		&block.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBlockBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block booking: %v", ErrScanRow, err)
	}

	return &block, nil
}
