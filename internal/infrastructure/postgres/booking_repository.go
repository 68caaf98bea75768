package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/booking"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/interval"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

type bookingRow struct {
	ID         int64     `db:"id"`
	RoomID     int64     `db:"room_id"`
	HotelID    int64     `db:"hotel_id"`
	CustomerID int64     `db:"customer_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r *bookingRow) toEntity() *booking.Booking {
	return &booking.Booking{
		ID:         r.ID,
		RoomID:     r.RoomID,
		HotelID:    r.HotelID,
		CustomerID: r.CustomerID,
		Stay:       interval.Interval{Start: interval.DateOf(r.StartDate), End: interval.DateOf(r.EndDate)},
		Status:     booking.Status(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

const bookingColumns = `id, room_id, hotel_id, customer_id, start_date, end_date, status, created_at, updated_at`

type BookingRepository struct{ db *sqlx.DB }

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, tx transaction.Tx, b *booking.Booking) error {
	query := `INSERT INTO bookings (room_id, hotel_id, customer_id, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := UnwrapTx(tx).QueryRowContext(ctx, query,
		b.RoomID, b.HotelID, b.CustomerID, b.Stay.Start, b.Stay.End, string(b.Status), b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID); err != nil {
		// 排他制約は同時リクエストに対する最終防壁
		// サービス層の重複判定をすり抜けた場合もここで業務競合として扱う
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23P01" {
			return reservation.ErrRoomUnavailable
		}
		return fmt.Errorf("予約作成に失敗: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*booking.Booking, error) {
	var row bookingRow
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("予約取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*booking.Booking, error) {
	var row bookingRow
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	if err := UnwrapTx(tx).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("予約取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *BookingRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]*booking.Booking, error) {
	var rows []bookingRow
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, customerID); err != nil {
		return nil, fmt.Errorf("予約一覧取得に失敗: %w", err)
	}
	result := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx transaction.Tx, b *booking.Booking) error {
	query := `UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := UnwrapTx(tx).ExecContext(ctx, query, string(b.Status), b.UpdatedAt, b.ID)
	if err != nil {
		return fmt.Errorf("予約更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) CancelNoShows(ctx context.Context, before time.Time) (int64, error) {
	query := `UPDATE bookings SET status = 'cancelled', updated_at = NOW()
		WHERE status = 'booked' AND start_date < $1`
	result, err := r.db.ExecContext(ctx, query, interval.DateOf(before))
	if err != nil {
		return 0, fmt.Errorf("ノーショー予約のキャンセルに失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

var _ booking.Repository = (*BookingRepository)(nil)
