package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/interval"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/renting"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

type rentingRow struct {
	ID              int64     `db:"id"`
	RoomID          int64     `db:"room_id"`
	HotelID         int64     `db:"hotel_id"`
	CustomerID      int64     `db:"customer_id"`
	EmployeeID      int64     `db:"employee_id"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	Status          string    `db:"status"`
	OriginBookingID *int64    `db:"origin_booking_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r *rentingRow) toEntity() *renting.Renting {
	return &renting.Renting{
		ID:              r.ID,
		RoomID:          r.RoomID,
		HotelID:         r.HotelID,
		CustomerID:      r.CustomerID,
		EmployeeID:      r.EmployeeID,
		Stay:            interval.Interval{Start: interval.DateOf(r.StartDate), End: interval.DateOf(r.EndDate)},
		Status:          renting.Status(r.Status),
		OriginBookingID: r.OriginBookingID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

const rentingColumns = `id, room_id, hotel_id, customer_id, employee_id, start_date, end_date, status, origin_booking_id, created_at, updated_at`

type RentingRepository struct{ db *sqlx.DB }

func NewRentingRepository(db *sqlx.DB) *RentingRepository {
	return &RentingRepository{db: db}
}

func (r *RentingRepository) Create(ctx context.Context, tx transaction.Tx, rt *renting.Renting) error {
	query := `INSERT INTO rentings (room_id, hotel_id, customer_id, employee_id, start_date, end_date, status, origin_booking_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	if err := UnwrapTx(tx).QueryRowContext(ctx, query,
		rt.RoomID, rt.HotelID, rt.CustomerID, rt.EmployeeID,
		rt.Stay.Start, rt.Stay.End, string(rt.Status), rt.OriginBookingID, rt.CreatedAt, rt.UpdatedAt,
	).Scan(&rt.ID); err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23P01" {
			return reservation.ErrRoomUnavailable
		}
		return fmt.Errorf("滞在作成に失敗: %w", err)
	}
	return nil
}

func (r *RentingRepository) GetByID(ctx context.Context, id int64) (*renting.Renting, error) {
	var row rentingRow
	query := `SELECT ` + rentingColumns + ` FROM rentings WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, renting.ErrRentingNotFound
		}
		return nil, fmt.Errorf("滞在取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *RentingRepository) GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*renting.Renting, error) {
	var row rentingRow
	query := `SELECT ` + rentingColumns + ` FROM rentings WHERE id = $1 FOR UPDATE`
	if err := UnwrapTx(tx).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, renting.ErrRentingNotFound
		}
		return nil, fmt.Errorf("滞在取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *RentingRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]*renting.Renting, error) {
	var rows []rentingRow
	query := `SELECT ` + rentingColumns + ` FROM rentings WHERE customer_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, customerID); err != nil {
		return nil, fmt.Errorf("滞在一覧取得に失敗: %w", err)
	}
	result := make([]*renting.Renting, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}

func (r *RentingRepository) Update(ctx context.Context, tx transaction.Tx, rt *renting.Renting) error {
	query := `UPDATE rentings SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := UnwrapTx(tx).ExecContext(ctx, query, string(rt.Status), rt.UpdatedAt, rt.ID)
	if err != nil {
		return fmt.Errorf("滞在更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return renting.ErrRentingNotFound
	}
	return nil
}

var _ renting.Repository = (*RentingRepository)(nil)
