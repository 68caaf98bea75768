package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/interval"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

type reservationRow struct {
	Kind       string    `db:"kind"`
	ID         int64     `db:"id"`
	RoomID     int64     `db:"room_id"`
	CustomerID int64     `db:"customer_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Status     string    `db:"status"`
}

// ReservationIndex は bookings と rentings を横断する占有状況の照会を実装する
// 予約作成時の重複判定と滞在作成時の重複判定は同じクエリを共有し、
// 片側のテーブルだけを見ることによる二重予約を構造的に防ぐ
type ReservationIndex struct{ db *sqlx.DB }

func NewReservationIndex(db *sqlx.DB) *ReservationIndex {
	return &ReservationIndex{db: db}
}

const activeReservationsQuery = `
	SELECT 'booking' AS kind, id, room_id, customer_id, start_date, end_date, status
	FROM bookings
	WHERE room_id = $1 AND status IN ('booked', 'checked_in')
	UNION ALL
	SELECT 'renting' AS kind, id, room_id, customer_id, start_date, end_date, status
	FROM rentings
	WHERE room_id = $1 AND status = 'checked_in'`

func (r *ReservationIndex) ActiveForRoom(ctx context.Context, roomID int64) ([]reservation.Reservation, error) {
	var rows []reservationRow
	if err := r.db.SelectContext(ctx, &rows, activeReservationsQuery, roomID); err != nil {
		return nil, fmt.Errorf("占有中予約の取得に失敗: %w", err)
	}
	result := make([]reservation.Reservation, len(rows))
	for i, row := range rows {
		result[i] = reservation.Reservation{
			Kind:       reservation.Kind(row.Kind),
			ID:         row.ID,
			RoomID:     row.RoomID,
			CustomerID: row.CustomerID,
			Stay:       interval.Interval{Start: interval.DateOf(row.StartDate), End: interval.DateOf(row.EndDate)},
			Status:     row.Status,
		}
	}
	return result, nil
}

func (r *ReservationIndex) HasActiveOverlap(ctx context.Context, tx transaction.Tx, roomID int64, stay interval.Interval, excludeBookingID int64) (bool, error) {
	// 包含境界ルール: start <= 候補終了日 AND end >= 候補開始日
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1 AND status IN ('booked', 'checked_in')
			  AND start_date <= $3 AND end_date >= $2
			  AND ($4 = 0 OR id <> $4)
			UNION ALL
			SELECT 1 FROM rentings
			WHERE room_id = $1 AND status = 'checked_in'
			  AND start_date <= $3 AND end_date >= $2
		)`
	var exists bool
	if err := UnwrapTx(tx).GetContext(ctx, &exists, query, roomID, stay.Start, stay.End, excludeBookingID); err != nil {
		return false, fmt.Errorf("重複判定に失敗: %w", err)
	}
	return exists, nil
}

var _ reservation.Index = (*ReservationIndex)(nil)
