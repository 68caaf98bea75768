package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

type roomRow struct {
	ID        int64          `db:"id"`
	HotelID   int64          `db:"hotel_id"`
	Number    string         `db:"number"`
	Capacity  int            `db:"capacity"`
	Price     float64        `db:"price"`
	Area      string         `db:"area"`
	Amenities pq.StringArray `db:"amenities"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *roomRow) toEntity() *hotel.Room {
	return &hotel.Room{
		ID:        r.ID,
		HotelID:   r.HotelID,
		Number:    r.Number,
		Capacity:  r.Capacity,
		Price:     r.Price,
		Area:      r.Area,
		Amenities: []string(r.Amenities),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type availableRoomRow struct {
	roomRow
	HotelName    string `db:"hotel_name"`
	HotelAddress string `db:"hotel_address"`
	ChainName    string `db:"chain_name"`
	Category     int    `db:"category"`
}

const roomColumns = `id, hotel_id, number, capacity, price, area, amenities, created_at, updated_at`

type RoomRepository struct{ db *sqlx.DB }

func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*hotel.Room, error) {
	var row roomRow
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, hotel.ErrRoomNotFound
		}
		return nil, fmt.Errorf("部屋取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *RoomRepository) GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*hotel.Room, error) {
	var row roomRow
	// 部屋行のロックが同一部屋に対する重複判定と挿入を直列化する
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 FOR UPDATE`
	if err := UnwrapTx(tx).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, hotel.ErrRoomNotFound
		}
		return nil, fmt.Errorf("部屋取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *RoomRepository) SearchAvailable(ctx context.Context, c hotel.SearchCriteria) ([]*hotel.AvailableRoom, error) {
	// 占有中の予約が候補期間と重なる部屋を集合除外してから条件を適用する
	query := `
		SELECT r.id, r.hotel_id, r.number, r.capacity, r.price, r.area, r.amenities,
		       r.created_at, r.updated_at,
		       h.name AS hotel_name, h.address AS hotel_address, h.category AS category,
		       hc.name AS chain_name
		FROM rooms r
		JOIN hotels h ON r.hotel_id = h.id
		JOIN hotel_chains hc ON h.chain_id = hc.id
		WHERE r.id NOT IN (
			SELECT room_id FROM bookings
			WHERE status IN ('booked', 'checked_in') AND start_date <= $2 AND end_date >= $1
			UNION
			SELECT room_id FROM rentings
			WHERE status = 'checked_in' AND start_date <= $2 AND end_date >= $1
		)`
	args := []interface{}{c.Stay.Start, c.Stay.End}

	if c.Capacity != nil {
		args = append(args, *c.Capacity)
		query += ` AND r.capacity >= $` + strconv.Itoa(len(args))
	}
	if c.Area != nil {
		// エリアは部屋のエリアとホテル住所のどちらかに部分一致すればよい
		args = append(args, "%"+*c.Area+"%")
		n := strconv.Itoa(len(args))
		query += ` AND (r.area ILIKE $` + n + ` OR h.address ILIKE $` + n + `)`
	}
	if c.ChainName != nil {
		args = append(args, "%"+*c.ChainName+"%")
		query += ` AND hc.name ILIKE $` + strconv.Itoa(len(args))
	}
	if c.Category != nil {
		args = append(args, *c.Category)
		query += ` AND h.category = $` + strconv.Itoa(len(args))
	}
	if c.MaxPrice != nil {
		args = append(args, *c.MaxPrice)
		query += ` AND r.price <= $` + strconv.Itoa(len(args))
	}

	var rows []availableRoomRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("空室検索に失敗: %w", err)
	}
	result := make([]*hotel.AvailableRoom, len(rows))
	for i, row := range rows {
		result[i] = &hotel.AvailableRoom{
			Room:         *row.roomRow.toEntity(),
			HotelName:    row.HotelName,
			HotelAddress: row.HotelAddress,
			ChainName:    row.ChainName,
			Category:     row.Category,
		}
	}
	return result, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx transaction.Tx, room *hotel.Room) error {
	query := `UPDATE rooms SET price = $1, capacity = $2, area = $3, amenities = $4, updated_at = NOW() WHERE id = $5`
	result, err := UnwrapTx(tx).ExecContext(ctx, query, room.Price, room.Capacity, room.Area, pq.Array(room.Amenities), room.ID)
	if err != nil {
		return fmt.Errorf("部屋更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return hotel.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("部屋削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return hotel.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) HasActiveReservations(ctx context.Context, tx transaction.Tx, roomID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings WHERE room_id = $1 AND status IN ('booked', 'checked_in')
			UNION ALL
			SELECT 1 FROM rentings WHERE room_id = $1 AND status = 'checked_in'
		)`
	var exists bool
	if err := UnwrapTx(tx).GetContext(ctx, &exists, query, roomID); err != nil {
		return false, fmt.Errorf("占有中予約の確認に失敗: %w", err)
	}
	return exists, nil
}

var _ hotel.RoomRepository = (*RoomRepository)(nil)
