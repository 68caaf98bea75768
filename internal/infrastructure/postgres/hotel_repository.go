package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

type chainRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Address   string    `db:"address"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type hotelRow struct {
	ID        int64     `db:"id"`
	ChainID   int64     `db:"chain_id"`
	Name      string    `db:"name"`
	Category  int       `db:"category"`
	Address   string    `db:"address"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	ManagerID *int64    `db:"manager_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *hotelRow) toEntity() *hotel.Hotel {
	return &hotel.Hotel{
		ID:        r.ID,
		ChainID:   r.ChainID,
		Name:      r.Name,
		Category:  r.Category,
		Address:   r.Address,
		Email:     r.Email,
		Phone:     r.Phone,
		ManagerID: r.ManagerID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

const hotelColumns = `id, chain_id, name, category, address, email, phone, manager_id, created_at, updated_at`

type ChainRepository struct{ db *sqlx.DB }

func NewChainRepository(db *sqlx.DB) *ChainRepository {
	return &ChainRepository{db: db}
}

func (r *ChainRepository) List(ctx context.Context) ([]*hotel.Chain, error) {
	var rows []chainRow
	query := `SELECT id, name, address, email, phone, created_at, updated_at FROM hotel_chains ORDER BY name`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("チェーン一覧取得に失敗: %w", err)
	}
	result := make([]*hotel.Chain, len(rows))
	for i, row := range rows {
		result[i] = &hotel.Chain{
			ID: row.ID, Name: row.Name, Address: row.Address,
			Email: row.Email, Phone: row.Phone,
			CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
		}
	}
	return result, nil
}

func (r *ChainRepository) GetByID(ctx context.Context, id int64) (*hotel.Chain, error) {
	var row chainRow
	query := `SELECT id, name, address, email, phone, created_at, updated_at FROM hotel_chains WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, hotel.ErrChainNotFound
		}
		return nil, fmt.Errorf("チェーン取得に失敗: %w", err)
	}
	return &hotel.Chain{
		ID: row.ID, Name: row.Name, Address: row.Address,
		Email: row.Email, Phone: row.Phone,
		CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
	}, nil
}

var _ hotel.ChainRepository = (*ChainRepository)(nil)

type HotelRepository struct{ db *sqlx.DB }

func NewHotelRepository(db *sqlx.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) List(ctx context.Context, filter hotel.HotelFilter) ([]*hotel.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE 1=1`
	args := []interface{}{}
	if filter.ChainID != nil {
		args = append(args, *filter.ChainID)
		query += fmt.Sprintf(" AND chain_id = $%d", len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY name"

	var rows []hotelRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("ホテル一覧取得に失敗: %w", err)
	}
	result := make([]*hotel.Hotel, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*hotel.Hotel, error) {
	var row hotelRow
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, hotel.ErrHotelNotFound
		}
		return nil, fmt.Errorf("ホテル取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *HotelRepository) GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*hotel.Hotel, error) {
	var row hotelRow
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1 FOR UPDATE`
	if err := UnwrapTx(tx).GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, hotel.ErrHotelNotFound
		}
		return nil, fmt.Errorf("ホテル取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *HotelRepository) Update(ctx context.Context, tx transaction.Tx, h *hotel.Hotel) error {
	query := `UPDATE hotels SET chain_id = $1, name = $2, category = $3, address = $4, email = $5, phone = $6, manager_id = $7, updated_at = NOW() WHERE id = $8`
	result, err := UnwrapTx(tx).ExecContext(ctx, query, h.ChainID, h.Name, h.Category, h.Address, h.Email, h.Phone, h.ManagerID, h.ID)
	if err != nil {
		return fmt.Errorf("ホテル更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return hotel.ErrHotelNotFound
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ホテル削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return hotel.ErrHotelNotFound
	}
	return nil
}

func (r *HotelRepository) HasActiveReservations(ctx context.Context, tx transaction.Tx, hotelID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings WHERE hotel_id = $1 AND status IN ('booked', 'checked_in')
			UNION ALL
			SELECT 1 FROM rentings WHERE hotel_id = $1 AND status = 'checked_in'
		)`
	var exists bool
	if err := UnwrapTx(tx).GetContext(ctx, &exists, query, hotelID); err != nil {
		return false, fmt.Errorf("占有中予約の確認に失敗: %w", err)
	}
	return exists, nil
}

func (r *HotelRepository) CapacityReport(ctx context.Context) ([]*hotel.CapacitySummary, error) {
	query := `
		SELECT h.name AS hotel_name, COUNT(*) AS total_rooms,
		       SUM(CASE WHEN r.capacity = 1 THEN 1 ELSE 0 END) AS single_rooms,
		       SUM(CASE WHEN r.capacity = 2 THEN 1 ELSE 0 END) AS double_rooms,
		       SUM(CASE WHEN r.capacity = 3 THEN 1 ELSE 0 END) AS triple_rooms,
		       SUM(CASE WHEN r.capacity >= 4 THEN 1 ELSE 0 END) AS other_rooms
		FROM hotels h
		JOIN rooms r ON h.id = r.hotel_id
		GROUP BY h.id, h.name
		ORDER BY h.name`
	var rows []struct {
		HotelName   string `db:"hotel_name"`
		TotalRooms  int    `db:"total_rooms"`
		SingleRooms int    `db:"single_rooms"`
		DoubleRooms int    `db:"double_rooms"`
		TripleRooms int    `db:"triple_rooms"`
		OtherRooms  int    `db:"other_rooms"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("定員レポート取得に失敗: %w", err)
	}
	result := make([]*hotel.CapacitySummary, len(rows))
	for i, row := range rows {
		result[i] = &hotel.CapacitySummary{
			HotelName: row.HotelName, TotalRooms: row.TotalRooms,
			SingleRooms: row.SingleRooms, DoubleRooms: row.DoubleRooms,
			TripleRooms: row.TripleRooms, OtherRooms: row.OtherRooms,
		}
	}
	return result, nil
}

func (r *HotelRepository) AreaReport(ctx context.Context) ([]*hotel.AreaSummary, error) {
	query := `
		SELECT h.name AS hotel_name, r.area, COUNT(*) AS room_count,
		       MIN(r.price) AS min_price, MAX(r.price) AS max_price, AVG(r.price) AS avg_price
		FROM hotels h
		JOIN rooms r ON h.id = r.hotel_id
		GROUP BY h.id, h.name, r.area
		ORDER BY h.name, r.area`
	var rows []struct {
		HotelName string  `db:"hotel_name"`
		Area      string  `db:"area"`
		RoomCount int     `db:"room_count"`
		MinPrice  float64 `db:"min_price"`
		MaxPrice  float64 `db:"max_price"`
		AvgPrice  float64 `db:"avg_price"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("エリアレポート取得に失敗: %w", err)
	}
	result := make([]*hotel.AreaSummary, len(rows))
	for i, row := range rows {
		result[i] = &hotel.AreaSummary{
			HotelName: row.HotelName, Area: row.Area, RoomCount: row.RoomCount,
			MinPrice: row.MinPrice, MaxPrice: row.MaxPrice, AvgPrice: row.AvgPrice,
		}
	}
	return result, nil
}

var _ hotel.HotelRepository = (*HotelRepository)(nil)
