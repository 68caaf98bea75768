package hotel

import (
	"time"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/interval"
)

// Chain はホテルチェーンエンティティを表す
type Chain struct {
	ID        int64
	Name      string
	Address   string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Hotel はホテルエンティティを表す
// ManagerID は支配人として指定された従業員を指す（任意）
type Hotel struct {
	ID        int64
	ChainID   int64
	Name      string
	Category  int
	Address   string
	Email     string
	Phone     string
	ManagerID *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate はホテルの検証を行う
func (h *Hotel) Validate() error {
	if h.Name == "" {
		return ErrHotelNameRequired
	}
	if h.Category < 1 || h.Category > 5 {
		return ErrInvalidCategory
	}
	return nil
}

// Room は客室エンティティを表す
// 重複判定エンジンからは識別子としてのみ参照される
type Room struct {
	ID        int64
	HotelID   int64
	Number    string
	Capacity  int
	Price     float64
	Area      string
	Amenities []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate は客室の検証を行う
func (r *Room) Validate() error {
	if r.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if r.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// UpdateHotelInput はホテル更新で変更可能なフィールドのみを列挙する
// nil のフィールドは変更しない
type UpdateHotelInput struct {
	ChainID   *int64
	Name      *string
	Category  *int
	Address   *string
	Email     *string
	Phone     *string
	ManagerID *int64
}

// UpdateRoomInput は客室更新で変更可能なフィールドのみを列挙する
type UpdateRoomInput struct {
	Price     *float64
	Capacity  *int
	Area      *string
	Amenities []string
}

// SearchCriteria は空室検索の条件を表す
// Stay 以外は任意で、指定された条件の論理積で絞り込む
type SearchCriteria struct {
	Stay      interval.Interval
	Capacity  *int
	Area      *string
	ChainName *string
	Category  *int
	MaxPrice  *float64
}

// AvailableRoom は空室検索の結果レコードを表す
type AvailableRoom struct {
	Room
	HotelName    string
	HotelAddress string
	ChainName    string
	Category     int
}

// CapacitySummary はホテルごとの客室定員内訳を表す
type CapacitySummary struct {
	HotelName   string
	TotalRooms  int
	SingleRooms int
	DoubleRooms int
	TripleRooms int
	OtherRooms  int
}

// AreaSummary はホテル・エリアごとの客室価格帯を表す
type AreaSummary struct {
	HotelName string
	Area      string
	RoomCount int
	MinPrice  float64
	MaxPrice  float64
	AvgPrice  float64
}
