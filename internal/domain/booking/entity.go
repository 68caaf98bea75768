package booking

import (
	"time"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/interval"
)

// Status は予約の状態を表す
type Status string

const (
	StatusBooked    Status = "booked"
	StatusCheckedIn Status = "checked_in"
	StatusCancelled Status = "cancelled"
)

// Booking は事前予約エンティティを表す
// チェックイン前の部屋の押さえであり、実際の滞在は Renting が表す
type Booking struct {
	ID         int64
	RoomID     int64
	HotelID    int64
	CustomerID int64
	Stay       interval.Interval
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// New は新しい予約を作成する
// HotelID は部屋の所属ホテルからリポジトリ層で補完される
func New(roomID, customerID int64, stay interval.Interval) *Booking {
	now := time.Now()
	return &Booking{
		RoomID:     roomID,
		CustomerID: customerID,
		Stay:       stay,
		Status:     StatusBooked,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsActive は予約が部屋を占有しているかを返す
// booked と checked_in が重複判定の対象となる
func (b *Booking) IsActive() bool {
	return b.Status == StatusBooked || b.Status == StatusCheckedIn
}

// CheckIn は予約をチェックイン済みに遷移させる
func (b *Booking) CheckIn() error {
	if b.Status != StatusBooked {
		return ErrBookingNotBooked
	}
	b.Status = StatusCheckedIn
	b.UpdatedAt = time.Now()
	return nil
}

// Cancel は予約をキャンセルする
func (b *Booking) Cancel() error {
	if b.Status == StatusCancelled {
		return ErrBookingAlreadyCancelled
	}
	if b.Status == StatusCheckedIn {
		return ErrBookingAlreadyCheckedIn
	}
	b.Status = StatusCancelled
	b.UpdatedAt = time.Now()
	return nil
}

// Validate は予約の検証を行う
func (b *Booking) Validate() error {
	if b.RoomID == 0 {
		return ErrRoomIDRequired
	}
	if b.CustomerID == 0 {
		return ErrCustomerIDRequired
	}
	return nil
}
