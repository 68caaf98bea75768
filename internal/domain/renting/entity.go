package renting

import (
	"time"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/interval"
)

// Status は滞在の状態を表す
type Status string

const (
	StatusCheckedIn Status = "checked_in"
	StatusClosed    Status = "closed"
)

// Renting は実際の滞在エンティティを表す
// 事前予約からの昇格（OriginBookingID あり）とウォークインの両方を扱う
type Renting struct {
	ID              int64
	RoomID          int64
	HotelID         int64
	CustomerID      int64
	EmployeeID      int64
	Stay            interval.Interval
	Status          Status
	OriginBookingID *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// New は新しい滞在を作成する
func New(roomID, customerID, employeeID int64, stay interval.Interval, originBookingID *int64) *Renting {
	now := time.Now()
	return &Renting{
		RoomID:          roomID,
		CustomerID:      customerID,
		EmployeeID:      employeeID,
		Stay:            stay,
		Status:          StatusCheckedIn,
		OriginBookingID: originBookingID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsActive は滞在が部屋を占有しているかを返す
func (r *Renting) IsActive() bool {
	return r.Status == StatusCheckedIn
}

// Close は滞在を終了させる（チェックアウト）
func (r *Renting) Close() error {
	if r.Status == StatusClosed {
		return ErrRentingAlreadyClosed
	}
	r.Status = StatusClosed
	r.UpdatedAt = time.Now()
	return nil
}

// Validate は滞在の検証を行う
func (r *Renting) Validate() error {
	if r.RoomID == 0 {
		return ErrRoomIDRequired
	}
	if r.CustomerID == 0 {
		return ErrCustomerIDRequired
	}
	if r.EmployeeID == 0 {
		return ErrEmployeeIDRequired
	}
	return nil
}
