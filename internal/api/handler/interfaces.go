package handler

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/booking"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/employee"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/renting"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
)

// HotelServiceInterface はホテルサービスのインターフェース
type HotelServiceInterface interface {
	ListChains(ctx context.Context) ([]*hotel.Chain, error)
	ListHotels(ctx context.Context, filter hotel.HotelFilter) ([]*hotel.Hotel, error)
	GetHotel(ctx context.Context, id int64) (*hotel.Hotel, error)
	UpdateHotel(ctx context.Context, id int64, input hotel.UpdateHotelInput) (*hotel.Hotel, error)
	DeleteHotel(ctx context.Context, id int64) error
	GetRoom(ctx context.Context, id int64) (*hotel.Room, error)
	UpdateRoom(ctx context.Context, id int64, input hotel.UpdateRoomInput) (*hotel.Room, error)
	DeleteRoom(ctx context.Context, id int64) error
	RoomCapacityReport(ctx context.Context) ([]hotel.CapacitySummary, error)
	RoomAreaReport(ctx context.Context) ([]hotel.AreaSummary, error)
}

// AvailabilityServiceInterface は空室検索サービスのインターフェース
type AvailabilityServiceInterface interface {
	SearchAvailableRooms(ctx context.Context, input application.SearchAvailableRoomsInput) ([]*hotel.AvailableRoom, error)
	GetRoomOccupancy(ctx context.Context, roomID int64) ([]reservation.Reservation, error)
}

// ReservationServiceInterface は予約サービスのインターフェース
type ReservationServiceInterface interface {
	RequestBooking(ctx context.Context, input application.RequestBookingInput) (*booking.Booking, error)
	CheckIn(ctx context.Context, input application.CheckInInput) (*renting.Renting, error)
	CancelBooking(ctx context.Context, id int64) (*booking.Booking, error)
	CloseRenting(ctx context.Context, id int64) (*renting.Renting, error)
	GetBooking(ctx context.Context, id int64) (*booking.Booking, error)
	GetRenting(ctx context.Context, id int64) (*renting.Renting, error)
	GetCustomerBookings(ctx context.Context, customerID int64) ([]*booking.Booking, error)
	GetCustomerRentings(ctx context.Context, customerID int64) ([]*renting.Renting, error)
}

// CustomerServiceInterface は顧客サービスのインターフェース
type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, input application.CreateCustomerInput) (*customer.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*customer.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, input customer.UpdateInput) (*customer.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

// EmployeeServiceInterface は従業員サービスのインターフェース
type EmployeeServiceInterface interface {
	ListEmployees(ctx context.Context, hotelID *int64) ([]*employee.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*employee.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, input employee.UpdateInput) (*employee.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
