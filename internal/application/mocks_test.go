package application

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/booking"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/employee"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/interval"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/renting"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

// === Mock implementations ===

// MockTxManager implements transaction.Manager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transaction.Tx), args.Error(1)
}

// MockTx implements transaction.Tx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTx) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// newMockTxEnv は常にコミット/ロールバック可能なトランザクション環境を返す
func newMockTxEnv() (*MockTxManager, *MockTx) {
	tx := new(MockTx)
	tx.On("Commit").Return(nil).Maybe()
	tx.On("Rollback").Return(nil).Maybe()
	manager := new(MockTxManager)
	manager.On("Begin", mock.Anything).Return(tx, nil)
	return manager, tx
}

// MockBookingRepository implements booking.Repository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, tx transaction.Tx, b *booking.Booking) error {
	args := m.Called(ctx, tx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*booking.Booking, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]*booking.Booking, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, tx transaction.Tx, b *booking.Booking) error {
	args := m.Called(ctx, tx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelNoShows(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockRentingRepository implements renting.Repository
type MockRentingRepository struct {
	mock.Mock
}

func (m *MockRentingRepository) Create(ctx context.Context, tx transaction.Tx, r *renting.Renting) error {
	args := m.Called(ctx, tx, r)
	return args.Error(0)
}

func (m *MockRentingRepository) GetByID(ctx context.Context, id int64) (*renting.Renting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*renting.Renting), args.Error(1)
}

func (m *MockRentingRepository) GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*renting.Renting, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*renting.Renting), args.Error(1)
}

func (m *MockRentingRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]*renting.Renting, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*renting.Renting), args.Error(1)
}

func (m *MockRentingRepository) Update(ctx context.Context, tx transaction.Tx, r *renting.Renting) error {
	args := m.Called(ctx, tx, r)
	return args.Error(0)
}

// MockRoomRepository implements hotel.RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*hotel.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotel.Room), args.Error(1)
}

func (m *MockRoomRepository) GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*hotel.Room, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotel.Room), args.Error(1)
}

func (m *MockRoomRepository) SearchAvailable(ctx context.Context, c hotel.SearchCriteria) ([]*hotel.AvailableRoom, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotel.AvailableRoom), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, tx transaction.Tx, r *hotel.Room) error {
	args := m.Called(ctx, tx, r)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockRoomRepository) HasActiveReservations(ctx context.Context, tx transaction.Tx, roomID int64) (bool, error) {
	args := m.Called(ctx, tx, roomID)
	return args.Bool(0), args.Error(1)
}

// MockChainRepository implements hotel.ChainRepository
type MockChainRepository struct {
	mock.Mock
}

func (m *MockChainRepository) List(ctx context.Context) ([]*hotel.Chain, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotel.Chain), args.Error(1)
}

func (m *MockChainRepository) GetByID(ctx context.Context, id int64) (*hotel.Chain, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotel.Chain), args.Error(1)
}

// MockHotelRepository implements hotel.HotelRepository
type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) List(ctx context.Context, filter hotel.HotelFilter) ([]*hotel.Hotel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotel.Hotel), args.Error(1)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*hotel.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotel.Hotel), args.Error(1)
}

func (m *MockHotelRepository) GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*hotel.Hotel, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotel.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Update(ctx context.Context, tx transaction.Tx, h *hotel.Hotel) error {
	args := m.Called(ctx, tx, h)
	return args.Error(0)
}

func (m *MockHotelRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockHotelRepository) HasActiveReservations(ctx context.Context, tx transaction.Tx, hotelID int64) (bool, error) {
	args := m.Called(ctx, tx, hotelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockHotelRepository) CapacityReport(ctx context.Context) ([]*hotel.CapacitySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotel.CapacitySummary), args.Error(1)
}

func (m *MockHotelRepository) AreaReport(ctx context.Context) ([]*hotel.AreaSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotel.AreaSummary), args.Error(1)
}

// MockCustomerRepository implements customer.Repository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, tx transaction.Tx, id int64) (bool, error) {
	args := m.Called(ctx, tx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, tx transaction.Tx, c *customer.Customer) error {
	args := m.Called(ctx, tx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) HasActiveReservations(ctx context.Context, tx transaction.Tx, customerID int64) (bool, error) {
	args := m.Called(ctx, tx, customerID)
	return args.Bool(0), args.Error(1)
}

// MockEmployeeRepository implements employee.Repository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) List(ctx context.Context, hotelID *int64) ([]*employee.Employee, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employee.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Exists(ctx context.Context, tx transaction.Tx, id int64) (bool, error) {
	args := m.Called(ctx, tx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, tx transaction.Tx, e *employee.Employee) error {
	args := m.Called(ctx, tx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) ManagesHotel(ctx context.Context, tx transaction.Tx, employeeID int64) (bool, error) {
	args := m.Called(ctx, tx, employeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) HasActiveRentings(ctx context.Context, tx transaction.Tx, employeeID int64) (bool, error) {
	args := m.Called(ctx, tx, employeeID)
	return args.Bool(0), args.Error(1)
}

// MockReservationIndex implements reservation.Index
type MockReservationIndex struct {
	mock.Mock
}

func (m *MockReservationIndex) ActiveForRoom(ctx context.Context, roomID int64) ([]reservation.Reservation, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reservation.Reservation), args.Error(1)
}

func (m *MockReservationIndex) HasActiveOverlap(ctx context.Context, tx transaction.Tx, roomID int64, stay interval.Interval, excludeBookingID int64) (bool, error) {
	args := m.Called(ctx, tx, roomID, stay, excludeBookingID)
	return args.Bool(0), args.Error(1)
}
