package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
)

// MockAvailabilityService はAvailabilityServiceInterfaceのモック
type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) SearchAvailableRooms(ctx context.Context, input application.SearchAvailableRoomsInput) ([]*hotel.AvailableRoom, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotel.AvailableRoom), args.Error(1)
}

func (m *MockAvailabilityService) GetRoomOccupancy(ctx context.Context, roomID int64) ([]reservation.Reservation, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reservation.Reservation), args.Error(1)
}

func TestAvailabilityHandler_Search(t *testing.T) {
	e := NewTestEcho()

	t.Run("正常に空室を検索できる", func(t *testing.T) {
		mockService := new(MockAvailabilityService)
		mockService.On("SearchAvailableRooms", mock.Anything, mock.MatchedBy(func(input application.SearchAvailableRoomsInput) bool {
			return input.Capacity != nil && *input.Capacity == 2 &&
				input.Area != nil && *input.Area == "東京" &&
				input.ChainName == nil
		})).Return([]*hotel.AvailableRoom{
			{
				Room:         *newTestRoom(),
				HotelName:    "グランドホテル東京",
				HotelAddress: "東京都港区1-1",
				ChainName:    "グランドチェーン",
				Category:     4,
			},
		}, nil)

		handler := NewAvailabilityHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/rooms/available?start_date=2026-06-01&end_date=2026-06-05&capacity=2&area=東京", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Search(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []AvailableRoomResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "101", resp[0].Number)
		assert.Equal(t, "グランドホテル東京", resp[0].HotelName)
		assert.Equal(t, 4, resp[0].Category)

		mockService.AssertExpectations(t)
	})

	t.Run("開始日がない場合はエラー", func(t *testing.T) {
		mockService := new(MockAvailabilityService)
		handler := NewAvailabilityHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/rooms/available?end_date=2026-06-05", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Search(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Contains(t, he.Message, "start_date")
		mockService.AssertNotCalled(t, "SearchAvailableRooms", mock.Anything, mock.Anything)
	})

	t.Run("不正な価格上限でエラー", func(t *testing.T) {
		mockService := new(MockAvailabilityService)
		handler := NewAvailabilityHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/rooms/available?start_date=2026-06-01&end_date=2026-06-05&max_price=abc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Search(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("該当なしの場合は空配列を返す", func(t *testing.T) {
		mockService := new(MockAvailabilityService)
		mockService.On("SearchAvailableRooms", mock.Anything, mock.AnythingOfType("application.SearchAvailableRoomsInput")).
			Return([]*hotel.AvailableRoom{}, nil)

		handler := NewAvailabilityHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/rooms/available?start_date=2026-06-01&end_date=2026-06-05", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Search(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestAvailabilityHandler_Occupancy(t *testing.T) {
	e := NewTestEcho()

	t.Run("占有中の予約・滞在を種別付きで返す", func(t *testing.T) {
		mockService := new(MockAvailabilityService)
		mockService.On("GetRoomOccupancy", mock.Anything, int64(10)).Return([]reservation.Reservation{
			{
				Kind: reservation.KindBooking, ID: 1, RoomID: 10, CustomerID: 5,
				Stay: mustStay(t, "2026-06-01", "2026-06-05"), Status: "booked",
			},
			{
				Kind: reservation.KindRenting, ID: 2, RoomID: 10, CustomerID: 6,
				Stay: mustStay(t, "2026-06-10", "2026-06-12"), Status: "checked_in",
			},
		}, nil)

		handler := NewAvailabilityHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/rooms/10/reservations", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("10")

		err := handler.Occupancy(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []OccupancyResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "booking", resp[0].Kind)
		assert.Equal(t, "renting", resp[1].Kind)
		assert.Equal(t, "2026-06-10", resp[1].StartDate)
	})

	t.Run("存在しない客室でエラー", func(t *testing.T) {
		mockService := new(MockAvailabilityService)
		mockService.On("GetRoomOccupancy", mock.Anything, int64(999)).Return(nil, hotel.ErrRoomNotFound)

		handler := NewAvailabilityHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/rooms/999/reservations", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("999")

		err := handler.Occupancy(c)

		require.ErrorIs(t, err, hotel.ErrRoomNotFound)
	})
}
