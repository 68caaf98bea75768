package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/booking"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/renting"
)

// MockCustomerService はCustomerServiceInterfaceのモック
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, input application.CreateCustomerInput) (*customer.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(ctx context.Context, id int64, input customer.UpdateInput) (*customer.Customer, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestCustomer() *customer.Customer {
	return &customer.Customer{
		ID:        5,
		FirstName: "太郎",
		LastName:  "山田",
		Address:   "東京都千代田区1-1",
	}
}

func TestCustomerHandler_Create(t *testing.T) {
	e := NewTestEcho()

	t.Run("正常に顧客を登録できる", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockService.On("CreateCustomer", mock.Anything, application.CreateCustomerInput{
			FirstName: "太郎", LastName: "山田", Address: "東京都千代田区1-1",
		}).Return(newTestCustomer(), nil)

		handler := NewCustomerHandler(mockService, nil)

		reqBody := `{
			"first_name": "太郎",
			"last_name": "山田",
			"address": "東京都千代田区1-1"
		}`
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(reqBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Create(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp CustomerResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "山田", resp.LastName)

		mockService.AssertExpectations(t)
	})

	t.Run("必須フィールド欠落でエラー", func(t *testing.T) {
		mockService := new(MockCustomerService)
		handler := NewCustomerHandler(mockService, nil)

		reqBody := `{"first_name": "太郎"}`
		req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(reqBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Create(c)

		require.Error(t, err)
		mockService.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
	})
}

func TestCustomerHandler_Update(t *testing.T) {
	e := NewTestEcho()

	t.Run("正常に顧客を更新できる", func(t *testing.T) {
		updated := newTestCustomer()
		updated.Address = "大阪市北区2-2"

		mockService := new(MockCustomerService)
		mockService.On("UpdateCustomer", mock.Anything, int64(5), mock.MatchedBy(func(input customer.UpdateInput) bool {
			return input.Address != nil && *input.Address == "大阪市北区2-2" && input.FirstName == nil
		})).Return(updated, nil)

		handler := NewCustomerHandler(mockService, nil)

		reqBody := `{"address": "大阪市北区2-2"}`
		req := httptest.NewRequest(http.MethodPut, "/customers/5", strings.NewReader(reqBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := handler.Update(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp CustomerResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "大阪市北区2-2", resp.Address)

		mockService.AssertExpectations(t)
	})

	t.Run("占有中の予約がある場合のエラーをそのまま返す", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockService.On("UpdateCustomer", mock.Anything, int64(5), mock.AnythingOfType("customer.UpdateInput")).
			Return(nil, customer.ErrCustomerHasActiveReservations)

		handler := NewCustomerHandler(mockService, nil)

		reqBody := `{"address": "大阪市北区2-2"}`
		req := httptest.NewRequest(http.MethodPut, "/customers/5", strings.NewReader(reqBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := handler.Update(c)

		require.ErrorIs(t, err, customer.ErrCustomerHasActiveReservations)
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	e := NewTestEcho()

	t.Run("正常に顧客を削除できる", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockService.On("DeleteCustomer", mock.Anything, int64(5)).Return(nil)

		handler := NewCustomerHandler(mockService, nil)

		req := httptest.NewRequest(http.MethodDelete, "/customers/5", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := handler.Delete(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("存在しない顧客でエラー", func(t *testing.T) {
		mockService := new(MockCustomerService)
		mockService.On("DeleteCustomer", mock.Anything, int64(999)).
			Return(customer.ErrCustomerNotFound)

		handler := NewCustomerHandler(mockService, nil)

		req := httptest.NewRequest(http.MethodDelete, "/customers/999", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("999")

		err := handler.Delete(c)

		require.ErrorIs(t, err, customer.ErrCustomerNotFound)
	})
}

func TestCustomerHandler_GetBookings(t *testing.T) {
	e := NewTestEcho()

	t.Run("顧客の予約一覧を取得できる", func(t *testing.T) {
		mockReservation := new(MockReservationService)
		mockReservation.On("GetCustomerBookings", mock.Anything, int64(5)).
			Return([]*booking.Booking{newTestBooking(t)}, nil)

		handler := NewCustomerHandler(nil, mockReservation)

		req := httptest.NewRequest(http.MethodGet, "/customers/5/bookings", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := handler.GetBookings(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []BookingResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, int64(5), resp[0].CustomerID)
	})
}

func TestCustomerHandler_GetRentings(t *testing.T) {
	e := NewTestEcho()

	t.Run("顧客の滞在一覧を取得できる", func(t *testing.T) {
		mockReservation := new(MockReservationService)
		mockReservation.On("GetCustomerRentings", mock.Anything, int64(5)).
			Return([]*renting.Renting{newTestRenting(t, nil)}, nil)

		handler := NewCustomerHandler(nil, mockReservation)

		req := httptest.NewRequest(http.MethodGet, "/customers/5/rentings", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := handler.GetRentings(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []RentingResponse
		err = json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "checked_in", resp[0].Status)
	})
}
