package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
)

type CustomerHandler struct {
	service            CustomerServiceInterface
	reservationService ReservationServiceInterface
}

func NewCustomerHandler(s CustomerServiceInterface, rs ReservationServiceInterface) *CustomerHandler {
	return &CustomerHandler{service: s, reservationService: rs}
}

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required" example:"太郎"`
	LastName  string `json:"last_name" validate:"required" example:"山田"`
	Address   string `json:"address" validate:"required" example:"東京都千代田区1-1"`
}

type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Address   *string `json:"address,omitempty"`
}

type CustomerResponse struct {
	ID        int64  `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"太郎"`
	LastName  string `json:"last_name" example:"山田"`
	Address   string `json:"address" example:"東京都千代田区1-1"`
}

func toCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Address: c.Address,
	}
}

// Create godoc
// @Summary 顧客を登録
// @Tags customers
// @Accept json
// @Produce json
// @Param request body CreateCustomerRequest true "顧客情報"
// @Success 201 {object} CustomerResponse
// @Failure 400 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	cu, err := h.service.CreateCustomer(c.Request().Context(), application.CreateCustomerInput{
		FirstName: req.FirstName, LastName: req.LastName, Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCustomerResponse(cu))
}

// GetByID godoc
// @Summary 顧客を取得
// @Tags customers
// @Produce json
// @Param id path int true "顧客ID"
// @Success 200 {object} CustomerResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	cu, err := h.service.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(cu))
}

// Update godoc
// @Summary 顧客を更新
// @Description 占有中の予約がある間は拒否します
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "顧客ID"
// @Param request body UpdateCustomerRequest true "更新内容"
// @Success 200 {object} CustomerResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "占有中の予約あり"
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	cu, err := h.service.UpdateCustomer(c.Request().Context(), id, customer.UpdateInput{
		FirstName: req.FirstName, LastName: req.LastName, Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponse(cu))
}

// Delete godoc
// @Summary 顧客を削除
// @Description 占有中の予約がある間は拒否します
// @Tags customers
// @Param id path int true "顧客ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "占有中の予約あり"
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCustomer(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetBookings godoc
// @Summary 顧客の予約一覧を取得
// @Tags customers
// @Produce json
// @Param id path int true "顧客ID"
// @Success 200 {array} BookingResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/bookings [get]
func (h *CustomerHandler) GetBookings(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	bookings, err := h.reservationService.GetCustomerBookings(c.Request().Context(), id)
	if err != nil {
		return err
	}
	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = toBookingResponse(b)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetRentings godoc
// @Summary 顧客の滞在一覧を取得
// @Tags customers
// @Produce json
// @Param id path int true "顧客ID"
// @Success 200 {array} RentingResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/rentings [get]
func (h *CustomerHandler) GetRentings(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	rentings, err := h.reservationService.GetCustomerRentings(c.Request().Context(), id)
	if err != nil {
		return err
	}
	resp := make([]RentingResponse, len(rentings))
	for i, r := range rentings {
		resp[i] = toRentingResponse(r)
	}
	return c.JSON(http.StatusOK, resp)
}
