package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/booking"
)

type BookingHandler struct {
	service ReservationServiceInterface
}

func NewBookingHandler(s ReservationServiceInterface) *BookingHandler {
	return &BookingHandler{service: s}
}

type CreateBookingRequest struct {
	RoomID     int64  `json:"room_id" validate:"required" example:"1"`
	CustomerID int64  `json:"customer_id" validate:"required" example:"1"`
	StartDate  string `json:"start_date" validate:"required" example:"2026-06-01"`
	EndDate    string `json:"end_date" validate:"required" example:"2026-06-05"`
}

type BookingResponse struct {
	ID         int64  `json:"id" example:"1"`
	RoomID     int64  `json:"room_id" example:"1"`
	HotelID    int64  `json:"hotel_id" example:"1"`
	CustomerID int64  `json:"customer_id" example:"1"`
	StartDate  string `json:"start_date" example:"2026-06-01"`
	EndDate    string `json:"end_date" example:"2026-06-05"`
	Status     string `json:"status" example:"booked"`
	CreatedAt  string `json:"created_at"`
}

func toBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID: b.ID, RoomID: b.RoomID, HotelID: b.HotelID, CustomerID: b.CustomerID,
		StartDate: b.Stay.Start.Format(dateLayout),
		EndDate:   b.Stay.End.Format(dateLayout),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// Create godoc
// @Summary 予約を作成
// @Description 指定期間の部屋を事前予約します。期間が重なる場合は409を返します
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "予約情報"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "期間が重複"
// @Router /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	startDate, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return err
	}
	endDate, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		return err
	}
	b, err := h.service.RequestBooking(c.Request().Context(), application.RequestBookingInput{
		RoomID: req.RoomID, CustomerID: req.CustomerID,
		StartDate: startDate, EndDate: endDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBookingResponse(b))
}

// GetByID godoc
// @Summary 予約を取得
// @Tags bookings
// @Produce json
// @Param id path int true "予約ID"
// @Success 200 {object} BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	b, err := h.service.GetBooking(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(b))
}

// Cancel godoc
// @Summary 予約をキャンセル
// @Description チェックイン済みの予約はキャンセルできません
// @Tags bookings
// @Produce json
// @Param id path int true "予約ID"
// @Success 200 {object} BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "不正な状態遷移"
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	b, err := h.service.CancelBooking(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(b))
}
