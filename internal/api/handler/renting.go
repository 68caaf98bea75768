package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/renting"
)

type RentingHandler struct {
	service ReservationServiceInterface
}

func NewRentingHandler(s ReservationServiceInterface) *RentingHandler {
	return &RentingHandler{service: s}
}

type CheckInRequest struct {
	RoomID     int64  `json:"room_id" validate:"required" example:"1"`
	CustomerID int64  `json:"customer_id" validate:"required" example:"1"`
	EmployeeID int64  `json:"employee_id" validate:"required" example:"1"`
	BookingID  *int64 `json:"booking_id,omitempty" example:"1"`
	StartDate  string `json:"start_date" validate:"required" example:"2026-06-01"`
	EndDate    string `json:"end_date" validate:"required" example:"2026-06-05"`
}

type RentingResponse struct {
	ID              int64  `json:"id" example:"1"`
	RoomID          int64  `json:"room_id" example:"1"`
	HotelID         int64  `json:"hotel_id" example:"1"`
	CustomerID      int64  `json:"customer_id" example:"1"`
	EmployeeID      int64  `json:"employee_id" example:"1"`
	StartDate       string `json:"start_date" example:"2026-06-01"`
	EndDate         string `json:"end_date" example:"2026-06-05"`
	Status          string `json:"status" example:"checked_in"`
	OriginBookingID *int64 `json:"origin_booking_id,omitempty"`
	CreatedAt       string `json:"created_at"`
}

func toRentingResponse(r *renting.Renting) RentingResponse {
	return RentingResponse{
		ID: r.ID, RoomID: r.RoomID, HotelID: r.HotelID,
		CustomerID: r.CustomerID, EmployeeID: r.EmployeeID,
		StartDate:       r.Stay.Start.Format(dateLayout),
		EndDate:         r.Stay.End.Format(dateLayout),
		Status:          string(r.Status),
		OriginBookingID: r.OriginBookingID,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

// Create godoc
// @Summary チェックイン（滞在を開始）
// @Description booking_id を指定すると既存予約の昇格、省略するとウォークインとして扱います
// @Tags rentings
// @Accept json
// @Produce json
// @Param request body CheckInRequest true "チェックイン情報"
// @Success 201 {object} RentingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "期間が重複、または予約内容と不一致"
// @Router /rentings [post]
func (h *RentingHandler) Create(c echo.Context) error {
	var req CheckInRequest
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
	r, err := h.service.CheckIn(c.Request().Context(), application.CheckInInput{
		RoomID: req.RoomID, CustomerID: req.CustomerID, EmployeeID: req.EmployeeID,
		BookingID: req.BookingID, StartDate: startDate, EndDate: endDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRentingResponse(r))
}

// GetByID godoc
// @Summary 滞在を取得
// @Tags rentings
// @Produce json
// @Param id path int true "滞在ID"
// @Success 200 {object} RentingResponse
// @Failure 404 {object} map[string]string
// @Router /rentings/{id} [get]
func (h *RentingHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	r, err := h.service.GetRenting(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRentingResponse(r))
}

// Close godoc
// @Summary チェックアウト（滞在を終了）
// @Tags rentings
// @Produce json
// @Param id path int true "滞在ID"
// @Success 200 {object} RentingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "既に終了済み"
// @Router /rentings/{id}/close [post]
func (h *RentingHandler) Close(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	r, err := h.service.CloseRenting(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRentingResponse(r))
}
