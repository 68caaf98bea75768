package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-hotel-reservation/internal/application"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
)

type AvailabilityHandler struct {
	service AvailabilityServiceInterface
}

func NewAvailabilityHandler(s AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{service: s}
}

type AvailableRoomResponse struct {
	RoomResponse
	HotelName    string `json:"hotel_name" example:"グランドホテル東京"`
	HotelAddress string `json:"hotel_address" example:"東京都港区1-1"`
	ChainName    string `json:"chain_name" example:"グランドチェーン"`
	Category     int    `json:"category" example:"4"`
}

func toAvailableRoomResponse(r *hotel.AvailableRoom) AvailableRoomResponse {
	return AvailableRoomResponse{
		RoomResponse: toRoomResponse(&r.Room),
		HotelName:    r.HotelName,
		HotelAddress: r.HotelAddress,
		ChainName:    r.ChainName,
		Category:     r.Category,
	}
}

// Search godoc
// @Summary 空室を検索
// @Description 指定期間に占有中の予約がない客室を条件付きで検索します
// @Tags rooms
// @Produce json
// @Param start_date query string true "開始日（YYYY-MM-DD）"
// @Param end_date query string true "終了日（YYYY-MM-DD）"
// @Param capacity query int false "最低定員"
// @Param area query string false "エリア"
// @Param chain query string false "チェーン名"
// @Param category query int false "カテゴリ（1〜5）"
// @Param max_price query number false "価格上限"
// @Success 200 {array} AvailableRoomResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/available [get]
func (h *AvailabilityHandler) Search(c echo.Context) error {
	startDate, err := parseDate(c.QueryParam("start_date"), "start_date")
	if err != nil {
		return err
	}
	endDate, err := parseDate(c.QueryParam("end_date"), "end_date")
	if err != nil {
		return err
	}
	capacity, err := queryInt(c, "capacity")
	if err != nil {
		return err
	}
	category, err := queryInt(c, "category")
	if err != nil {
		return err
	}
	maxPrice, err := queryFloat(c, "max_price")
	if err != nil {
		return err
	}

	rooms, err := h.service.SearchAvailableRooms(c.Request().Context(), application.SearchAvailableRoomsInput{
		StartDate: startDate,
		EndDate:   endDate,
		Capacity:  capacity,
		Area:      queryString(c, "area"),
		ChainName: queryString(c, "chain"),
		Category:  category,
		MaxPrice:  maxPrice,
	})
	if err != nil {
		return err
	}

	resp := make([]AvailableRoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = toAvailableRoomResponse(r)
	}
	return c.JSON(http.StatusOK, resp)
}

type OccupancyResponse struct {
	Kind       string `json:"kind" example:"booking"`
	ID         int64  `json:"id" example:"1"`
	RoomID     int64  `json:"room_id" example:"1"`
	CustomerID int64  `json:"customer_id" example:"1"`
	StartDate  string `json:"start_date" example:"2026-06-01"`
	EndDate    string `json:"end_date" example:"2026-06-05"`
	Status     string `json:"status" example:"booked"`
}

// Occupancy godoc
// @Summary 部屋の占有状況を取得
// @Description 部屋を占有中の予約・滞在を種別を問わず返します
// @Tags rooms
// @Produce json
// @Param id path int true "客室ID"
// @Success 200 {array} OccupancyResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/reservations [get]
func (h *AvailabilityHandler) Occupancy(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	occupancies, err := h.service.GetRoomOccupancy(c.Request().Context(), id)
	if err != nil {
		return err
	}
	resp := make([]OccupancyResponse, len(occupancies))
	for i, o := range occupancies {
		resp[i] = toOccupancyResponse(o)
	}
	return c.JSON(http.StatusOK, resp)
}

func toOccupancyResponse(o reservation.Reservation) OccupancyResponse {
	return OccupancyResponse{
		Kind:       string(o.Kind),
		ID:         o.ID,
		RoomID:     o.RoomID,
		CustomerID: o.CustomerID,
		StartDate:  o.Stay.Start.Format(dateLayout),
		EndDate:    o.Stay.End.Format(dateLayout),
		Status:     o.Status,
	}
}
