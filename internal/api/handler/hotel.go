package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
)

type HotelHandler struct {
	service HotelServiceInterface
}

func NewHotelHandler(s HotelServiceInterface) *HotelHandler {
	return &HotelHandler{service: s}
}

type ChainResponse struct {
	ID      int64  `json:"id" example:"1"`
	Name    string `json:"name" example:"グランドチェーン"`
	Address string `json:"address" example:"東京都港区1-1"`
	Email   string `json:"email" example:"info@example.com"`
	Phone   string `json:"phone" example:"03-0000-0000"`
}

type HotelResponse struct {
	ID        int64  `json:"id" example:"1"`
	ChainID   int64  `json:"chain_id" example:"1"`
	Name      string `json:"name" example:"グランドホテル東京"`
	Category  int    `json:"category" example:"4"`
	Address   string `json:"address" example:"東京都港区1-1"`
	Email     string `json:"email" example:"tokyo@example.com"`
	Phone     string `json:"phone" example:"03-0000-0001"`
	ManagerID *int64 `json:"manager_id,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type RoomResponse struct {
	ID        int64    `json:"id" example:"1"`
	HotelID   int64    `json:"hotel_id" example:"1"`
	Number    string   `json:"number" example:"101"`
	Capacity  int      `json:"capacity" example:"2"`
	Price     float64  `json:"price" example:"12000"`
	Area      string   `json:"area" example:"東京"`
	Amenities []string `json:"amenities" example:"wifi,tv"`
}

func toChainResponse(ch *hotel.Chain) ChainResponse {
	return ChainResponse{
		ID: ch.ID, Name: ch.Name, Address: ch.Address,
		Email: ch.Email, Phone: ch.Phone,
	}
}

func toHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID: h.ID, ChainID: h.ChainID, Name: h.Name, Category: h.Category,
		Address: h.Address, Email: h.Email, Phone: h.Phone, ManagerID: h.ManagerID,
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
		UpdatedAt: h.UpdatedAt.Format(time.RFC3339),
	}
}

func toRoomResponse(r *hotel.Room) RoomResponse {
	return RoomResponse{
		ID: r.ID, HotelID: r.HotelID, Number: r.Number,
		Capacity: r.Capacity, Price: r.Price, Area: r.Area, Amenities: r.Amenities,
	}
}

// ListChains godoc
// @Summary ホテルチェーン一覧を取得
// @Tags hotels
// @Produce json
// @Success 200 {array} ChainResponse
// @Router /chains [get]
func (h *HotelHandler) ListChains(c echo.Context) error {
	chains, err := h.service.ListChains(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]ChainResponse, len(chains))
	for i, ch := range chains {
		resp[i] = toChainResponse(ch)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListHotels godoc
// @Summary ホテル一覧を取得
// @Tags hotels
// @Produce json
// @Param chain_id query int false "チェーンID"
// @Param category query int false "カテゴリ（1〜5）"
// @Success 200 {array} HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c echo.Context) error {
	chainID, err := queryInt64(c, "chain_id")
	if err != nil {
		return err
	}
	category, err := queryInt(c, "category")
	if err != nil {
		return err
	}
	hotels, err := h.service.ListHotels(c.Request().Context(), hotel.HotelFilter{
		ChainID: chainID, Category: category,
	})
	if err != nil {
		return err
	}
	resp := make([]HotelResponse, len(hotels))
	for i, ho := range hotels {
		resp[i] = toHotelResponse(ho)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetHotel godoc
// @Summary ホテルを取得
// @Tags hotels
// @Produce json
// @Param id path int true "ホテルID"
// @Success 200 {object} HotelResponse
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	ho, err := h.service.GetHotel(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHotelResponse(ho))
}

type UpdateHotelRequest struct {
	ChainID   *int64  `json:"chain_id,omitempty"`
	Name      *string `json:"name,omitempty"`
	Category  *int    `json:"category,omitempty" validate:"omitempty,min=1,max=5"`
	Address   *string `json:"address,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	ManagerID *int64  `json:"manager_id,omitempty"`
}

// UpdateHotel godoc
// @Summary ホテルを更新
// @Description 占有中の予約がある間は別チェーンへの移動を拒否します
// @Tags hotels
// @Accept json
// @Produce json
// @Param id path int true "ホテルID"
// @Param request body UpdateHotelRequest true "更新内容"
// @Success 200 {object} HotelResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "占有中の予約あり"
// @Router /hotels/{id} [put]
func (h *HotelHandler) UpdateHotel(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req UpdateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ho, err := h.service.UpdateHotel(c.Request().Context(), id, hotel.UpdateHotelInput{
		ChainID: req.ChainID, Name: req.Name, Category: req.Category,
		Address: req.Address, Email: req.Email, Phone: req.Phone,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHotelResponse(ho))
}

// DeleteHotel godoc
// @Summary ホテルを削除
// @Description 配下の部屋に占有中の予約がある間は拒否します
// @Tags hotels
// @Param id path int true "ホテルID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "占有中の予約あり"
// @Router /hotels/{id} [delete]
func (h *HotelHandler) DeleteHotel(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteHotel(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetRoom godoc
// @Summary 客室を取得
// @Tags rooms
// @Produce json
// @Param id path int true "客室ID"
// @Success 200 {object} RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *HotelHandler) GetRoom(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	r, err := h.service.GetRoom(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(r))
}

type UpdateRoomRequest struct {
	Price     *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Capacity  *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Area      *string  `json:"area,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

// UpdateRoom godoc
// @Summary 客室を更新
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "客室ID"
// @Param request body UpdateRoomRequest true "更新内容"
// @Success 200 {object} RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *HotelHandler) UpdateRoom(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	r, err := h.service.UpdateRoom(c.Request().Context(), id, hotel.UpdateRoomInput{
		Price: req.Price, Capacity: req.Capacity, Area: req.Area, Amenities: req.Amenities,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(r))
}

// DeleteRoom godoc
// @Summary 客室を削除
// @Description 占有中の予約がある間は拒否します
// @Tags rooms
// @Param id path int true "客室ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "占有中の予約あり"
// @Router /rooms/{id} [delete]
func (h *HotelHandler) DeleteRoom(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteRoom(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type CapacityReportResponse struct {
	HotelName   string `json:"hotel_name" example:"グランドホテル東京"`
	TotalRooms  int    `json:"total_rooms" example:"50"`
	SingleRooms int    `json:"single_rooms" example:"20"`
	DoubleRooms int    `json:"double_rooms" example:"20"`
	TripleRooms int    `json:"triple_rooms" example:"5"`
	OtherRooms  int    `json:"other_rooms" example:"5"`
}

// RoomCapacityReport godoc
// @Summary ホテルごとの客室定員レポート
// @Tags reports
// @Produce json
// @Success 200 {array} CapacityReportResponse
// @Router /reports/room-capacity [get]
func (h *HotelHandler) RoomCapacityReport(c echo.Context) error {
	summaries, err := h.service.RoomCapacityReport(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]CapacityReportResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = CapacityReportResponse{
			HotelName: s.HotelName, TotalRooms: s.TotalRooms,
			SingleRooms: s.SingleRooms, DoubleRooms: s.DoubleRooms,
			TripleRooms: s.TripleRooms, OtherRooms: s.OtherRooms,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

type AreaReportResponse struct {
	HotelName string  `json:"hotel_name" example:"グランドホテル東京"`
	Area      string  `json:"area" example:"東京"`
	RoomCount int     `json:"room_count" example:"50"`
	MinPrice  float64 `json:"min_price" example:"8000"`
	MaxPrice  float64 `json:"max_price" example:"30000"`
	AvgPrice  float64 `json:"avg_price" example:"15000"`
}

// RoomAreaReport godoc
// @Summary ホテル・エリアごとの価格帯レポート
// @Tags reports
// @Produce json
// @Success 200 {array} AreaReportResponse
// @Router /reports/room-area [get]
func (h *HotelHandler) RoomAreaReport(c echo.Context) error {
	summaries, err := h.service.RoomAreaReport(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]AreaReportResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = AreaReportResponse{
			HotelName: s.HotelName, Area: s.Area, RoomCount: s.RoomCount,
			MinPrice: s.MinPrice, MaxPrice: s.MaxPrice, AvgPrice: s.AvgPrice,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
