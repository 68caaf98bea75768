package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/employee"
)

type EmployeeHandler struct {
	service EmployeeServiceInterface
}

func NewEmployeeHandler(s EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{service: s}
}

type UpdateEmployeeRequest struct {
	Name    *string `json:"name,omitempty"`
	Role    *string `json:"role,omitempty"`
	HotelID *int64  `json:"hotel_id,omitempty"`
}

type EmployeeResponse struct {
	ID      int64  `json:"id" example:"1"`
	HotelID int64  `json:"hotel_id" example:"1"`
	Name    string `json:"name" example:"佐藤花子"`
	Role    string `json:"role" example:"front"`
}

func toEmployeeResponse(e *employee.Employee) EmployeeResponse {
	return EmployeeResponse{ID: e.ID, HotelID: e.HotelID, Name: e.Name, Role: e.Role}
}

// List godoc
// @Summary 従業員一覧を取得
// @Tags employees
// @Produce json
// @Param hotel_id query int false "所属ホテルID"
// @Success 200 {array} EmployeeResponse
// @Router /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	hotelID, err := queryInt64(c, "hotel_id")
	if err != nil {
		return err
	}
	employees, err := h.service.ListEmployees(c.Request().Context(), hotelID)
	if err != nil {
		return err
	}
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = toEmployeeResponse(e)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary 従業員を取得
// @Tags employees
// @Produce json
// @Param id path int true "従業員ID"
// @Success 200 {object} EmployeeResponse
// @Failure 404 {object} map[string]string
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	e, err := h.service.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(e))
}

// Update godoc
// @Summary 従業員を更新
// @Description 支配人指定または対応中の滞在がある間は異動を拒否します
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "従業員ID"
// @Param request body UpdateEmployeeRequest true "更新内容"
// @Success 200 {object} EmployeeResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "ガードルール違反"
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	e, err := h.service.UpdateEmployee(c.Request().Context(), id, employee.UpdateInput{
		Name: req.Name, Role: req.Role, HotelID: req.HotelID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(e))
}

// Delete godoc
// @Summary 従業員を削除
// @Description 支配人指定または対応中の滞在がある間は拒否します
// @Tags employees
// @Param id path int true "従業員ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "ガードルール違反"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteEmployee(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
