package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dateLayout はリクエスト・レスポンスで使う日付形式
const dateLayout = "2006-01-02"

// parseIDParam はパスパラメータをIDとして解析する
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "無効なIDです")
	}
	return id, nil
}

// parseDate は YYYY-MM-DD 形式の日付を解析する
func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, field+"は YYYY-MM-DD 形式で指定してください")
	}
	return t, nil
}

// queryInt64 は任意の整数クエリパラメータを解析する
func queryInt64(c echo.Context, name string) (*int64, error) {
	value := c.QueryParam(name)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+"は整数で指定してください")
	}
	return &n, nil
}

// queryInt は任意の整数クエリパラメータを解析する
func queryInt(c echo.Context, name string) (*int, error) {
	value := c.QueryParam(name)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+"は整数で指定してください")
	}
	return &n, nil
}

// queryFloat は任意の数値クエリパラメータを解析する
func queryFloat(c echo.Context, name string) (*float64, error) {
	value := c.QueryParam(name)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+"は数値で指定してください")
	}
	return &f, nil
}

// queryString は任意の文字列クエリパラメータを返す
func queryString(c echo.Context, name string) *string {
	value := c.QueryParam(name)
	if value == "" {
		return nil
	}
	return &value
}
