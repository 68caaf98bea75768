package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/booking"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/employee"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/interval"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/renting"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
)

// ErrorResponse はエラーレスポンスの統一フォーマット
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// notFoundErrors は404にマッピングされるドメインエラー
var notFoundErrors = []error{
	hotel.ErrChainNotFound,
	hotel.ErrHotelNotFound,
	hotel.ErrRoomNotFound,
	customer.ErrCustomerNotFound,
	employee.ErrEmployeeNotFound,
	booking.ErrBookingNotFound,
	renting.ErrRentingNotFound,
}

// conflictErrors は409にマッピングされるドメインエラー
// 重複予約の拒否、ガードルール違反、不正な状態遷移が該当する
var conflictErrors = []error{
	reservation.ErrRoomUnavailable,
	hotel.ErrHotelHasActiveReservations,
	hotel.ErrRoomHasActiveReservations,
	customer.ErrCustomerHasActiveReservations,
	employee.ErrEmployeeManagesHotel,
	employee.ErrEmployeeHasActiveRentings,
	booking.ErrBookingNotBooked,
	booking.ErrBookingAlreadyCancelled,
	booking.ErrBookingAlreadyCheckedIn,
	booking.ErrBookingMismatch,
	renting.ErrRentingAlreadyClosed,
}

// validationErrors は400にマッピングされるドメインエラー
var validationErrors = []error{
	interval.ErrInvalidRange,
	interval.ErrStartDateInPast,
	hotel.ErrHotelNameRequired,
	hotel.ErrInvalidCategory,
	hotel.ErrInvalidCapacity,
	hotel.ErrInvalidPrice,
	customer.ErrFirstNameRequired,
	customer.ErrLastNameRequired,
	customer.ErrAddressRequired,
	employee.ErrNameRequired,
	employee.ErrHotelIDRequired,
	booking.ErrRoomIDRequired,
	booking.ErrCustomerIDRequired,
	renting.ErrEmployeeIDRequired,
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFromError はドメインエラーをHTTPステータスに変換する
func statusFromError(err error) (int, string) {
	switch {
	case matchesAny(err, validationErrors):
		return http.StatusBadRequest, err.Error()
	case matchesAny(err, notFoundErrors):
		return http.StatusNotFound, err.Error()
	case matchesAny(err, conflictErrors):
		return http.StatusConflict, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "処理がタイムアウトしました"
	default:
		return http.StatusInternalServerError, "内部サーバーエラー"
	}
}

// CustomHTTPErrorHandler はカスタムエラーハンドラー
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var code int
	var message string

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	} else {
		code, message = statusFromError(err)
	}

	// エラーログを出力（5xx エラーの場合）
	if code >= 500 {
		logger.Error("サーバーエラー",
			zap.Int("status", code),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	if err := c.JSON(code, ErrorResponse{
		Error: message,
		Code:  code,
	}); err != nil {
		logger.Error("エラーレスポンス送信失敗", zap.Error(err))
	}
}
