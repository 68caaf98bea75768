package booking

import "errors"

// Booking ドメインのエラー定義
var (
	ErrBookingNotFound         = errors.New("予約が見つかりません")
	ErrBookingNotBooked        = errors.New("予約はチェックイン可能な状態ではありません")
	ErrBookingAlreadyCancelled = errors.New("予約は既にキャンセルされています")
	ErrBookingAlreadyCheckedIn = errors.New("予約は既にチェックイン済みです")
	ErrBookingMismatch         = errors.New("予約の部屋または顧客がチェックイン内容と一致しません")
	ErrRoomIDRequired          = errors.New("部屋IDは必須です")
	ErrCustomerIDRequired      = errors.New("顧客IDは必須です")
)
