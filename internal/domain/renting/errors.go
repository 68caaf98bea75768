package renting

import "errors"

// Renting ドメインのエラー定義
var (
	ErrRentingNotFound      = errors.New("滞在が見つかりません")
	ErrRentingAlreadyClosed = errors.New("滞在は既に終了しています")
	ErrRoomIDRequired       = errors.New("部屋IDは必須です")
	ErrCustomerIDRequired   = errors.New("顧客IDは必須です")
	ErrEmployeeIDRequired   = errors.New("従業員IDは必須です")
)
