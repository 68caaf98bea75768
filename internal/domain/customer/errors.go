package customer

import "errors"

// Customer ドメインのエラー定義
var (
	ErrCustomerNotFound  = errors.New("顧客が見つかりません")
	ErrFirstNameRequired = errors.New("名は必須です")
	ErrLastNameRequired  = errors.New("姓は必須です")
	ErrAddressRequired   = errors.New("住所は必須です")

	// ガードルール違反
	ErrCustomerHasActiveReservations = errors.New("顧客には占有中の予約があるため変更できません")
)
