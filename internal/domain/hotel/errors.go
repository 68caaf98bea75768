package hotel

import "errors"

// Hotel ドメインのエラー定義
var (
	ErrChainNotFound   = errors.New("ホテルチェーンが見つかりません")
	ErrHotelNotFound   = errors.New("ホテルが見つかりません")
	ErrRoomNotFound    = errors.New("部屋が見つかりません")
	ErrHotelNameRequired = errors.New("ホテル名は必須です")
	ErrInvalidCategory = errors.New("カテゴリは1から5の範囲である必要があります")
	ErrInvalidCapacity = errors.New("定員は1以上である必要があります")
	ErrInvalidPrice    = errors.New("価格は0以上である必要があります")

	// ガードルール違反。占有中の予約が参照している間は破壊的変更を拒否する
	ErrHotelHasActiveReservations = errors.New("ホテルには占有中の予約があるため変更できません")
	ErrRoomHasActiveReservations  = errors.New("部屋には占有中の予約があるため変更できません")
)
