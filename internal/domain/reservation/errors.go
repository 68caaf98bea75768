package reservation

import "errors"

// Reservation ドメインのエラー定義
var (
	// ErrRoomUnavailable は指定期間と重なる占有中の予約が存在する場合に返される
	// システム障害ではなく業務上の拒否であり、呼び出し側は競合として区別できる
	ErrRoomUnavailable = errors.New("指定期間は部屋が利用できません")
)
