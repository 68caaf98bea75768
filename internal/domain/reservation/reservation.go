package reservation

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/interval"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

// Kind は予約の種別を表す
type Kind string

const (
	KindBooking Kind = "booking"
	KindRenting Kind = "renting"
)

// Reservation は Booking と Renting を統合した読み取り専用ビュー
// 部屋の占有判定では両者を1つのドメインとして扱う
type Reservation struct {
	Kind       Kind
	ID         int64
	RoomID     int64
	CustomerID int64
	Stay       interval.Interval
	Status     string
}

// Index は部屋の占有状況を横断的に照会するインターフェース
type Index interface {
	// ActiveForRoom は部屋を占有中の予約（booked/checked_in の Booking と
	// checked_in の Renting）を種別を問わず返す。順序は不定
	ActiveForRoom(ctx context.Context, roomID int64) ([]Reservation, error)

	// HasActiveOverlap は指定期間と重なる占有中の予約が存在するかを返す
	// excludeBookingID が0以外の場合、その予約は判定から除外される
	// （予約を滞在へ昇格させる際に自分自身と衝突しないため）
	// トランザクション内で部屋ロックと組み合わせて呼び出すこと
	HasActiveOverlap(ctx context.Context, tx transaction.Tx, roomID int64, stay interval.Interval, excludeBookingID int64) (bool, error)
}
