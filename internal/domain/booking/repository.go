package booking

import (
	"context"
	"time"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

// Repository は予約リポジトリのインターフェース
type Repository interface {
	// Create は新しい予約を作成する（トランザクション必須）
	Create(ctx context.Context, tx transaction.Tx, b *Booking) error

	// GetByID はIDから予約を取得する
	GetByID(ctx context.Context, id int64) (*Booking, error)

	// GetForUpdate はIDから予約を行ロック付きで取得する（トランザクション必須）
	GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*Booking, error)

	// GetByCustomerID は顧客IDから予約一覧を取得する
	GetByCustomerID(ctx context.Context, customerID int64) ([]*Booking, error)

	// Update は予約の状態を更新する（トランザクション必須）
	Update(ctx context.Context, tx transaction.Tx, b *Booking) error

	// CancelNoShows は開始日を過ぎても booked のままの予約を一括キャンセルし、件数を返す
	CancelNoShows(ctx context.Context, before time.Time) (int64, error)
}
