package renting

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

// Repository は滞在リポジトリのインターフェース
type Repository interface {
	// Create は新しい滞在を作成する（トランザクション必須）
	// OriginBookingID が設定されている場合、元予約の checked_in への遷移は
	// 同一トランザクション内で呼び出し側が行う
	Create(ctx context.Context, tx transaction.Tx, r *Renting) error

	// GetByID はIDから滞在を取得する
	GetByID(ctx context.Context, id int64) (*Renting, error)

	// GetForUpdate はIDから滞在を行ロック付きで取得する（トランザクション必須）
	GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*Renting, error)

	// GetByCustomerID は顧客IDから滞在一覧を取得する
	GetByCustomerID(ctx context.Context, customerID int64) ([]*Renting, error)

	// Update は滞在の状態を更新する（トランザクション必須）
	Update(ctx context.Context, tx transaction.Tx, r *Renting) error
}
