package customer

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

// Repository は顧客リポジトリのインターフェース
type Repository interface {
	// Create は新しい顧客を作成する
	Create(ctx context.Context, c *Customer) error

	// GetByID はIDから顧客を取得する
	GetByID(ctx context.Context, id int64) (*Customer, error)

	// Exists は顧客の存在をトランザクション内で確認する
	// 予約挿入と同一トランザクションで呼ぶことで確認と挿入の競合を防ぐ
	Exists(ctx context.Context, tx transaction.Tx, id int64) (bool, error)

	// Update は顧客を更新する（トランザクション必須）
	Update(ctx context.Context, tx transaction.Tx, c *Customer) error

	// Delete は顧客を削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error

	// HasActiveReservations は顧客に占有中の予約があるかを返す
	HasActiveReservations(ctx context.Context, tx transaction.Tx, customerID int64) (bool, error)
}
