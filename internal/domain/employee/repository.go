package employee

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

// Repository は従業員リポジトリのインターフェース
type Repository interface {
	// List は従業員一覧を取得する。hotelID が nil 以外なら所属で絞り込む
	List(ctx context.Context, hotelID *int64) ([]*Employee, error)

	// GetByID はIDから従業員を取得する
	GetByID(ctx context.Context, id int64) (*Employee, error)

	// Exists は従業員の存在をトランザクション内で確認する
	Exists(ctx context.Context, tx transaction.Tx, id int64) (bool, error)

	// Update は従業員を更新する（トランザクション必須）
	Update(ctx context.Context, tx transaction.Tx, e *Employee) error

	// Delete は従業員を削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error

	// ManagesHotel は従業員がいずれかのホテルの支配人かを返す
	ManagesHotel(ctx context.Context, tx transaction.Tx, employeeID int64) (bool, error)

	// HasActiveRentings は従業員が対応した占有中の滞在があるかを返す
	HasActiveRentings(ctx context.Context, tx transaction.Tx, employeeID int64) (bool, error)
}
