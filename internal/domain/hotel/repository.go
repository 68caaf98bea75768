package hotel

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

// ChainRepository はホテルチェーンリポジトリのインターフェース
type ChainRepository interface {
	// List はチェーン一覧を取得する
	List(ctx context.Context) ([]*Chain, error)

	// GetByID はIDからチェーンを取得する
	GetByID(ctx context.Context, id int64) (*Chain, error)
}

// HotelFilter はホテル一覧の絞り込み条件
type HotelFilter struct {
	ChainID  *int64
	Category *int
}

// HotelRepository はホテルリポジトリのインターフェース
type HotelRepository interface {
	// List はホテル一覧を取得する
	List(ctx context.Context, filter HotelFilter) ([]*Hotel, error)

	// GetByID はIDからホテルを取得する
	GetByID(ctx context.Context, id int64) (*Hotel, error)

	// GetForUpdate はIDからホテルを行ロック付きで取得する（トランザクション必須）
	GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*Hotel, error)

	// Update はホテルを更新する（トランザクション必須）
	Update(ctx context.Context, tx transaction.Tx, h *Hotel) error

	// Delete はホテルを削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error

	// HasActiveReservations はホテル配下の部屋に占有中の予約があるかを返す
	HasActiveReservations(ctx context.Context, tx transaction.Tx, hotelID int64) (bool, error)

	// CapacityReport はホテルごとの定員内訳を集計する
	CapacityReport(ctx context.Context) ([]*CapacitySummary, error)

	// AreaReport はホテル・エリアごとの価格帯を集計する
	AreaReport(ctx context.Context) ([]*AreaSummary, error)
}

// RoomRepository は客室リポジトリのインターフェース
type RoomRepository interface {
	// GetByID はIDから客室を取得する
	GetByID(ctx context.Context, id int64) (*Room, error)

	// GetForUpdate はIDから客室を行ロック付きで取得する（トランザクション必須）
	// 同一部屋に対する重複判定と挿入を直列化するために使用する
	GetForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*Room, error)

	// SearchAvailable は指定期間に占有中の予約がない客室を条件付きで検索する
	// 重複判定は集合除外としてストア側で実行される。結果の順序は不定
	SearchAvailable(ctx context.Context, c SearchCriteria) ([]*AvailableRoom, error)

	// Update は客室を更新する（トランザクション必須）
	Update(ctx context.Context, tx transaction.Tx, r *Room) error

	// Delete は客室を削除する（トランザクション必須）
	Delete(ctx context.Context, tx transaction.Tx, id int64) error

	// HasActiveReservations は客室に占有中の予約があるかを返す
	HasActiveReservations(ctx context.Context, tx transaction.Tx, roomID int64) (bool, error)
}
