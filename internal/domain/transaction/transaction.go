package transaction

import "context"

// Tx はトランザクションを表すインターフェース
// ドメイン層がインフラ層（sqlx等）に依存しないようにするための抽象化
type Tx interface {
	// Commit はトランザクションをコミットする
	Commit() error
	// Rollback はトランザクションをロールバックする
	Rollback() error
}

// Manager はトランザクションを管理するインターフェース
type Manager interface {
	// Begin は新しいトランザクションを開始する
	Begin(ctx context.Context) (Tx, error)
}

// Within は fn を1つのトランザクション内で実行する
// fn がエラーを返した場合は全体をロールバックし、部分的な書き込みを残さない
func Within(ctx context.Context, m Manager, fn func(tx Tx) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
