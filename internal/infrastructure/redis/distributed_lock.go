package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrLockNotAcquired = errors.New("ロックを取得できませんでした")
	ErrLockNotOwned    = errors.New("ロックの所有者ではありません")
)

// RoomLock は部屋単位の分散ロック。予約確定処理の直列化に使用する。
type RoomLock struct {
	client *redis.Client
	key    string
	value  string
	ttl    time.Duration
}

// LockManager は部屋ごとの分散ロックを管理する
type LockManager struct {
	client *redis.Client
}

func NewLockManager(client *redis.Client) *LockManager {
	return &LockManager{client: client}
}

// roomLockKey は部屋IDからロックキーを生成する
func roomLockKey(roomID int64) string {
	return fmt.Sprintf("lock:room:%d", roomID)
}

// AcquireRoomLock は指定した部屋のロックを取得する
func (m *LockManager) AcquireRoomLock(ctx context.Context, roomID int64, ttl time.Duration) (*RoomLock, error) {
	lockKey := roomLockKey(roomID)
	lockValue := uuid.New().String()

	// SetNX を使用してロックを取得（キーが存在しない場合のみ設定）
	ok, err := m.client.SetNX(ctx, lockKey, lockValue, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("ロック取得に失敗: %w", err)
	}
	if !ok {
		return nil, ErrLockNotAcquired
	}

	return &RoomLock{
		client: m.client,
		key:    lockKey,
		value:  lockValue,
		ttl:    ttl,
	}, nil
}

// AcquireRoomLockWithRetry はリトライ付きで部屋ロックを取得する
func (m *LockManager) AcquireRoomLockWithRetry(ctx context.Context, roomID int64, ttl time.Duration, maxRetries int, retryDelay time.Duration) (*RoomLock, error) {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		lock, err := m.AcquireRoomLock(ctx, roomID, ttl)
		if err == nil {
			return lock, nil
		}
		lastErr = err
		if !errors.Is(err, ErrLockNotAcquired) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return nil, lastErr
}

// Release はロックを解放する（Lua スクリプトで所有者確認と削除をアトミックに実行）
func (l *RoomLock) Release(ctx context.Context) error {
	script := `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		else
			return 0
		end
	`
	result, err := l.client.Eval(ctx, script, []string{l.key}, l.value).Int()
	if err != nil {
		return fmt.Errorf("ロック解放に失敗: %w", err)
	}
	if result == 0 {
		return ErrLockNotOwned
	}
	return nil
}

// Extend はロックの有効期限を延長する
func (l *RoomLock) Extend(ctx context.Context, ttl time.Duration) error {
	script := `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("PEXPIRE", KEYS[1], ARGV[2])
		else
			return 0
		end
	`
	result, err := l.client.Eval(ctx, script, []string{l.key}, l.value, ttl.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("ロック延長に失敗: %w", err)
	}
	if result == 0 {
		return ErrLockNotOwned
	}
	l.ttl = ttl
	return nil
}
