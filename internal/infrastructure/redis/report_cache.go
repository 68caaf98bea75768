package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
)

var (
	ErrCacheMiss = errors.New("キャッシュが見つかりません")
)

const (
	capacityReportKey = "reports:room-capacity"
	areaReportKey     = "reports:room-area"
)

// ReportCache は集計レポートのキャッシュを管理する。
// ホテル・部屋の更新時に明示的に無効化する。
type ReportCache struct {
	client *redis.Client
}

// NewReportCache は新しいReportCacheインスタンスを作成する
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// GetCapacityReport は部屋収容数レポートをキャッシュから取得する
func (c *ReportCache) GetCapacityReport(ctx context.Context) ([]hotel.CapacitySummary, error) {
	var summaries []hotel.CapacitySummary
	if err := c.get(ctx, capacityReportKey, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// SetCapacityReport は部屋収容数レポートをキャッシュに保存する
func (c *ReportCache) SetCapacityReport(ctx context.Context, summaries []hotel.CapacitySummary, ttl time.Duration) error {
	return c.set(ctx, capacityReportKey, summaries, ttl)
}

// GetAreaReport は地域別客室レポートをキャッシュから取得する
func (c *ReportCache) GetAreaReport(ctx context.Context) ([]hotel.AreaSummary, error) {
	var summaries []hotel.AreaSummary
	if err := c.get(ctx, areaReportKey, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// SetAreaReport は地域別客室レポートをキャッシュに保存する
func (c *ReportCache) SetAreaReport(ctx context.Context, summaries []hotel.AreaSummary, ttl time.Duration) error {
	return c.set(ctx, areaReportKey, summaries, ttl)
}

// Invalidate は全レポートキャッシュを無効化する
func (c *ReportCache) Invalidate(ctx context.Context) error {
	err := c.client.Del(ctx, capacityReportKey, areaReportKey).Err()
	if err != nil {
		return fmt.Errorf("キャッシュ無効化に失敗: %w", err)
	}
	return nil
}

func (c *ReportCache) get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("キャッシュ取得に失敗: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("キャッシュのデコードに失敗: %w", err)
	}
	return nil
}

func (c *ReportCache) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("キャッシュのエンコードに失敗: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("キャッシュ保存に失敗: %w", err)
	}
	return nil
}
