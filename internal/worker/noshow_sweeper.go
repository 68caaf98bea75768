package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
)

// NoShowCanceller は無断不泊の予約を一括キャンセルするインターフェース
type NoShowCanceller interface {
	CancelNoShowBookings(ctx context.Context, grace time.Duration) (int64, error)
}

// NoShowSweeper は開始日を過ぎてもチェックインされない予約を
// 定期的にキャンセルするワーカー
type NoShowSweeper struct {
	reservationService NoShowCanceller
	interval           time.Duration
	grace              time.Duration
	stopCh             chan struct{}
	doneCh             chan struct{}
}

// NewNoShowSweeper は新しいスイーパーを作成
func NewNoShowSweeper(rs NoShowCanceller, interval, grace time.Duration) *NoShowSweeper {
	return &NoShowSweeper{
		reservationService: rs,
		interval:           interval,
		grace:              grace,
		stopCh:             make(chan struct{}),
		doneCh:             make(chan struct{}),
	}
}

// Start はスイーパーを開始
func (s *NoShowSweeper) Start(ctx context.Context) {
	logger.Info("無断不泊スイーパー開始",
		zap.Duration("interval", s.interval),
		zap.Duration("grace", s.grace),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer close(s.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("無断不泊スイーパー停止（コンテキストキャンセル）")
			return
		case <-s.stopCh:
			logger.Info("無断不泊スイーパー停止（シグナル受信）")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Stop はスイーパーを停止
func (s *NoShowSweeper) Stop() {
	close(s.stopCh)
	<-s.doneCh
}

// sweep は無断不泊の予約をキャンセル
func (s *NoShowSweeper) sweep(ctx context.Context) {
	log := logger.Get()
	log.Debug("無断不泊予約のスイープ開始")

	count, err := s.reservationService.CancelNoShowBookings(ctx, s.grace)
	if err != nil {
		log.Error("無断不泊予約のスイープ失敗", zap.Error(err))
		return
	}

	if count > 0 {
		log.Info("無断不泊予約をキャンセル", zap.Int64("count", count))
	} else {
		log.Debug("無断不泊予約なし")
	}
}
