package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
	redisinfra "github.com/sanosuguru/go-hotel-reservation/internal/infrastructure/redis"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

const reportCacheTTL = 5 * time.Minute

// HotelService はチェーン・ホテル・客室の照会と管理操作を提供する
//
// 破壊的変更（削除、チェーン移動）は占有中の予約が参照している間は
// 拒否される。判定は変更と同一トランザクション内で行う
type HotelService struct {
	txManager   transaction.Manager
	chainRepo   hotel.ChainRepository
	hotelRepo   hotel.HotelRepository
	roomRepo    hotel.RoomRepository
	reportCache *redisinfra.ReportCache
	metrics     *metrics.Metrics
}

func NewHotelService(
	txManager transaction.Manager,
	chainRepo hotel.ChainRepository,
	hotelRepo hotel.HotelRepository,
	roomRepo hotel.RoomRepository,
	reportCache *redisinfra.ReportCache,
	m *metrics.Metrics,
) *HotelService {
	return &HotelService{
		txManager:   txManager,
		chainRepo:   chainRepo,
		hotelRepo:   hotelRepo,
		roomRepo:    roomRepo,
		reportCache: reportCache,
		metrics:     m,
	}
}

func (s *HotelService) ListChains(ctx context.Context) ([]*hotel.Chain, error) {
	return s.chainRepo.List(ctx)
}

func (s *HotelService) ListHotels(ctx context.Context, filter hotel.HotelFilter) ([]*hotel.Hotel, error) {
	return s.hotelRepo.List(ctx, filter)
}

func (s *HotelService) GetHotel(ctx context.Context, id int64) (*hotel.Hotel, error) {
	return s.hotelRepo.GetByID(ctx, id)
}

// UpdateHotel はホテルを更新する
// 別チェーンへの移動は占有中の予約がある間は拒否される
func (s *HotelService) UpdateHotel(ctx context.Context, id int64, input hotel.UpdateHotelInput) (*hotel.Hotel, error) {
	var h *hotel.Hotel
	err := transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		var err error
		h, err = s.hotelRepo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if input.ChainID != nil && *input.ChainID != h.ChainID {
			active, err := s.hotelRepo.HasActiveReservations(ctx, tx, id)
			if err != nil {
				return err
			}
			if active {
				s.countGuardViolation("hotel")
				return hotel.ErrHotelHasActiveReservations
			}
			h.ChainID = *input.ChainID
		}
		if input.Name != nil {
			h.Name = *input.Name
		}
		if input.Category != nil {
			h.Category = *input.Category
		}
		if input.Address != nil {
			h.Address = *input.Address
		}
		if input.Email != nil {
			h.Email = *input.Email
		}
		if input.Phone != nil {
			h.Phone = *input.Phone
		}
		if input.ManagerID != nil {
			h.ManagerID = input.ManagerID
		}
		if err := h.Validate(); err != nil {
			return err
		}
		return s.hotelRepo.Update(ctx, tx, h)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateReports(ctx)
	return h, nil
}

// DeleteHotel はホテルを削除する
// 配下の部屋に占有中の予約がある間は拒否される
func (s *HotelService) DeleteHotel(ctx context.Context, id int64) error {
	err := transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		if _, err := s.hotelRepo.GetForUpdate(ctx, tx, id); err != nil {
			return err
		}
		active, err := s.hotelRepo.HasActiveReservations(ctx, tx, id)
		if err != nil {
			return err
		}
		if active {
			s.countGuardViolation("hotel")
			return hotel.ErrHotelHasActiveReservations
		}
		return s.hotelRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	s.invalidateReports(ctx)
	logger.Info("ホテルを削除しました", zap.Int64("hotel_id", id))
	return nil
}

func (s *HotelService) GetRoom(ctx context.Context, id int64) (*hotel.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

// UpdateRoom は客室を更新する
func (s *HotelService) UpdateRoom(ctx context.Context, id int64, input hotel.UpdateRoomInput) (*hotel.Room, error) {
	var r *hotel.Room
	err := transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		var err error
		r, err = s.roomRepo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if input.Price != nil {
			r.Price = *input.Price
		}
		if input.Capacity != nil {
			r.Capacity = *input.Capacity
		}
		if input.Area != nil {
			r.Area = *input.Area
		}
		if input.Amenities != nil {
			r.Amenities = input.Amenities
		}
		if err := r.Validate(); err != nil {
			return err
		}
		return s.roomRepo.Update(ctx, tx, r)
	})
	if err != nil {
		return nil, err
	}
	s.invalidateReports(ctx)
	return r, nil
}

// DeleteRoom は客室を削除する
// 占有中の予約がある間は拒否される
func (s *HotelService) DeleteRoom(ctx context.Context, id int64) error {
	err := transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		if _, err := s.roomRepo.GetForUpdate(ctx, tx, id); err != nil {
			return err
		}
		active, err := s.roomRepo.HasActiveReservations(ctx, tx, id)
		if err != nil {
			return err
		}
		if active {
			s.countGuardViolation("room")
			return hotel.ErrRoomHasActiveReservations
		}
		return s.roomRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	s.invalidateReports(ctx)
	logger.Info("客室を削除しました", zap.Int64("room_id", id))
	return nil
}

// RoomCapacityReport はホテルごとの定員内訳レポートを返す
func (s *HotelService) RoomCapacityReport(ctx context.Context) ([]hotel.CapacitySummary, error) {
	if s.reportCache != nil {
		cached, err := s.reportCache.GetCapacityReport(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redisinfra.ErrCacheMiss) {
			logger.Warn("キャッシュ取得エラー", zap.Error(err))
		}
	}

	rows, err := s.hotelRepo.CapacityReport(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]hotel.CapacitySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, *row)
	}

	if s.reportCache != nil {
		if cacheErr := s.reportCache.SetCapacityReport(ctx, summaries, reportCacheTTL); cacheErr != nil {
			logger.Warn("キャッシュ保存エラー", zap.Error(cacheErr))
		}
	}
	return summaries, nil
}

// RoomAreaReport はホテル・エリアごとの価格帯レポートを返す
func (s *HotelService) RoomAreaReport(ctx context.Context) ([]hotel.AreaSummary, error) {
	if s.reportCache != nil {
		cached, err := s.reportCache.GetAreaReport(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redisinfra.ErrCacheMiss) {
			logger.Warn("キャッシュ取得エラー", zap.Error(err))
		}
	}

	rows, err := s.hotelRepo.AreaReport(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]hotel.AreaSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, *row)
	}

	if s.reportCache != nil {
		if cacheErr := s.reportCache.SetAreaReport(ctx, summaries, reportCacheTTL); cacheErr != nil {
			logger.Warn("キャッシュ保存エラー", zap.Error(cacheErr))
		}
	}
	return summaries, nil
}

func (s *HotelService) invalidateReports(ctx context.Context) {
	if s.reportCache != nil {
		if err := s.reportCache.Invalidate(ctx); err != nil {
			logger.Warn("キャッシュ無効化エラー", zap.Error(err))
		}
	}
}

func (s *HotelService) countGuardViolation(entity string) {
	if s.metrics != nil {
		s.metrics.GuardViolationsTotal.WithLabelValues(entity).Inc()
	}
}
