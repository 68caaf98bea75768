package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/booking"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/employee"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/renting"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
	redisinfra "github.com/sanosuguru/go-hotel-reservation/internal/infrastructure/redis"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

const (
	roomLockTTL        = 10 * time.Second
	roomLockMaxRetries = 3
	roomLockRetryDelay = 100 * time.Millisecond
)

// ReservationService は予約・チェックインのライフサイクルを管理する
//
// 同一部屋に対する重複判定と挿入は三段で直列化される:
// Redis の部屋ロック、部屋行の SELECT FOR UPDATE、
// そして最終防衛線としての排他制約（EXCLUDE USING gist）
type ReservationService struct {
	txManager    transaction.Manager
	bookingRepo  booking.Repository
	rentingRepo  renting.Repository
	roomRepo     hotel.RoomRepository
	customerRepo customer.Repository
	employeeRepo employee.Repository
	index        reservation.Index
	lockManager  *redisinfra.LockManager
	metrics      *metrics.Metrics
}

func NewReservationService(
	txManager transaction.Manager,
	br booking.Repository,
	rr renting.Repository,
	roomRepo hotel.RoomRepository,
	cr customer.Repository,
	er employee.Repository,
	index reservation.Index,
	lm *redisinfra.LockManager,
	m *metrics.Metrics,
) *ReservationService {
	return &ReservationService{
		txManager:    txManager,
		bookingRepo:  br,
		rentingRepo:  rr,
		roomRepo:     roomRepo,
		customerRepo: cr,
		employeeRepo: er,
		index:        index,
		lockManager:  lm,
		metrics:      m,
	}
}

type RequestBookingInput struct {
	RoomID     int64
	CustomerID int64
	StartDate  time.Time
	EndDate    time.Time
}

// RequestBooking は事前予約を作成する
// 指定期間と重なる占有中の予約がある場合は reservation.ErrRoomUnavailable を返す
func (s *ReservationService) RequestBooking(ctx context.Context, input RequestBookingInput) (*booking.Booking, error) {
	stay, err := newStay(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	b := booking.New(input.RoomID, input.CustomerID, stay)
	if err := b.Validate(); err != nil {
		return nil, err
	}

	release, err := s.lockRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	defer release()

	err = transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		room, err := s.roomRepo.GetForUpdate(ctx, tx, input.RoomID)
		if err != nil {
			return err
		}
		ok, err := s.customerRepo.Exists(ctx, tx, input.CustomerID)
		if err != nil {
			return fmt.Errorf("顧客確認に失敗: %w", err)
		}
		if !ok {
			return customer.ErrCustomerNotFound
		}
		overlap, err := s.index.HasActiveOverlap(ctx, tx, input.RoomID, stay, 0)
		if err != nil {
			return fmt.Errorf("重複判定に失敗: %w", err)
		}
		if overlap {
			return reservation.ErrRoomUnavailable
		}
		b.HotelID = room.HotelID
		return s.bookingRepo.Create(ctx, tx, b)
	})
	if err != nil {
		s.countReservation("booking", reservationOutcome(err))
		return nil, err
	}

	s.countReservation("booking", "confirmed")
	logger.Info("予約を作成しました",
		zap.Int64("booking_id", b.ID),
		zap.Int64("room_id", b.RoomID),
		zap.Int64("customer_id", b.CustomerID))
	return b, nil
}

type CheckInInput struct {
	RoomID     int64
	CustomerID int64
	EmployeeID int64
	BookingID  *int64
	StartDate  time.Time
	EndDate    time.Time
}

// CheckIn は滞在を開始する
// BookingID が指定された場合は既存予約の昇格として扱い、
// 部屋と顧客の一致を検証した上で元予約を checked_in に遷移させる
// 未指定の場合はウォークインとして新規に期間を確保する
func (s *ReservationService) CheckIn(ctx context.Context, input CheckInInput) (*renting.Renting, error) {
	stay, err := newStay(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	r := renting.New(input.RoomID, input.CustomerID, input.EmployeeID, stay, input.BookingID)
	if err := r.Validate(); err != nil {
		return nil, err
	}

	release, err := s.lockRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	defer release()

	err = transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		room, err := s.roomRepo.GetForUpdate(ctx, tx, input.RoomID)
		if err != nil {
			return err
		}
		ok, err := s.customerRepo.Exists(ctx, tx, input.CustomerID)
		if err != nil {
			return fmt.Errorf("顧客確認に失敗: %w", err)
		}
		if !ok {
			return customer.ErrCustomerNotFound
		}
		ok, err = s.employeeRepo.Exists(ctx, tx, input.EmployeeID)
		if err != nil {
			return fmt.Errorf("従業員確認に失敗: %w", err)
		}
		if !ok {
			return employee.ErrEmployeeNotFound
		}

		// 昇格の場合は元予約を同一トランザクション内で checked_in に遷移させる
		var excludeBookingID int64
		if input.BookingID != nil {
			origin, err := s.bookingRepo.GetForUpdate(ctx, tx, *input.BookingID)
			if err != nil {
				return err
			}
			if origin.RoomID != input.RoomID || origin.CustomerID != input.CustomerID {
				return booking.ErrBookingMismatch
			}
			if err := origin.CheckIn(); err != nil {
				return err
			}
			if err := s.bookingRepo.Update(ctx, tx, origin); err != nil {
				return err
			}
			excludeBookingID = origin.ID
		}

		overlap, err := s.index.HasActiveOverlap(ctx, tx, input.RoomID, stay, excludeBookingID)
		if err != nil {
			return fmt.Errorf("重複判定に失敗: %w", err)
		}
		if overlap {
			return reservation.ErrRoomUnavailable
		}
		r.HotelID = room.HotelID
		return s.rentingRepo.Create(ctx, tx, r)
	})
	if err != nil {
		s.countReservation("renting", reservationOutcome(err))
		return nil, err
	}

	s.countReservation("renting", "confirmed")
	logger.Info("チェックインしました",
		zap.Int64("renting_id", r.ID),
		zap.Int64("room_id", r.RoomID),
		zap.Int64("customer_id", r.CustomerID),
		zap.Int64p("origin_booking_id", r.OriginBookingID))
	return r, nil
}

// CancelBooking は予約をキャンセルする
// checked_in 済みの予約はキャンセルできない
func (s *ReservationService) CancelBooking(ctx context.Context, id int64) (*booking.Booking, error) {
	var b *booking.Booking
	err := transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		var err error
		b, err = s.bookingRepo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := b.Cancel(); err != nil {
			return err
		}
		return s.bookingRepo.Update(ctx, tx, b)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("予約をキャンセルしました", zap.Int64("booking_id", b.ID))
	return b, nil
}

// CloseRenting は滞在を終了させる（チェックアウト）
func (s *ReservationService) CloseRenting(ctx context.Context, id int64) (*renting.Renting, error) {
	var r *renting.Renting
	err := transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		var err error
		r, err = s.rentingRepo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := r.Close(); err != nil {
			return err
		}
		return s.rentingRepo.Update(ctx, tx, r)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("チェックアウトしました", zap.Int64("renting_id", r.ID))
	return r, nil
}

func (s *ReservationService) GetBooking(ctx context.Context, id int64) (*booking.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *ReservationService) GetRenting(ctx context.Context, id int64) (*renting.Renting, error) {
	return s.rentingRepo.GetByID(ctx, id)
}

// GetCustomerBookings は顧客の予約一覧を返す
func (s *ReservationService) GetCustomerBookings(ctx context.Context, customerID int64) ([]*booking.Booking, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetByCustomerID(ctx, customerID)
}

// GetCustomerRentings は顧客の滞在一覧を返す
func (s *ReservationService) GetCustomerRentings(ctx context.Context, customerID int64) ([]*renting.Renting, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.rentingRepo.GetByCustomerID(ctx, customerID)
}

// CancelNoShowBookings は猶予期間を過ぎても booked のままの予約を
// 一括キャンセルし、件数を返す
func (s *ReservationService) CancelNoShowBookings(ctx context.Context, grace time.Duration) (int64, error) {
	before := time.Now().Add(-grace)
	return s.bookingRepo.CancelNoShows(ctx, before)
}

// lockRoom は部屋の分散ロックを取得し、解放関数を返す
// LockManager が未設定の場合は何もしない（DBの行ロックと排他制約が担保する）
func (s *ReservationService) lockRoom(ctx context.Context, roomID int64) (func(), error) {
	if s.lockManager == nil {
		return func() {}, nil
	}
	start := time.Now()
	lock, err := s.lockManager.AcquireRoomLockWithRetry(ctx, roomID, roomLockTTL, roomLockMaxRetries, roomLockRetryDelay)
	if err != nil {
		s.observeLock("acquire", "failure", time.Since(start))
		if errors.Is(err, redisinfra.ErrLockNotAcquired) {
			return nil, reservation.ErrRoomUnavailable
		}
		return nil, fmt.Errorf("ロック取得に失敗: %w", err)
	}
	s.observeLock("acquire", "success", time.Since(start))
	return func() {
		releaseStart := time.Now()
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.observeLock("release", "failure", time.Since(releaseStart))
			logger.Warn("ロック解放に失敗", zap.Int64("room_id", roomID), zap.Error(err))
			return
		}
		s.observeLock("release", "success", time.Since(releaseStart))
	}, nil
}

func (s *ReservationService) countReservation(kind, status string) {
	if s.metrics != nil {
		s.metrics.ReservationsTotal.WithLabelValues(kind, status).Inc()
	}
}

func (s *ReservationService) observeLock(operation, status string, d time.Duration) {
	if s.metrics != nil {
		s.metrics.DistributedLockDuration.WithLabelValues(operation, status).Observe(d.Seconds())
	}
}

// reservationOutcome はエラーをメトリクス用の結果ラベルに分類する
func reservationOutcome(err error) string {
	if errors.Is(err, reservation.ErrRoomUnavailable) {
		return "conflict"
	}
	return "error"
}
