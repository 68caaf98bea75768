package application

import (
	"context"
	"time"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/hotel"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/interval"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/reservation"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

// newStay は開始日・終了日から宿泊期間を構築する
// 期間の不正（ErrInvalidRange）と過去開始日（ErrStartDateInPast）を
// 全操作で同じ規則で検証する
func newStay(start, end time.Time) (interval.Interval, error) {
	stay, err := interval.New(start, end)
	if err != nil {
		return interval.Interval{}, err
	}
	if stay.StartsBefore(time.Now()) {
		return interval.Interval{}, interval.ErrStartDateInPast
	}
	return stay, nil
}

// AvailabilityService は空室検索と部屋の占有状況照会を提供する
type AvailabilityService struct {
	roomRepo hotel.RoomRepository
	index    reservation.Index
	metrics  *metrics.Metrics
}

func NewAvailabilityService(roomRepo hotel.RoomRepository, index reservation.Index, m *metrics.Metrics) *AvailabilityService {
	return &AvailabilityService{roomRepo: roomRepo, index: index, metrics: m}
}

type SearchAvailableRoomsInput struct {
	StartDate time.Time
	EndDate   time.Time
	Capacity  *int
	Area      *string
	ChainName *string
	Category  *int
	MaxPrice  *float64
}

// SearchAvailableRooms は指定期間に占有されていない客室を検索する
// 条件は論理積で適用され、結果の順序は保証しない
func (s *AvailabilityService) SearchAvailableRooms(ctx context.Context, input SearchAvailableRoomsInput) ([]*hotel.AvailableRoom, error) {
	stay, err := newStay(input.StartDate, input.EndDate)
	if err != nil {
		s.countSearch("invalid")
		return nil, err
	}

	rooms, err := s.roomRepo.SearchAvailable(ctx, hotel.SearchCriteria{
		Stay:      stay,
		Capacity:  input.Capacity,
		Area:      input.Area,
		ChainName: input.ChainName,
		Category:  input.Category,
		MaxPrice:  input.MaxPrice,
	})
	if err != nil {
		s.countSearch("error")
		return nil, err
	}
	s.countSearch("ok")
	return rooms, nil
}

// GetRoomOccupancy は部屋を占有中の予約・滞在を返す
func (s *AvailabilityService) GetRoomOccupancy(ctx context.Context, roomID int64) ([]reservation.Reservation, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.index.ActiveForRoom(ctx, roomID)
}

func (s *AvailabilityService) countSearch(status string) {
	if s.metrics != nil {
		s.metrics.AvailabilitySearchesTotal.WithLabelValues(status).Inc()
	}
}
