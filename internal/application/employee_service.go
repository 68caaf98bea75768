package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/employee"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

// EmployeeService は従業員の照会・管理操作を提供する
type EmployeeService struct {
	txManager    transaction.Manager
	employeeRepo employee.Repository
	metrics      *metrics.Metrics
}

func NewEmployeeService(txManager transaction.Manager, er employee.Repository, m *metrics.Metrics) *EmployeeService {
	return &EmployeeService{txManager: txManager, employeeRepo: er, metrics: m}
}

func (s *EmployeeService) ListEmployees(ctx context.Context, hotelID *int64) ([]*employee.Employee, error) {
	return s.employeeRepo.List(ctx, hotelID)
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (*employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// UpdateEmployee は従業員を更新する
// 別ホテルへの異動は、支配人指定または対応中の滞在がある間は拒否される
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int64, input employee.UpdateInput) (*employee.Employee, error) {
	var e *employee.Employee
	err := transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		var err error
		e, err = s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.HotelID != nil && *input.HotelID != e.HotelID {
			if err := s.checkGuards(ctx, tx, id); err != nil {
				return err
			}
			e.HotelID = *input.HotelID
		}
		if input.Name != nil {
			e.Name = *input.Name
		}
		if input.Role != nil {
			e.Role = *input.Role
		}
		if err := e.Validate(); err != nil {
			return err
		}
		return s.employeeRepo.Update(ctx, tx, e)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEmployee は従業員を削除する
// 支配人指定または対応中の滞在がある間は拒否される
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	err := transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		ok, err := s.employeeRepo.Exists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return employee.ErrEmployeeNotFound
		}
		if err := s.checkGuards(ctx, tx, id); err != nil {
			return err
		}
		return s.employeeRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	logger.Info("従業員を削除しました", zap.Int64("employee_id", id))
	return nil
}

// checkGuards は従業員に対するガードルールを評価する
func (s *EmployeeService) checkGuards(ctx context.Context, tx transaction.Tx, id int64) error {
	manages, err := s.employeeRepo.ManagesHotel(ctx, tx, id)
	if err != nil {
		return err
	}
	if manages {
		s.countGuardViolation()
		return employee.ErrEmployeeManagesHotel
	}
	active, err := s.employeeRepo.HasActiveRentings(ctx, tx, id)
	if err != nil {
		return err
	}
	if active {
		s.countGuardViolation()
		return employee.ErrEmployeeHasActiveRentings
	}
	return nil
}

func (s *EmployeeService) countGuardViolation() {
	if s.metrics != nil {
		s.metrics.GuardViolationsTotal.WithLabelValues("employee").Inc()
	}
}
