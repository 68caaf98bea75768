package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

// CustomerService は顧客の登録・照会・管理操作を提供する
type CustomerService struct {
	txManager    transaction.Manager
	customerRepo customer.Repository
	metrics      *metrics.Metrics
}

func NewCustomerService(txManager transaction.Manager, cr customer.Repository, m *metrics.Metrics) *CustomerService {
	return &CustomerService{txManager: txManager, customerRepo: cr, metrics: m}
}

type CreateCustomerInput struct {
	FirstName string
	LastName  string
	Address   string
}

func (s *CustomerService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*customer.Customer, error) {
	c := customer.New(input.FirstName, input.LastName, input.Address)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	logger.Info("顧客を登録しました", zap.Int64("customer_id", c.ID))
	return c, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*customer.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// UpdateCustomer は顧客を更新する
// 占有中の予約がある間は拒否される
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, input customer.UpdateInput) (*customer.Customer, error) {
	var c *customer.Customer
	err := transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		var err error
		c, err = s.customerRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		active, err := s.customerRepo.HasActiveReservations(ctx, tx, id)
		if err != nil {
			return err
		}
		if active {
			s.countGuardViolation()
			return customer.ErrCustomerHasActiveReservations
		}
		if input.FirstName != nil {
			c.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			c.LastName = *input.LastName
		}
		if input.Address != nil {
			c.Address = *input.Address
		}
		if err := c.Validate(); err != nil {
			return err
		}
		return s.customerRepo.Update(ctx, tx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCustomer は顧客を削除する
// 占有中の予約がある間は拒否される
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	err := transaction.Within(ctx, s.txManager, func(tx transaction.Tx) error {
		ok, err := s.customerRepo.Exists(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return customer.ErrCustomerNotFound
		}
		active, err := s.customerRepo.HasActiveReservations(ctx, tx, id)
		if err != nil {
			return err
		}
		if active {
			s.countGuardViolation()
			return customer.ErrCustomerHasActiveReservations
		}
		return s.customerRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	logger.Info("顧客を削除しました", zap.Int64("customer_id", id))
	return nil
}

func (s *CustomerService) countGuardViolation() {
	if s.metrics != nil {
		s.metrics.GuardViolationsTotal.WithLabelValues("customer").Inc()
	}
}
