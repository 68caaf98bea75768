package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

type customerRow struct {
	ID        int64     `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *customerRow) toEntity() *customer.Customer {
	return &customer.Customer{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type CustomerRepository struct{ db *sqlx.DB }

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `INSERT INTO customers (first_name, last_name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Address, c.CreatedAt, c.UpdatedAt).Scan(&c.ID); err != nil {
		return fmt.Errorf("顧客作成に失敗: %w", err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	var row customerRow
	query := `SELECT id, first_name, last_name, address, created_at, updated_at FROM customers WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("顧客取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *CustomerRepository) Exists(ctx context.Context, tx transaction.Tx, id int64) (bool, error) {
	var exists bool
	if err := UnwrapTx(tx).GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("顧客存在確認に失敗: %w", err)
	}
	return exists, nil
}

func (r *CustomerRepository) Update(ctx context.Context, tx transaction.Tx, c *customer.Customer) error {
	query := `UPDATE customers SET first_name = $1, last_name = $2, address = $3, updated_at = NOW() WHERE id = $4`
	result, err := UnwrapTx(tx).ExecContext(ctx, query, c.FirstName, c.LastName, c.Address, c.ID)
	if err != nil {
		return fmt.Errorf("顧客更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("顧客削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return customer.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) HasActiveReservations(ctx context.Context, tx transaction.Tx, customerID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings WHERE customer_id = $1 AND status IN ('booked', 'checked_in')
			UNION ALL
			SELECT 1 FROM rentings WHERE customer_id = $1 AND status = 'checked_in'
		)`
	var exists bool
	if err := UnwrapTx(tx).GetContext(ctx, &exists, query, customerID); err != nil {
		return false, fmt.Errorf("占有中予約の確認に失敗: %w", err)
	}
	return exists, nil
}

var _ customer.Repository = (*CustomerRepository)(nil)
