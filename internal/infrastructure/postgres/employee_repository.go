package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/employee"
	"github.com/sanosuguru/go-hotel-reservation/internal/domain/transaction"
)

type employeeRow struct {
	ID        int64     `db:"id"`
	HotelID   int64     `db:"hotel_id"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *employeeRow) toEntity() *employee.Employee {
	return &employee.Employee{
		ID:        r.ID,
		HotelID:   r.HotelID,
		Name:      r.Name,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type EmployeeRepository struct{ db *sqlx.DB }

func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List(ctx context.Context, hotelID *int64) ([]*employee.Employee, error) {
	query := `SELECT id, hotel_id, name, role, created_at, updated_at FROM employees`
	args := []interface{}{}
	if hotelID != nil {
		query += ` WHERE hotel_id = $1`
		args = append(args, *hotelID)
	}
	query += ` ORDER BY name`

	var rows []employeeRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("従業員一覧取得に失敗: %w", err)
	}
	result := make([]*employee.Employee, len(rows))
	for i, row := range rows {
		result[i] = row.toEntity()
	}
	return result, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	var row employeeRow
	query := `SELECT id, hotel_id, name, role, created_at, updated_at FROM employees WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("従業員取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *EmployeeRepository) Exists(ctx context.Context, tx transaction.Tx, id int64) (bool, error) {
	var exists bool
	if err := UnwrapTx(tx).GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("従業員存在確認に失敗: %w", err)
	}
	return exists, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, tx transaction.Tx, e *employee.Employee) error {
	query := `UPDATE employees SET name = $1, role = $2, hotel_id = $3, updated_at = NOW() WHERE id = $4`
	result, err := UnwrapTx(tx).ExecContext(ctx, query, e.Name, e.Role, e.HotelID, e.ID)
	if err != nil {
		return fmt.Errorf("従業員更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, tx transaction.Tx, id int64) error {
	result, err := UnwrapTx(tx).ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("従業員削除に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) ManagesHotel(ctx context.Context, tx transaction.Tx, employeeID int64) (bool, error) {
	var exists bool
	if err := UnwrapTx(tx).GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM hotels WHERE manager_id = $1)`, employeeID); err != nil {
		return false, fmt.Errorf("支配人確認に失敗: %w", err)
	}
	return exists, nil
}

func (r *EmployeeRepository) HasActiveRentings(ctx context.Context, tx transaction.Tx, employeeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM rentings WHERE employee_id = $1 AND status = 'checked_in')`
	if err := UnwrapTx(tx).GetContext(ctx, &exists, query, employeeID); err != nil {
		return false, fmt.Errorf("対応中滞在の確認に失敗: %w", err)
	}
	return exists, nil
}

var _ employee.Repository = (*EmployeeRepository)(nil)
