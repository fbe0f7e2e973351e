package postgres

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type customerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if c.Status == "" {
		c.Status = domain.CustomerStatusActive
	}
	query := `INSERT INTO customers (name, rut, phone, email, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.RUT, c.Phone, c.Email, c.Status).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, rut, phone, email, status FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.RUT, &c.Phone, &c.Email, &c.Status)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, rut, phone, email, status FROM customers WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&c.ID, &c.Name, &c.RUT, &c.Phone, &c.Email, &c.Status)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, rut=$2, phone=$3, email=$4, status=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.RUT, c.Phone, c.Email, c.Status, c.ID)
	return err
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, name, rut, phone, email, status FROM customers ORDER BY id`
	return r.scanList(ctx, query)
}

func (r *customerRepository) ListByStatus(ctx context.Context, status domain.CustomerStatus) ([]domain.Customer, error) {
	query := `SELECT id, name, rut, phone, email, status FROM customers WHERE status = $1 ORDER BY id`
	return r.scanList(ctx, query, status)
}

func (r *customerRepository) ListWithOverdueLoans(ctx context.Context, now time.Time) ([]domain.Customer, error) {
	query := `SELECT DISTINCT c.id, c.name, c.rut, c.phone, c.email, c.status
	          FROM customers c
	          JOIN loans l ON l.customer_id = c.id
	          WHERE l.return_date IS NULL AND l.due_date < $1
	          ORDER BY c.id`
	return r.scanList(ctx, query, now)
}

func (r *customerRepository) ListWithDebt(ctx context.Context, now time.Time) ([]domain.CustomerDebt, error) {
	query := `SELECT c.id, c.name, c.rut, c.email,
	                 COALESCE(SUM(l.fine_amount + l.damage_charge), 0) AS total_debt,
	                 COUNT(l2.id) > 0 AS has_overdue,
	                 MIN(l2.due_date) AS oldest_due_date
	          FROM customers c
	          LEFT JOIN loans l ON l.customer_id = c.id
	             AND l.return_date IS NOT NULL
	             AND (l.fine_amount > 0 OR l.damage_charge > 0)
	          LEFT JOIN loans l2 ON l2.customer_id = c.id
	             AND l2.return_date IS NULL
	             AND l2.due_date < $1
	          GROUP BY c.id, c.name, c.rut, c.email
	          HAVING COALESCE(SUM(l.fine_amount + l.damage_charge), 0) > 0 OR COUNT(l2.id) > 0
	          ORDER BY COALESCE(SUM(l.fine_amount + l.damage_charge), 0) DESC`

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []domain.CustomerDebt
	for rows.Next() {
		var d domain.CustomerDebt
		if err := rows.Scan(&d.CustomerID, &d.Name, &d.RUT, &d.Email, &d.TotalDebt, &d.HasOverdueLoan, &d.OldestDueDate); err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

func (r *customerRepository) scanList(ctx context.Context, query string, args ...any) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.RUT, &c.Phone, &c.Email, &c.Status); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
