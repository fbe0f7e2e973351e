package postgres

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type loanRepository struct {
	db DBTX
}

func NewLoanRepository(db DBTX) repository.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO loans (customer_id, tool_unit_id, loan_date, due_date, return_date, total_cost, fine_amount, damage_charge)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, l.CustomerID, l.ToolUnitID, l.LoanDate, l.DueDate,
		l.ReturnDate, l.TotalCost, l.FineAmount, l.DamageCharge).Scan(&l.ID)
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	l := &domain.Loan{}
	query := `SELECT id, customer_id, tool_unit_id, loan_date, due_date, return_date, total_cost, fine_amount, damage_charge
	          FROM loans WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.CustomerID, &l.ToolUnitID,
		&l.LoanDate, &l.DueDate, &l.ReturnDate, &l.TotalCost, &l.FineAmount, &l.DamageCharge)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *loanRepository) Update(ctx context.Context, l *domain.Loan) error {
	query := `UPDATE loans SET return_date=$1, total_cost=$2, fine_amount=$3, damage_charge=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, l.ReturnDate, l.TotalCost, l.FineAmount, l.DamageCharge, l.ID)
	return err
}

func (r *loanRepository) HasOverdueUnreturned(ctx context.Context, customerID int32, now time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	              SELECT 1 FROM loans
	              WHERE customer_id = $1 AND return_date IS NULL AND due_date < $2
	          )`
	err := r.db.QueryRowContext(ctx, query, customerID, now).Scan(&exists)
	return exists, err
}

func (r *loanRepository) HasUnpaidFines(ctx context.Context, customerID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	              SELECT 1 FROM loans
	              WHERE customer_id = $1 AND return_date IS NOT NULL AND fine_amount > 0
	          )`
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&exists)
	return exists, err
}

func (r *loanRepository) HasUnpaidDamage(ctx context.Context, customerID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	              SELECT 1 FROM loans
	              WHERE customer_id = $1 AND return_date IS NOT NULL AND damage_charge > 0
	          )`
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&exists)
	return exists, err
}

func (r *loanRepository) CountUnreturned(ctx context.Context, customerID int32) (int64, error) {
	var count int64
	query := `SELECT count(*) FROM loans WHERE customer_id = $1 AND return_date IS NULL`
	err := r.db.QueryRowContext(ctx, query, customerID).Scan(&count)
	return count, err
}

func (r *loanRepository) HasUnreturnedInGroup(ctx context.Context, customerID, toolGroupID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	              SELECT 1 FROM loans l
	              JOIN tool_units u ON u.id = l.tool_unit_id
	              WHERE l.customer_id = $1 AND u.tool_group_id = $2 AND l.return_date IS NULL
	          )`
	err := r.db.QueryRowContext(ctx, query, customerID, toolGroupID).Scan(&exists)
	return exists, err
}

func (r *loanRepository) LatestReturnedForUnit(ctx context.Context, toolUnitID int32) (*domain.Loan, error) {
	l := &domain.Loan{}
	query := `SELECT id, customer_id, tool_unit_id, loan_date, due_date, return_date, total_cost, fine_amount, damage_charge
	          FROM loans
	          WHERE tool_unit_id = $1 AND return_date IS NOT NULL
	          ORDER BY return_date DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, toolUnitID).Scan(&l.ID, &l.CustomerID, &l.ToolUnitID,
		&l.LoanDate, &l.DueDate, &l.ReturnDate, &l.TotalCost, &l.FineAmount, &l.DamageCharge)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *loanRepository) ListActiveInRange(ctx context.Context, from, to time.Time) ([]domain.LoanSummary, error) {
	query := `SELECT l.id, c.name, g.name, l.loan_date, l.due_date, l.return_date, l.fine_amount, l.damage_charge
	          FROM loans l
	          JOIN customers c ON c.id = l.customer_id
	          JOIN tool_units u ON u.id = l.tool_unit_id
	          JOIN tool_groups g ON g.id = u.tool_group_id
	          WHERE l.return_date IS NULL AND l.loan_date BETWEEN $1 AND $2
	          ORDER BY l.due_date ASC`
	return r.scanSummaries(ctx, query, from, to)
}

func (r *loanRepository) ListReturnedWithDebts(ctx context.Context) ([]domain.LoanSummary, error) {
	query := `SELECT l.id, c.name, g.name, l.loan_date, l.due_date, l.return_date, l.fine_amount, l.damage_charge
	          FROM loans l
	          JOIN customers c ON c.id = l.customer_id
	          JOIN tool_units u ON u.id = l.tool_unit_id
	          JOIN tool_groups g ON g.id = u.tool_group_id
	          WHERE l.return_date IS NOT NULL AND (l.fine_amount > 0 OR l.damage_charge > 0)
	          ORDER BY l.return_date DESC`
	return r.scanSummaries(ctx, query)
}

func (r *loanRepository) CountByGroupInRange(ctx context.Context, from, to time.Time) ([]domain.ToolGroupRanking, error) {
	query := `SELECT g.id, g.name, g.category, count(l.id) AS total
	          FROM loans l
	          JOIN tool_units u ON u.id = l.tool_unit_id
	          JOIN tool_groups g ON g.id = u.tool_group_id
	          WHERE l.loan_date BETWEEN $1 AND $2
	          GROUP BY g.id, g.name, g.category
	          ORDER BY count(l.id) DESC`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rankings []domain.ToolGroupRanking
	for rows.Next() {
		var rk domain.ToolGroupRanking
		if err := rows.Scan(&rk.ToolGroupID, &rk.Name, &rk.Category, &rk.LoanCount); err != nil {
			return nil, err
		}
		rankings = append(rankings, rk)
	}
	return rankings, rows.Err()
}

func (r *loanRepository) scanSummaries(ctx context.Context, query string, args ...any) ([]domain.LoanSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.LoanSummary
	for rows.Next() {
		var s domain.LoanSummary
		if err := rows.Scan(&s.ID, &s.CustomerName, &s.ToolName, &s.LoanDate, &s.DueDate,
			&s.ReturnDate, &s.FineAmount, &s.DamageCharge); err != nil {
			return nil, err
		}
		if s.ReturnDate == nil {
			s.Status = "ACTIVE"
		} else {
			s.Status = "RETURNED"
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
