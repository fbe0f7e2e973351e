package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// maxActiveLoans is the hard cap of unreturned loans per customer.
const maxActiveLoans = 5

type loanService struct {
	store repository.Store
}

func NewLoanService(store repository.Store) LoanService {
	return &loanService{store: store}
}

// RegisterLoan runs the nine eligibility checks in order and, if they all
// pass, marks one available unit as loaned, persists the loan and appends
// the LOAN kardex entry. Everything happens inside one transaction: either
// all writes land or none do.
func (s *loanService) RegisterLoan(ctx context.Context, toolGroupID, customerID int32, dueDate time.Time, actor string) (*domain.Loan, error) {
	var loan *domain.Loan

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		now := time.Now()

		if dueDate.Before(now) {
			return domain.Reject("due date cannot be before the current time")
		}

		hasOverdue, err := tx.Loans().HasOverdueUnreturned(ctx, customerID, now)
		if err != nil {
			return err
		}
		if hasOverdue {
			return domain.Reject("customer has overdue loans pending return")
		}

		hasFines, err := tx.Loans().HasUnpaidFines(ctx, customerID)
		if err != nil {
			return err
		}
		if hasFines {
			return domain.Reject("customer has unpaid fines")
		}

		hasDamage, err := tx.Loans().HasUnpaidDamage(ctx, customerID)
		if err != nil {
			return err
		}
		if hasDamage {
			return domain.Reject("customer has unpaid damage charges")
		}

		active, err := tx.Loans().CountUnreturned(ctx, customerID)
		if err != nil {
			return err
		}
		if active >= maxActiveLoans {
			return domain.Reject(fmt.Sprintf("customer already has %d active loans (maximum allowed)", maxActiveLoans))
		}

		holdsSameTool, err := tx.Loans().HasUnreturnedInGroup(ctx, customerID, toolGroupID)
		if err != nil {
			return err
		}
		if holdsSameTool {
			return domain.Reject("customer already holds a unit of this tool on loan")
		}

		group, err := tx.ToolGroups().GetByID(ctx, toolGroupID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reject("tool group not found")
		}
		if err != nil {
			return err
		}

		unit, err := tx.ToolUnits().FirstAvailable(ctx, toolGroupID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reject("no available units")
		}
		if err != nil {
			return err
		}

		customer, err := tx.Customers().GetByID(ctx, customerID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reject("customer not found")
		}
		if err != nil {
			return err
		}

		if err := tx.ToolUnits().UpdateStatus(ctx, unit.ID, domain.ToolStatusLoaned); err != nil {
			return err
		}

		loan = &domain.Loan{
			CustomerID:   customer.ID,
			ToolUnitID:   unit.ID,
			LoanDate:     now,
			DueDate:      dueDate,
			TotalCost:    rentalCost(group.Tariff.DailyRentalRate, now, dueDate),
			FineAmount:   decimal.Zero,
			DamageCharge: decimal.Zero,
		}
		if err := tx.Loans().Create(ctx, loan); err != nil {
			return err
		}

		movement := &domain.KardexMovement{
			ToolUnitID:   unit.ID,
			CustomerID:   customer.ID,
			MovementType: domain.MovementLoan,
			MovementDate: now,
			Details:      fmt.Sprintf("Loan to customer ID %d - user: %s", customerID, actor),
		}
		return tx.Kardex().Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "loan registered", "loan_id", loan.ID, "customer_id", customerID, "tool_group_id", toolGroupID)
	return loan, nil
}

// ReturnLoan closes a loan: computes the late fine, applies the damage
// branch, transitions the unit and appends exactly one kardex entry whose
// type depends on the outcome (RETIRE beats REPAIR beats RETURN).
func (s *loanService) ReturnLoan(ctx context.Context, loanID int32, damageCharge decimal.Decimal, irreparable bool, actor string) (*domain.Loan, error) {
	var loan *domain.Loan

	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		var err error
		loan, err = tx.Loans().GetByID(ctx, loanID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reject("loan not found")
		}
		if err != nil {
			return err
		}
		if loan.Returned() {
			return domain.Reject("loan has already been returned")
		}

		unit, err := tx.ToolUnits().GetByID(ctx, loan.ToolUnitID)
		if err != nil {
			return err
		}

		now := time.Now()
		loan.ReturnDate = &now
		loan.FineAmount = decimal.Zero
		if now.After(loan.DueDate) {
			lateDays := wholeDays(loan.DueDate, now)
			loan.FineAmount = unit.ToolGroup.Tariff.DailyFineRate.Mul(decimal.NewFromInt(lateDays))
		}

		var newStatus domain.ToolStatus
		if irreparable {
			// The replacement value overrides whatever amount the caller sent.
			loan.DamageCharge = unit.ToolGroup.ReplacementValue
			newStatus = domain.ToolStatusRetired
		} else {
			loan.DamageCharge = damageCharge
			if damageCharge.GreaterThan(decimal.Zero) {
				newStatus = domain.ToolStatusInRepair
			} else {
				newStatus = domain.ToolStatusAvailable
			}
		}

		if err := tx.ToolUnits().UpdateStatus(ctx, unit.ID, newStatus); err != nil {
			return err
		}
		if err := tx.Loans().Update(ctx, loan); err != nil {
			return err
		}

		var movementType domain.MovementType
		switch {
		case irreparable:
			movementType = domain.MovementRetire
		case damageCharge.GreaterThan(decimal.Zero):
			movementType = domain.MovementRepair
		default:
			movementType = domain.MovementReturn
		}

		movement := &domain.KardexMovement{
			ToolUnitID:   unit.ID,
			CustomerID:   loan.CustomerID,
			MovementType: movementType,
			MovementDate: now,
			Details:      fmt.Sprintf("Return of loan ID %d - damage: %s - user: %s", loanID, damageCharge.String(), actor),
		}
		return tx.Kardex().Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "loan returned", "loan_id", loanID, "fine", loan.FineAmount.String(), "damage", loan.DamageCharge.String())
	return loan, nil
}

// ApplyDamage records a damage charge on an already returned loan. Unlike
// ReturnLoan it writes no kardex entry.
func (s *loanService) ApplyDamage(ctx context.Context, loanID int32, amount decimal.Decimal, irreparable bool) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		loan, err := tx.Loans().GetByID(ctx, loanID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reject("loan not found")
		}
		if err != nil {
			return err
		}
		if !loan.Returned() {
			return domain.Reject("damage can only be applied to returned loans")
		}

		if irreparable {
			unit, err := tx.ToolUnits().GetByID(ctx, loan.ToolUnitID)
			if err != nil {
				return err
			}
			loan.DamageCharge = unit.ToolGroup.ReplacementValue
			if err := tx.ToolUnits().UpdateStatus(ctx, unit.ID, domain.ToolStatusRetired); err != nil {
				return err
			}
		} else {
			loan.DamageCharge = amount
		}

		return tx.Loans().Update(ctx, loan)
	})
}

// PayDebts settles a returned loan in full. There is no partial payment
// model: both the fine and the damage charge are zeroed.
func (s *loanService) PayDebts(ctx context.Context, loanID int32) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		loan, err := tx.Loans().GetByID(ctx, loanID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reject("loan not found")
		}
		if err != nil {
			return err
		}
		if !loan.Returned() {
			return domain.Reject("debts can only be paid on returned loans")
		}

		loan.FineAmount = decimal.Zero
		loan.DamageCharge = decimal.Zero
		return tx.Loans().Update(ctx, loan)
	})
}

func (s *loanService) ListActive(ctx context.Context) ([]domain.LoanSummary, error) {
	now := time.Now()
	return s.store.Loans().ListActiveInRange(ctx, now.AddDate(0, -1, 0), now.AddDate(0, 1, 0))
}

func (s *loanService) ListReturnedWithDebts(ctx context.Context) ([]domain.LoanSummary, error) {
	return s.store.Loans().ListReturnedWithDebts(ctx)
}

// wholeDays truncates the span between from and to to whole calendar days.
func wholeDays(from, to time.Time) int64 {
	return int64(to.Sub(from).Hours() / 24)
}

// rentalCost charges the daily rate per whole day until the due date, with a
// floor of one day: a loan due later the same day still costs a full day.
func rentalCost(dailyRate decimal.Decimal, now, dueDate time.Time) decimal.Decimal {
	days := wholeDays(now, dueDate)
	if days < 1 {
		days = 1
	}
	return dailyRate.Mul(decimal.NewFromInt(days))
}
