package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan pairs a customer with a tool unit over a due-date window. Loans are
// never deleted: returns, damage charges and debt settlement mutate the row.
type Loan struct {
	ID           int32           `json:"id"`
	CustomerID   int32           `json:"customer_id"`
	Customer     *Customer       `json:"customer,omitempty"` // Populated when fetching loan details
	ToolUnitID   int32           `json:"tool_unit_id"`
	ToolUnit     *ToolUnit       `json:"tool_unit,omitempty"`
	LoanDate     time.Time       `json:"loan_date"`
	DueDate      time.Time       `json:"due_date"`
	ReturnDate   *time.Time      `json:"return_date,omitempty"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	FineAmount   decimal.Decimal `json:"fine_amount"`
	DamageCharge decimal.Decimal `json:"damage_charge"`
}

// Returned reports whether the loan has been closed by a return.
func (l *Loan) Returned() bool {
	return l.ReturnDate != nil
}
