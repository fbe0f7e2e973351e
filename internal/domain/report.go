package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanSummary is the flattened loan row used by the report endpoints.
type LoanSummary struct {
	ID           int32           `json:"id"`
	CustomerName string          `json:"customer_name"`
	ToolName     string          `json:"tool_name"`
	LoanDate     time.Time       `json:"loan_date"`
	DueDate      time.Time       `json:"due_date"`
	ReturnDate   *time.Time      `json:"return_date,omitempty"`
	FineAmount   decimal.Decimal `json:"fine_amount"`
	DamageCharge decimal.Decimal `json:"damage_charge"`
	Status       string          `json:"status"` // ACTIVE or RETURNED
}

// CustomerDebt aggregates what a customer owes: unpaid fines and damage
// charges on returned loans, plus whether any loan is still out past due.
type CustomerDebt struct {
	CustomerID     int32           `json:"customer_id"`
	Name           string          `json:"name"`
	RUT            string          `json:"rut"`
	Email          string          `json:"email"`
	TotalDebt      decimal.Decimal `json:"total_debt"`
	HasOverdueLoan bool            `json:"has_overdue_loan"`
	OldestDueDate  *time.Time      `json:"oldest_due_date,omitempty"`
}

// ToolGroupRanking counts loans per tool group over a date range.
type ToolGroupRanking struct {
	ToolGroupID int32  `json:"tool_group_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	LoanCount   int64  `json:"loan_count"`
}
