package domain

import "time"

type MovementType string

const (
	MovementRegistry MovementType = "REGISTRY" // unit pool created with a new group
	MovementReEntry  MovementType = "RE_ENTRY" // unit back to AVAILABLE after repair
	MovementLoan     MovementType = "LOAN"
	MovementReturn   MovementType = "RETURN"
	MovementRetire   MovementType = "RETIRE"
	MovementRepair   MovementType = "REPAIR"
)

// KardexMovement is one entry of the append-only inventory audit ledger.
// Entries are never mutated or deleted.
type KardexMovement struct {
	ID           int32        `json:"id"`
	ToolUnitID   int32        `json:"tool_unit_id"`
	ToolUnit     *ToolUnit    `json:"tool_unit,omitempty"` // Populated when listing with details
	CustomerID   int32        `json:"customer_id"`
	Customer     *Customer    `json:"customer,omitempty"`
	MovementType MovementType `json:"movement_type"`
	MovementDate time.Time    `json:"movement_date"`
	Details      string       `json:"details"`
}
