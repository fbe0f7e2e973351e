package domain

import "github.com/shopspring/decimal"

type ToolStatus string

const (
	ToolStatusAvailable ToolStatus = "AVAILABLE"
	ToolStatusLoaned    ToolStatus = "LOANED"
	ToolStatusInRepair  ToolStatus = "IN_REPAIR"
	ToolStatusRetired   ToolStatus = "RETIRED"
)

// ToolGroup is a catalog entry for a rentable item type. It owns its tariff
// and the pool of physical units created at registration time.
type ToolGroup struct {
	ID               int32           `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	ReplacementValue decimal.Decimal `json:"replacement_value"`
	TariffID         int32           `json:"tariff_id"`
	Tariff           *Tariff         `json:"tariff,omitempty"` // Populated when fetching group details
	Units            []ToolUnit      `json:"units,omitempty"`
}

// ToolUnit is one individually tracked physical instance of a tool group.
// RETIRED is terminal: a unit never transitions out of it.
type ToolUnit struct {
	ID          int32      `json:"id"`
	ToolGroupID int32      `json:"tool_group_id"`
	ToolGroup   *ToolGroup `json:"tool_group,omitempty"` // Populated when fetching unit details
	Status      ToolStatus `json:"status"`
}

// Tariff holds the daily rental rate and daily late-fine rate for one group.
type Tariff struct {
	ID              int32           `json:"id"`
	DailyRentalRate decimal.Decimal `json:"daily_rental_rate"`
	DailyFineRate   decimal.Decimal `json:"daily_fine_rate"`
}
