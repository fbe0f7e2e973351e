package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"
)

// statusMovements is the finite mapping from a transition's target status to
// the kardex movement it emits. Targets absent from the map (LOANED) emit
// nothing: loan-driven transitions are recorded by the Loan Engine itself.
var statusMovements = map[domain.ToolStatus]domain.MovementType{
	domain.ToolStatusInRepair:  domain.MovementRepair,
	domain.ToolStatusRetired:   domain.MovementRetire,
	domain.ToolStatusAvailable: domain.MovementReEntry,
}

type toolUnitService struct {
	store repository.Store
}

func NewToolUnitService(store repository.Store) ToolUnitService {
	return &toolUnitService{store: store}
}

// ChangeStatus drives the unit state machine. No-op transitions are rejected
// rather than silently accepted, and RETIRED is terminal.
func (s *toolUnitService) ChangeStatus(ctx context.Context, unitID int32, newStatus domain.ToolStatus, actor string) (*domain.ToolUnit, error) {
	var unit *domain.ToolUnit
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		var err error
		unit, err = s.changeStatusTx(ctx, tx, unitID, newStatus, actor)
		return err
	})
	if err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *toolUnitService) changeStatusTx(ctx context.Context, tx repository.Store, unitID int32, newStatus domain.ToolStatus, actor string) (*domain.ToolUnit, error) {
	unit, err := tx.ToolUnits().GetByID(ctx, unitID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.Reject("tool unit not found")
	}
	if err != nil {
		return nil, err
	}

	if unit.Status == newStatus {
		return nil, domain.Reject(fmt.Sprintf("unit is already in status %s", newStatus))
	}
	if unit.Status == domain.ToolStatusRetired {
		return nil, domain.Reject("unit has already been retired")
	}

	if movementType, ok := statusMovements[newStatus]; ok {
		system, err := ensureSystemCustomer(ctx, tx)
		if err != nil {
			return nil, err
		}
		movement := &domain.KardexMovement{
			ToolUnitID:   unit.ID,
			CustomerID:   system.ID,
			MovementType: movementType,
			Details:      fmt.Sprintf("Status change: %s -> %s - user: %s", unit.Status, newStatus, actor),
		}
		if err := tx.Kardex().Create(ctx, movement); err != nil {
			return nil, err
		}
	}

	if err := tx.ToolUnits().UpdateStatus(ctx, unit.ID, newStatus); err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "tool unit status changed", "unit_id", unitID, "from", unit.Status, "to", newStatus)

	unit.Status = newStatus
	return unit, nil
}

// RetireFromRepair takes a unit out of repair permanently and charges its
// replacement value to the most recent returned loan of that unit.
func (s *toolUnitService) RetireFromRepair(ctx context.Context, unitID int32, actor string) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		unit, err := tx.ToolUnits().GetByID(ctx, unitID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reject("tool unit not found")
		}
		if err != nil {
			return err
		}
		if unit.Status != domain.ToolStatusInRepair {
			return domain.Reject("unit is not under repair")
		}

		loan, err := tx.Loans().LatestReturnedForUnit(ctx, unitID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reject("no returned loan found for this unit")
		}
		if err != nil {
			return err
		}

		loan.DamageCharge = unit.ToolGroup.ReplacementValue
		if err := tx.Loans().Update(ctx, loan); err != nil {
			return err
		}

		_, err = s.changeStatusTx(ctx, tx, unitID, domain.ToolStatusRetired, actor)
		return err
	})
}

func (s *toolUnitService) GetUnit(ctx context.Context, unitID int32) (*domain.ToolUnit, error) {
	unit, err := s.store.ToolUnits().GetByID(ctx, unitID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.Reject("tool unit not found")
	}
	return unit, err
}

func (s *toolUnitService) ListUnits(ctx context.Context) ([]domain.ToolUnit, error) {
	return s.store.ToolUnits().ListWithGroup(ctx)
}

// RealStock counts the units of a group currently available for loan.
func (s *toolUnitService) RealStock(ctx context.Context, toolGroupID int32) (int64, error) {
	return s.store.ToolUnits().CountByGroupAndStatus(ctx, toolGroupID, domain.ToolStatusAvailable)
}
