package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// defaultDailyFineRate is applied to newly registered groups until the
// tariff is edited explicitly.
var defaultDailyFineRate = decimal.NewFromInt(2500)

type toolGroupService struct {
	store repository.Store
}

func NewToolGroupService(store repository.Store) ToolGroupService {
	return &toolGroupService{store: store}
}

// RegisterToolGroup creates the tariff, the group and one AVAILABLE unit per
// initial stock count, then records a single REGISTRY kardex movement for
// the pool. All writes share one transaction.
func (s *toolGroupService) RegisterToolGroup(ctx context.Context, name, category string, replacementValue, pricePerDay decimal.Decimal, stock int, actor string) (*domain.ToolGroup, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(category) == "" {
		return nil, domain.Reject("name, category and replacement value are mandatory")
	}
	if replacementValue.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Reject("replacement value must be greater than zero")
	}
	if pricePerDay.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Reject("daily rental rate must be greater than zero")
	}
	if stock < 0 {
		return nil, domain.Reject("stock cannot be negative")
	}

	var group *domain.ToolGroup
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		tariff := &domain.Tariff{
			DailyRentalRate: pricePerDay,
			DailyFineRate:   defaultDailyFineRate,
		}
		if err := tx.Tariffs().Create(ctx, tariff); err != nil {
			return err
		}

		group = &domain.ToolGroup{
			Name:             name,
			Category:         category,
			ReplacementValue: replacementValue,
			TariffID:         tariff.ID,
			Tariff:           tariff,
		}
		if err := tx.ToolGroups().Create(ctx, group); err != nil {
			return err
		}

		for i := 0; i < stock; i++ {
			unit := domain.ToolUnit{
				ToolGroupID: group.ID,
				Status:      domain.ToolStatusAvailable,
			}
			if err := tx.ToolUnits().Create(ctx, &unit); err != nil {
				return err
			}
			group.Units = append(group.Units, unit)
		}

		if stock == 0 {
			return nil
		}

		system, err := ensureSystemCustomer(ctx, tx)
		if err != nil {
			return err
		}
		movement := &domain.KardexMovement{
			ToolUnitID:   group.Units[0].ID,
			CustomerID:   system.ID,
			MovementType: domain.MovementRegistry,
			Details:      fmt.Sprintf("Group created: %s - initial stock: %d - user: %s", name, stock, actor),
		}
		return tx.Kardex().Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "tool group registered", "group_id", group.ID, "name", name, "stock", stock)
	return group, nil
}

func (s *toolGroupService) GetToolGroup(ctx context.Context, id int32) (*domain.ToolGroup, error) {
	group, err := s.store.ToolGroups().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.Reject("tool group not found")
	}
	return group, err
}

func (s *toolGroupService) ListToolGroups(ctx context.Context) ([]domain.ToolGroup, error) {
	return s.store.ToolGroups().List(ctx)
}

func (s *toolGroupService) ListWithAvailableUnits(ctx context.Context) ([]domain.ToolGroup, error) {
	return s.store.ToolGroups().ListWithAvailableUnits(ctx)
}
