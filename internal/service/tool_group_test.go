package service_test

import (
	"context"
	"testing"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestToolGroupService_RegisterToolGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesTariffUnitsAndRegistryMovement", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewToolGroupService(store)

		store.tariffs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tariff")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Tariff).ID = 5
		}).Return(nil)
		store.groups.On("Create", mock.Anything, mock.AnythingOfType("*domain.ToolGroup")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.ToolGroup).ID = 2
		}).Return(nil)
		unitID := int32(0)
		store.units.On("Create", mock.Anything, mock.AnythingOfType("*domain.ToolUnit")).Run(func(args mock.Arguments) {
			unitID++
			args.Get(1).(*domain.ToolUnit).ID = unitID
		}).Return(nil)
		store.customers.On("GetByEmail", mock.Anything, domain.SystemCustomerEmail).Return(systemCustomer(), nil)
		store.kardex.On("Create", mock.Anything, mock.AnythingOfType("*domain.KardexMovement")).Return(nil)

		group, err := svc.RegisterToolGroup(ctx, "Drill", "Power Tools",
			decimal.NewFromInt(15000), decimal.NewFromInt(1000), 3, "ana")
		assert.NoError(t, err)
		assert.Len(t, group.Units, 3)
		assert.Equal(t, int32(5), group.TariffID)
		for _, unit := range group.Units {
			assert.Equal(t, domain.ToolStatusAvailable, unit.Status)
			assert.Equal(t, int32(2), unit.ToolGroupID)
		}

		// New groups get the rate from the request and the default fine rate
		tariff := store.tariffs.Calls[0].Arguments.Get(1).(*domain.Tariff)
		assert.True(t, tariff.DailyRentalRate.Equal(decimal.NewFromInt(1000)))
		assert.True(t, tariff.DailyFineRate.Equal(decimal.NewFromInt(2500)))

		// One REGISTRY movement for the whole pool
		store.kardex.AssertNumberOfCalls(t, "Create", 1)
		movement := store.kardex.Calls[0].Arguments.Get(1).(*domain.KardexMovement)
		assert.Equal(t, domain.MovementRegistry, movement.MovementType)
		assert.Equal(t, int32(1), movement.ToolUnitID)
	})

	t.Run("ZeroStockSkipsKardex", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewToolGroupService(store)
		store.tariffs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tariff")).Return(nil)
		store.groups.On("Create", mock.Anything, mock.AnythingOfType("*domain.ToolGroup")).Return(nil)

		group, err := svc.RegisterToolGroup(ctx, "Drill", "Power Tools",
			decimal.NewFromInt(15000), decimal.NewFromInt(1000), 0, "ana")
		assert.NoError(t, err)
		assert.Empty(t, group.Units)
		store.kardex.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("RejectsBlankName", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewToolGroupService(store)

		group, err := svc.RegisterToolGroup(ctx, "  ", "Power Tools",
			decimal.NewFromInt(15000), decimal.NewFromInt(1000), 1, "ana")
		assert.Error(t, err)
		assert.Nil(t, group)
		assert.Contains(t, err.Error(), "mandatory")
	})

	t.Run("RejectsNonPositiveReplacementValue", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewToolGroupService(store)

		group, err := svc.RegisterToolGroup(ctx, "Drill", "Power Tools",
			decimal.Zero, decimal.NewFromInt(1000), 1, "ana")
		assert.Error(t, err)
		assert.Nil(t, group)
		assert.Contains(t, err.Error(), "replacement value")
	})

	t.Run("RejectsNegativeStock", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewToolGroupService(store)

		group, err := svc.RegisterToolGroup(ctx, "Drill", "Power Tools",
			decimal.NewFromInt(15000), decimal.NewFromInt(1000), -1, "ana")
		assert.Error(t, err)
		assert.Nil(t, group)
		assert.Contains(t, err.Error(), "stock")
	})
}
