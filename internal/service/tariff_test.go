package service_test

import (
	"context"
	"database/sql"
	"testing"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTariffService_UpdateTariff(t *testing.T) {
	ctx := context.Background()

	t.Run("UpdatesCanonicalTariff", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewTariffService(store)
		existing := &domain.Tariff{ID: 1, DailyRentalRate: decimal.NewFromInt(1000), DailyFineRate: decimal.NewFromInt(500)}
		store.tariffs.On("GetByID", mock.Anything, int32(1)).Return(existing, nil)
		store.tariffs.On("Update", mock.Anything, existing).Return(nil)

		tariff, err := svc.UpdateTariff(ctx, decimal.NewFromInt(1500), decimal.NewFromInt(700))
		assert.NoError(t, err)
		assert.True(t, tariff.DailyRentalRate.Equal(decimal.NewFromInt(1500)))
		assert.True(t, tariff.DailyFineRate.Equal(decimal.NewFromInt(700)))
	})

	t.Run("CreatesWhenMissing", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewTariffService(store)
		store.tariffs.On("GetByID", mock.Anything, int32(1)).Return(nil, sql.ErrNoRows)
		store.tariffs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Tariff")).Return(nil)

		tariff, err := svc.UpdateTariff(ctx, decimal.NewFromInt(1500), decimal.NewFromInt(700))
		assert.NoError(t, err)
		assert.True(t, tariff.DailyRentalRate.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("RejectsNonPositiveRates", func(t *testing.T) {
		store := newMockStore()
		svc := service.NewTariffService(store)

		_, err := svc.UpdateTariff(ctx, decimal.Zero, decimal.NewFromInt(700))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rental rate")

		_, err = svc.UpdateTariff(ctx, decimal.NewFromInt(1500), decimal.NewFromInt(-1))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "fine rate")
	})
}

func TestTariffService_GetTariff(t *testing.T) {
	store := newMockStore()
	svc := service.NewTariffService(store)
	store.tariffs.On("GetByID", mock.Anything, int32(404)).Return(nil, sql.ErrNoRows)

	_, err := svc.GetTariff(context.Background(), 404)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tariff not found")
}
