package service

import (
	"context"
	"database/sql"
	"errors"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// canonicalTariffID is the tariff row edited by the administrative
// rate-update endpoint.
const canonicalTariffID = 1

type tariffService struct {
	store repository.Store
}

func NewTariffService(store repository.Store) TariffService {
	return &tariffService{store: store}
}

func (s *tariffService) UpdateTariff(ctx context.Context, dailyRentalRate, dailyFineRate decimal.Decimal) (*domain.Tariff, error) {
	if dailyRentalRate.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Reject("daily rental rate must be greater than zero")
	}
	if dailyFineRate.LessThanOrEqual(decimal.Zero) {
		return nil, domain.Reject("daily fine rate must be greater than zero")
	}

	tariff, err := s.store.Tariffs().GetByID(ctx, canonicalTariffID)
	if errors.Is(err, sql.ErrNoRows) {
		tariff = &domain.Tariff{DailyRentalRate: dailyRentalRate, DailyFineRate: dailyFineRate}
		if err := s.store.Tariffs().Create(ctx, tariff); err != nil {
			return nil, err
		}
		return tariff, nil
	}
	if err != nil {
		return nil, err
	}

	tariff.DailyRentalRate = dailyRentalRate
	tariff.DailyFineRate = dailyFineRate
	if err := s.store.Tariffs().Update(ctx, tariff); err != nil {
		return nil, err
	}
	return tariff, nil
}

func (s *tariffService) GetTariff(ctx context.Context, id int32) (*domain.Tariff, error) {
	tariff, err := s.store.Tariffs().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.Reject("tariff not found")
	}
	return tariff, err
}

func (s *tariffService) ListTariffs(ctx context.Context) ([]domain.Tariff, error) {
	return s.store.Tariffs().List(ctx)
}
