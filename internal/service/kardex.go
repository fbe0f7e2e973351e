package service

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type kardexService struct {
	store repository.Store
}

func NewKardexService(store repository.Store) KardexService {
	return &kardexService{store: store}
}

func (s *kardexService) ListMovements(ctx context.Context) ([]domain.KardexMovement, error) {
	return s.store.Kardex().ListWithDetails(ctx)
}

func (s *kardexService) ListByToolGroup(ctx context.Context, toolGroupID int32) ([]domain.KardexMovement, error) {
	return s.store.Kardex().ListByToolGroup(ctx, toolGroupID)
}

func (s *kardexService) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.KardexMovement, error) {
	return s.store.Kardex().ListByDateRange(ctx, from, to)
}
