package service

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type reportService struct {
	store repository.Store
}

func NewReportService(store repository.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) ActiveLoans(ctx context.Context, from, to time.Time) ([]domain.LoanSummary, error) {
	return s.store.Loans().ListActiveInRange(ctx, from, to)
}

func (s *reportService) OverdueCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.store.Customers().ListWithOverdueLoans(ctx, time.Now())
}

func (s *reportService) TopToolGroups(ctx context.Context, from, to time.Time) ([]domain.ToolGroupRanking, error) {
	return s.store.Loans().CountByGroupInRange(ctx, from, to)
}

func (s *reportService) CustomersWithDebt(ctx context.Context) ([]domain.CustomerDebt, error) {
	return s.store.Customers().ListWithDebt(ctx, time.Now())
}
