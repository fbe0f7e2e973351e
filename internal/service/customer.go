package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type customerService struct {
	store repository.Store
}

func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{store: store}
}

func (s *customerService) RegisterCustomer(ctx context.Context, name, rut, phone, email string) (*domain.Customer, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(rut) == "" ||
		strings.TrimSpace(phone) == "" || strings.TrimSpace(email) == "" {
		return nil, domain.Reject("name, RUT, phone and email are mandatory")
	}

	customer := &domain.Customer{
		Name:   name,
		RUT:    rut,
		Phone:  phone,
		Email:  email,
		Status: domain.CustomerStatusActive,
	}
	if err := s.store.Customers().Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ChangeStatus(ctx context.Context, id int32, newStatus domain.CustomerStatus) error {
	customer, err := s.store.Customers().GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Reject("customer not found")
	}
	if err != nil {
		return err
	}

	customer.Status = newStatus
	return s.store.Customers().Update(ctx, customer)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.store.Customers().List(ctx)
}

func (s *customerService) ListByStatus(ctx context.Context, status domain.CustomerStatus) ([]domain.Customer, error) {
	return s.store.Customers().ListByStatus(ctx, status)
}

// ensureSystemCustomer returns the reserved customer that automated kardex
// entries are attributed to, creating it on first use.
func ensureSystemCustomer(ctx context.Context, store repository.Store) (*domain.Customer, error) {
	system, err := store.Customers().GetByEmail(ctx, domain.SystemCustomerEmail)
	if err == nil {
		return system, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	system = &domain.Customer{
		Name:   "System",
		RUT:    "0-0",
		Phone:  "000",
		Email:  domain.SystemCustomerEmail,
		Status: domain.CustomerStatusActive,
	}
	if err := store.Customers().Create(ctx, system); err != nil {
		return nil, err
	}
	return system, nil
}
