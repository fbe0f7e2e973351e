package http_test

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockLoanService
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) RegisterLoan(ctx context.Context, toolGroupID, customerID int32, dueDate time.Time, actor string) (*domain.Loan, error) {
	args := m.Called(ctx, toolGroupID, customerID, dueDate, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) ReturnLoan(ctx context.Context, loanID int32, damageCharge decimal.Decimal, irreparable bool, actor string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, damageCharge, irreparable, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) ApplyDamage(ctx context.Context, loanID int32, amount decimal.Decimal, irreparable bool) error {
	args := m.Called(ctx, loanID, amount, irreparable)
	return args.Error(0)
}
func (m *MockLoanService) PayDebts(ctx context.Context, loanID int32) error {
	args := m.Called(ctx, loanID)
	return args.Error(0)
}
func (m *MockLoanService) ListActive(ctx context.Context) ([]domain.LoanSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LoanSummary), args.Error(1)
}
func (m *MockLoanService) ListReturnedWithDebts(ctx context.Context) ([]domain.LoanSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LoanSummary), args.Error(1)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockAuthService) EnsureUser(ctx context.Context, username, password string, role domain.Role) error {
	args := m.Called(ctx, username, password, role)
	return args.Error(0)
}

// MockCustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) RegisterCustomer(ctx context.Context, name, rut, phone, email string) (*domain.Customer, error) {
	args := m.Called(ctx, name, rut, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ChangeStatus(ctx context.Context, id int32, newStatus domain.CustomerStatus) error {
	args := m.Called(ctx, id, newStatus)
	return args.Error(0)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListByStatus(ctx context.Context, status domain.CustomerStatus) ([]domain.Customer, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockTariffService
type MockTariffService struct {
	mock.Mock
}

func (m *MockTariffService) UpdateTariff(ctx context.Context, dailyRentalRate, dailyFineRate decimal.Decimal) (*domain.Tariff, error) {
	args := m.Called(ctx, dailyRentalRate, dailyFineRate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}
func (m *MockTariffService) GetTariff(ctx context.Context, id int32) (*domain.Tariff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}
func (m *MockTariffService) ListTariffs(ctx context.Context) ([]domain.Tariff, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tariff), args.Error(1)
}
