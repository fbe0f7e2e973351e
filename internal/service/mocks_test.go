package service_test

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// mockStore satisfies repository.Store with testify mocks per repository.
// WithinTx runs the callback against the store itself, so services see the
// same mocks inside and outside transactions.
type mockStore struct {
	customers *MockCustomerRepo
	groups    *MockToolGroupRepo
	units     *MockToolUnitRepo
	tariffs   *MockTariffRepo
	loans     *MockLoanRepo
	kardex    *MockKardexRepo
	users     *MockUserRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		customers: new(MockCustomerRepo),
		groups:    new(MockToolGroupRepo),
		units:     new(MockToolUnitRepo),
		tariffs:   new(MockTariffRepo),
		loans:     new(MockLoanRepo),
		kardex:    new(MockKardexRepo),
		users:     new(MockUserRepo),
	}
}

func (s *mockStore) Customers() repository.CustomerRepository { return s.customers }
func (s *mockStore) ToolGroups() repository.ToolGroupRepository {
	return s.groups
}
func (s *mockStore) ToolUnits() repository.ToolUnitRepository { return s.units }
func (s *mockStore) Tariffs() repository.TariffRepository     { return s.tariffs }
func (s *mockStore) Loans() repository.LoanRepository         { return s.loans }
func (s *mockStore) Kardex() repository.KardexRepository      { return s.kardex }
func (s *mockStore) Users() repository.UserRepository         { return s.users }

func (s *mockStore) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) ListByStatus(ctx context.Context, status domain.CustomerStatus) ([]domain.Customer, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) ListWithOverdueLoans(ctx context.Context, now time.Time) ([]domain.Customer, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) ListWithDebt(ctx context.Context, now time.Time) ([]domain.CustomerDebt, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.CustomerDebt), args.Error(1)
}

// MockToolGroupRepo
type MockToolGroupRepo struct {
	mock.Mock
}

func (m *MockToolGroupRepo) Create(ctx context.Context, group *domain.ToolGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}
func (m *MockToolGroupRepo) GetByID(ctx context.Context, id int32) (*domain.ToolGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolGroup), args.Error(1)
}
func (m *MockToolGroupRepo) List(ctx context.Context) ([]domain.ToolGroup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ToolGroup), args.Error(1)
}
func (m *MockToolGroupRepo) ListWithAvailableUnits(ctx context.Context) ([]domain.ToolGroup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ToolGroup), args.Error(1)
}

// MockToolUnitRepo
type MockToolUnitRepo struct {
	mock.Mock
}

func (m *MockToolUnitRepo) Create(ctx context.Context, unit *domain.ToolUnit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}
func (m *MockToolUnitRepo) GetByID(ctx context.Context, id int32) (*domain.ToolUnit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolUnit), args.Error(1)
}
func (m *MockToolUnitRepo) UpdateStatus(ctx context.Context, id int32, status domain.ToolStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockToolUnitRepo) FirstAvailable(ctx context.Context, toolGroupID int32) (*domain.ToolUnit, error) {
	args := m.Called(ctx, toolGroupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ToolUnit), args.Error(1)
}
func (m *MockToolUnitRepo) CountByGroupAndStatus(ctx context.Context, toolGroupID int32, status domain.ToolStatus) (int64, error) {
	args := m.Called(ctx, toolGroupID, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockToolUnitRepo) ListWithGroup(ctx context.Context) ([]domain.ToolUnit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ToolUnit), args.Error(1)
}

// MockTariffRepo
type MockTariffRepo struct {
	mock.Mock
}

func (m *MockTariffRepo) Create(ctx context.Context, tariff *domain.Tariff) error {
	args := m.Called(ctx, tariff)
	return args.Error(0)
}
func (m *MockTariffRepo) GetByID(ctx context.Context, id int32) (*domain.Tariff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}
func (m *MockTariffRepo) Update(ctx context.Context, tariff *domain.Tariff) error {
	args := m.Called(ctx, tariff)
	return args.Error(0)
}
func (m *MockTariffRepo) List(ctx context.Context) ([]domain.Tariff, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tariff), args.Error(1)
}

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) Update(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) HasOverdueUnreturned(ctx context.Context, customerID int32, now time.Time) (bool, error) {
	args := m.Called(ctx, customerID, now)
	return args.Bool(0), args.Error(1)
}
func (m *MockLoanRepo) HasUnpaidFines(ctx context.Context, customerID int32) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLoanRepo) HasUnpaidDamage(ctx context.Context, customerID int32) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLoanRepo) CountUnreturned(ctx context.Context, customerID int32) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLoanRepo) HasUnreturnedInGroup(ctx context.Context, customerID, toolGroupID int32) (bool, error) {
	args := m.Called(ctx, customerID, toolGroupID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLoanRepo) LatestReturnedForUnit(ctx context.Context, toolUnitID int32) (*domain.Loan, error) {
	args := m.Called(ctx, toolUnitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListActiveInRange(ctx context.Context, from, to time.Time) ([]domain.LoanSummary, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.LoanSummary), args.Error(1)
}
func (m *MockLoanRepo) ListReturnedWithDebts(ctx context.Context) ([]domain.LoanSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LoanSummary), args.Error(1)
}
func (m *MockLoanRepo) CountByGroupInRange(ctx context.Context, from, to time.Time) ([]domain.ToolGroupRanking, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.ToolGroupRanking), args.Error(1)
}

// MockKardexRepo
type MockKardexRepo struct {
	mock.Mock
}

func (m *MockKardexRepo) Create(ctx context.Context, movement *domain.KardexMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}
func (m *MockKardexRepo) ListWithDetails(ctx context.Context) ([]domain.KardexMovement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.KardexMovement), args.Error(1)
}
func (m *MockKardexRepo) ListByToolGroup(ctx context.Context, toolGroupID int32) ([]domain.KardexMovement, error) {
	args := m.Called(ctx, toolGroupID)
	return args.Get(0).([]domain.KardexMovement), args.Error(1)
}
func (m *MockKardexRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.KardexMovement, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.KardexMovement), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
