package service

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// Actor is the name of the authenticated staff member performing an
// operation, used in kardex audit strings. Handlers pass SystemActor when no
// principal is present.
const SystemActor = "system"

type LoanService interface {
	RegisterLoan(ctx context.Context, toolGroupID, customerID int32, dueDate time.Time, actor string) (*domain.Loan, error)
	ReturnLoan(ctx context.Context, loanID int32, damageCharge decimal.Decimal, irreparable bool, actor string) (*domain.Loan, error)
	ApplyDamage(ctx context.Context, loanID int32, amount decimal.Decimal, irreparable bool) error
	PayDebts(ctx context.Context, loanID int32) error
	ListActive(ctx context.Context) ([]domain.LoanSummary, error)
	ListReturnedWithDebts(ctx context.Context) ([]domain.LoanSummary, error)
}

type ToolUnitService interface {
	ChangeStatus(ctx context.Context, unitID int32, newStatus domain.ToolStatus, actor string) (*domain.ToolUnit, error)
	RetireFromRepair(ctx context.Context, unitID int32, actor string) error
	GetUnit(ctx context.Context, unitID int32) (*domain.ToolUnit, error)
	ListUnits(ctx context.Context) ([]domain.ToolUnit, error)
	RealStock(ctx context.Context, toolGroupID int32) (int64, error)
}

type ToolGroupService interface {
	RegisterToolGroup(ctx context.Context, name, category string, replacementValue, pricePerDay decimal.Decimal, stock int, actor string) (*domain.ToolGroup, error)
	GetToolGroup(ctx context.Context, id int32) (*domain.ToolGroup, error)
	ListToolGroups(ctx context.Context) ([]domain.ToolGroup, error)
	ListWithAvailableUnits(ctx context.Context) ([]domain.ToolGroup, error)
}

type CustomerService interface {
	RegisterCustomer(ctx context.Context, name, rut, phone, email string) (*domain.Customer, error)
	ChangeStatus(ctx context.Context, id int32, newStatus domain.CustomerStatus) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListByStatus(ctx context.Context, status domain.CustomerStatus) ([]domain.Customer, error)
}

type TariffService interface {
	UpdateTariff(ctx context.Context, dailyRentalRate, dailyFineRate decimal.Decimal) (*domain.Tariff, error)
	GetTariff(ctx context.Context, id int32) (*domain.Tariff, error)
	ListTariffs(ctx context.Context) ([]domain.Tariff, error)
}

type KardexService interface {
	ListMovements(ctx context.Context) ([]domain.KardexMovement, error)
	ListByToolGroup(ctx context.Context, toolGroupID int32) ([]domain.KardexMovement, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.KardexMovement, error)
}

type ReportService interface {
	ActiveLoans(ctx context.Context, from, to time.Time) ([]domain.LoanSummary, error)
	OverdueCustomers(ctx context.Context) ([]domain.Customer, error)
	TopToolGroups(ctx context.Context, from, to time.Time) ([]domain.ToolGroupRanking, error)
	CustomersWithDebt(ctx context.Context) ([]domain.CustomerDebt, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// EnsureUser creates a staff account if the username is not taken yet.
	// Used to seed the initial admin from configuration.
	EnsureUser(ctx context.Context, username, password string, role domain.Role) error
}

type EmailService interface {
	SendDebtReminder(ctx context.Context, email, name string, totalDebt decimal.Decimal, hasOverdueLoan bool) error
}
