package repository

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
	ListByStatus(ctx context.Context, status domain.CustomerStatus) ([]domain.Customer, error)

	// Report queries
	ListWithOverdueLoans(ctx context.Context, now time.Time) ([]domain.Customer, error)
	ListWithDebt(ctx context.Context, now time.Time) ([]domain.CustomerDebt, error)
}

type ToolGroupRepository interface {
	Create(ctx context.Context, group *domain.ToolGroup) error
	GetByID(ctx context.Context, id int32) (*domain.ToolGroup, error)
	List(ctx context.Context) ([]domain.ToolGroup, error)
	ListWithAvailableUnits(ctx context.Context) ([]domain.ToolGroup, error)
}

type ToolUnitRepository interface {
	Create(ctx context.Context, unit *domain.ToolUnit) error
	// GetByID loads the unit with its owning group and tariff populated.
	GetByID(ctx context.Context, id int32) (*domain.ToolUnit, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ToolStatus) error
	FirstAvailable(ctx context.Context, toolGroupID int32) (*domain.ToolUnit, error)
	CountByGroupAndStatus(ctx context.Context, toolGroupID int32, status domain.ToolStatus) (int64, error)
	ListWithGroup(ctx context.Context) ([]domain.ToolUnit, error)
}

type TariffRepository interface {
	Create(ctx context.Context, tariff *domain.Tariff) error
	GetByID(ctx context.Context, id int32) (*domain.Tariff, error)
	Update(ctx context.Context, tariff *domain.Tariff) error
	List(ctx context.Context) ([]domain.Tariff, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	Update(ctx context.Context, loan *domain.Loan) error

	// Loan Engine eligibility queries
	HasOverdueUnreturned(ctx context.Context, customerID int32, now time.Time) (bool, error)
	HasUnpaidFines(ctx context.Context, customerID int32) (bool, error)
	HasUnpaidDamage(ctx context.Context, customerID int32) (bool, error)
	CountUnreturned(ctx context.Context, customerID int32) (int64, error)
	HasUnreturnedInGroup(ctx context.Context, customerID, toolGroupID int32) (bool, error)
	LatestReturnedForUnit(ctx context.Context, toolUnitID int32) (*domain.Loan, error)

	// Report queries
	ListActiveInRange(ctx context.Context, from, to time.Time) ([]domain.LoanSummary, error)
	ListReturnedWithDebts(ctx context.Context) ([]domain.LoanSummary, error)
	CountByGroupInRange(ctx context.Context, from, to time.Time) ([]domain.ToolGroupRanking, error)
}

type KardexRepository interface {
	Create(ctx context.Context, movement *domain.KardexMovement) error
	ListWithDetails(ctx context.Context) ([]domain.KardexMovement, error)
	ListByToolGroup(ctx context.Context, toolGroupID int32) ([]domain.KardexMovement, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.KardexMovement, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Store bundles the repositories and provides transactional execution. Every
// Loan Engine operation runs its reads and writes through one WithinTx call
// so the read-validate-write sequence is atomic.
type Store interface {
	Customers() CustomerRepository
	ToolGroups() ToolGroupRepository
	ToolUnits() ToolUnitRepository
	Tariffs() TariffRepository
	Loans() LoanRepository
	Kardex() KardexRepository
	Users() UserRepository

	// WithinTx runs fn against a Store whose repositories are bound to a
	// single database transaction. fn returning nil commits; an error rolls
	// back and is returned unchanged.
	WithinTx(ctx context.Context, fn func(Store) error) error
}
