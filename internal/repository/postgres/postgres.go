package postgres

import (
	"context"
	"database/sql"

	"toolrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository can run
// against the pool or inside a transaction without knowing which.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db        *sql.DB
	q         DBTX
	customers repository.CustomerRepository
	groups    repository.ToolGroupRepository
	units     repository.ToolUnitRepository
	tariffs   repository.TariffRepository
	loans     repository.LoanRepository
	kardex    repository.KardexRepository
	users     repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q DBTX) *Store {
	return &Store{
		db:        db,
		q:         q,
		customers: NewCustomerRepository(q),
		groups:    NewToolGroupRepository(q),
		units:     NewToolUnitRepository(q),
		tariffs:   NewTariffRepository(q),
		loans:     NewLoanRepository(q),
		kardex:    NewKardexRepository(q),
		users:     NewUserRepository(q),
	}
}

func (s *Store) Customers() repository.CustomerRepository   { return s.customers }
func (s *Store) ToolGroups() repository.ToolGroupRepository { return s.groups }
func (s *Store) ToolUnits() repository.ToolUnitRepository   { return s.units }
func (s *Store) Tariffs() repository.TariffRepository       { return s.tariffs }
func (s *Store) Loans() repository.LoanRepository           { return s.loans }
func (s *Store) Kardex() repository.KardexRepository        { return s.kardex }
func (s *Store) Users() repository.UserRepository           { return s.users }

// WithinTx begins a transaction and runs fn against a Store bound to it.
// Calls nested inside an already transactional Store reuse the open
// transaction instead of opening a second one.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	if _, ok := s.q.(*sql.Tx); ok {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(newStore(s.db, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
