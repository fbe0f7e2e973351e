package postgres

import (
	"context"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type kardexRepository struct {
	db DBTX
}

func NewKardexRepository(db DBTX) repository.KardexRepository {
	return &kardexRepository{db: db}
}

func (r *kardexRepository) Create(ctx context.Context, m *domain.KardexMovement) error {
	if m.MovementDate.IsZero() {
		m.MovementDate = time.Now()
	}
	query := `INSERT INTO kardex_movements (tool_unit_id, customer_id, movement_type, movement_date, details)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.ToolUnitID, m.CustomerID, m.MovementType, m.MovementDate, m.Details).Scan(&m.ID)
}

const kardexDetailQuery = `SELECT km.id, km.tool_unit_id, km.customer_id, km.movement_type, km.movement_date, km.details,
	       u.status, g.id, g.name, g.category, c.name, c.rut
	FROM kardex_movements km
	JOIN tool_units u ON u.id = km.tool_unit_id
	JOIN tool_groups g ON g.id = u.tool_group_id
	JOIN customers c ON c.id = km.customer_id`

func (r *kardexRepository) ListWithDetails(ctx context.Context) ([]domain.KardexMovement, error) {
	return r.scanList(ctx, kardexDetailQuery+` ORDER BY km.movement_date DESC`)
}

func (r *kardexRepository) ListByToolGroup(ctx context.Context, toolGroupID int32) ([]domain.KardexMovement, error) {
	return r.scanList(ctx, kardexDetailQuery+` WHERE g.id = $1 ORDER BY km.movement_date DESC`, toolGroupID)
}

func (r *kardexRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.KardexMovement, error) {
	return r.scanList(ctx, kardexDetailQuery+` WHERE km.movement_date BETWEEN $1 AND $2 ORDER BY km.movement_date DESC`, from, to)
}

func (r *kardexRepository) scanList(ctx context.Context, query string, args ...any) ([]domain.KardexMovement, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []domain.KardexMovement
	for rows.Next() {
		m := domain.KardexMovement{
			ToolUnit: &domain.ToolUnit{ToolGroup: &domain.ToolGroup{}},
			Customer: &domain.Customer{},
		}
		if err := rows.Scan(&m.ID, &m.ToolUnitID, &m.CustomerID, &m.MovementType, &m.MovementDate, &m.Details,
			&m.ToolUnit.Status, &m.ToolUnit.ToolGroup.ID, &m.ToolUnit.ToolGroup.Name, &m.ToolUnit.ToolGroup.Category,
			&m.Customer.Name, &m.Customer.RUT); err != nil {
			return nil, err
		}
		m.ToolUnit.ID = m.ToolUnitID
		m.ToolUnit.ToolGroupID = m.ToolUnit.ToolGroup.ID
		m.Customer.ID = m.CustomerID
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
