package postgres

import (
	"context"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type toolUnitRepository struct {
	db DBTX
}

func NewToolUnitRepository(db DBTX) repository.ToolUnitRepository {
	return &toolUnitRepository{db: db}
}

func (r *toolUnitRepository) Create(ctx context.Context, u *domain.ToolUnit) error {
	if u.Status == "" {
		u.Status = domain.ToolStatusAvailable
	}
	query := `INSERT INTO tool_units (tool_group_id, status) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.ToolGroupID, u.Status).Scan(&u.ID)
}

func (r *toolUnitRepository) GetByID(ctx context.Context, id int32) (*domain.ToolUnit, error) {
	u := &domain.ToolUnit{ToolGroup: &domain.ToolGroup{Tariff: &domain.Tariff{}}}
	query := `SELECT u.id, u.tool_group_id, u.status,
	                 g.id, g.name, g.category, g.replacement_value, g.tariff_id,
	                 t.id, t.daily_rental_rate, t.daily_fine_rate
	          FROM tool_units u
	          JOIN tool_groups g ON g.id = u.tool_group_id
	          JOIN tariffs t ON t.id = g.tariff_id
	          WHERE u.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.ToolGroupID, &u.Status,
		&u.ToolGroup.ID, &u.ToolGroup.Name, &u.ToolGroup.Category, &u.ToolGroup.ReplacementValue, &u.ToolGroup.TariffID,
		&u.ToolGroup.Tariff.ID, &u.ToolGroup.Tariff.DailyRentalRate, &u.ToolGroup.Tariff.DailyFineRate)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *toolUnitRepository) UpdateStatus(ctx context.Context, id int32, status domain.ToolStatus) error {
	query := `UPDATE tool_units SET status=$1 WHERE id=$2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

// FirstAvailable picks one AVAILABLE unit of the group. Which unit is picked
// among equally eligible ones is not significant; lowest id wins here.
func (r *toolUnitRepository) FirstAvailable(ctx context.Context, toolGroupID int32) (*domain.ToolUnit, error) {
	u := &domain.ToolUnit{}
	query := `SELECT id, tool_group_id, status FROM tool_units
	          WHERE tool_group_id = $1 AND status = $2
	          ORDER BY id LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, toolGroupID, domain.ToolStatusAvailable).Scan(&u.ID, &u.ToolGroupID, &u.Status)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *toolUnitRepository) CountByGroupAndStatus(ctx context.Context, toolGroupID int32, status domain.ToolStatus) (int64, error) {
	var count int64
	query := `SELECT count(*) FROM tool_units WHERE tool_group_id = $1 AND status = $2`
	err := r.db.QueryRowContext(ctx, query, toolGroupID, status).Scan(&count)
	return count, err
}

func (r *toolUnitRepository) ListWithGroup(ctx context.Context) ([]domain.ToolUnit, error) {
	query := `SELECT u.id, u.tool_group_id, u.status, g.name, g.category
	          FROM tool_units u
	          JOIN tool_groups g ON g.id = u.tool_group_id
	          ORDER BY u.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.ToolUnit
	for rows.Next() {
		u := domain.ToolUnit{ToolGroup: &domain.ToolGroup{}}
		if err := rows.Scan(&u.ID, &u.ToolGroupID, &u.Status, &u.ToolGroup.Name, &u.ToolGroup.Category); err != nil {
			return nil, err
		}
		u.ToolGroup.ID = u.ToolGroupID
		units = append(units, u)
	}
	return units, rows.Err()
}
