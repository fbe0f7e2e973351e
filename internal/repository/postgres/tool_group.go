package postgres

import (
	"context"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type toolGroupRepository struct {
	db DBTX
}

func NewToolGroupRepository(db DBTX) repository.ToolGroupRepository {
	return &toolGroupRepository{db: db}
}

func (r *toolGroupRepository) Create(ctx context.Context, g *domain.ToolGroup) error {
	query := `INSERT INTO tool_groups (name, category, replacement_value, tariff_id)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, g.Name, g.Category, g.ReplacementValue, g.TariffID).Scan(&g.ID)
}

func (r *toolGroupRepository) GetByID(ctx context.Context, id int32) (*domain.ToolGroup, error) {
	g := &domain.ToolGroup{Tariff: &domain.Tariff{}}
	query := `SELECT g.id, g.name, g.category, g.replacement_value, g.tariff_id,
	                 t.id, t.daily_rental_rate, t.daily_fine_rate
	          FROM tool_groups g
	          JOIN tariffs t ON t.id = g.tariff_id
	          WHERE g.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.Category, &g.ReplacementValue, &g.TariffID,
		&g.Tariff.ID, &g.Tariff.DailyRentalRate, &g.Tariff.DailyFineRate)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *toolGroupRepository) List(ctx context.Context) ([]domain.ToolGroup, error) {
	query := `SELECT g.id, g.name, g.category, g.replacement_value, g.tariff_id,
	                 t.id, t.daily_rental_rate, t.daily_fine_rate
	          FROM tool_groups g
	          JOIN tariffs t ON t.id = g.tariff_id
	          ORDER BY g.id`
	return r.scanList(ctx, query)
}

func (r *toolGroupRepository) ListWithAvailableUnits(ctx context.Context) ([]domain.ToolGroup, error) {
	query := `SELECT g.id, g.name, g.category, g.replacement_value, g.tariff_id,
	                 t.id, t.daily_rental_rate, t.daily_fine_rate
	          FROM tool_groups g
	          JOIN tariffs t ON t.id = g.tariff_id
	          WHERE EXISTS (
	              SELECT 1 FROM tool_units u
	              WHERE u.tool_group_id = g.id AND u.status = 'AVAILABLE'
	          )
	          ORDER BY g.id`
	return r.scanList(ctx, query)
}

func (r *toolGroupRepository) scanList(ctx context.Context, query string, args ...any) ([]domain.ToolGroup, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.ToolGroup
	for rows.Next() {
		g := domain.ToolGroup{Tariff: &domain.Tariff{}}
		if err := rows.Scan(&g.ID, &g.Name, &g.Category, &g.ReplacementValue, &g.TariffID,
			&g.Tariff.ID, &g.Tariff.DailyRentalRate, &g.Tariff.DailyFineRate); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
