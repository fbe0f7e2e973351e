package postgres

import (
	"context"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type tariffRepository struct {
	db DBTX
}

func NewTariffRepository(db DBTX) repository.TariffRepository {
	return &tariffRepository{db: db}
}

func (r *tariffRepository) Create(ctx context.Context, t *domain.Tariff) error {
	query := `INSERT INTO tariffs (daily_rental_rate, daily_fine_rate) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.DailyRentalRate, t.DailyFineRate).Scan(&t.ID)
}

func (r *tariffRepository) GetByID(ctx context.Context, id int32) (*domain.Tariff, error) {
	t := &domain.Tariff{}
	query := `SELECT id, daily_rental_rate, daily_fine_rate FROM tariffs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.DailyRentalRate, &t.DailyFineRate)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tariffRepository) Update(ctx context.Context, t *domain.Tariff) error {
	query := `UPDATE tariffs SET daily_rental_rate=$1, daily_fine_rate=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, t.DailyRentalRate, t.DailyFineRate, t.ID)
	return err
}

func (r *tariffRepository) List(ctx context.Context) ([]domain.Tariff, error) {
	query := `SELECT id, daily_rental_rate, daily_fine_rate FROM tariffs ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tariffs []domain.Tariff
	for rows.Next() {
		var t domain.Tariff
		if err := rows.Scan(&t.ID, &t.DailyRentalRate, &t.DailyFineRate); err != nil {
			return nil, err
		}
		tariffs = append(tariffs, t)
	}
	return tariffs, rows.Err()
}
