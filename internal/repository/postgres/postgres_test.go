package postgres_test

import (
	"context"
	"errors"
	"testing"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
	"toolrent-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStore_WithinTx(t *testing.T) {
	ctx := context.Background()

	t.Run("CommitsOnSuccess", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		store := postgres.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO tariffs").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err = store.WithinTx(ctx, func(tx repository.Store) error {
			return tx.Tariffs().Create(ctx, &domain.Tariff{})
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		store := postgres.NewStore(db)
		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err = store.WithinTx(ctx, func(tx repository.Store) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NestedCallReusesTransaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		store := postgres.NewStore(db)

		// Exactly one Begin/Commit pair despite two WithinTx levels
		mock.ExpectBegin()
		mock.ExpectCommit()

		err = store.WithinTx(ctx, func(tx repository.Store) error {
			return tx.WithinTx(ctx, func(inner repository.Store) error {
				return nil
			})
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
