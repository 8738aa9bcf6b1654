package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// newMockOrderRepository creates a GormOrderRepository with a mocked SQL connection
func newMockOrderRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOrderRepository(gormDB), mock, mockDB
}

func TestGormOrderRepository_AddItemViaProcedure(t *testing.T) {
	t.Run("invokes the stored procedure", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`CALL sp_adicionar_item_pedido\(\$1, \$2, \$3\)`).
			WithArgs(orderID, productID, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AddItemViaProcedure(context.Background(), orderID, productID, 2)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("carries the database message verbatim on rejection", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`CALL sp_adicionar_item_pedido\(\$1, \$2, \$3\)`).
			WithArgs(orderID, productID, 50).
			WillReturnError(errors.New("ERRO: Estoque insuficiente para o produto informado"))

		err := repo.AddItemViaProcedure(context.Background(), orderID, productID, 50)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PROCEDURE_REJECTED", domainErr.Code)
		assert.Contains(t, domainErr.Message, "Estoque insuficiente para o produto informado")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
