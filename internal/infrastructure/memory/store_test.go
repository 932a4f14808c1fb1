package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/froesalexandre94-DC/zws/internal/domain"
	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
	"github.com/froesalexandre94-DC/zws/internal/infrastructure/memory"
)

func qty(n int) *int { return &n }

func TestStockRepo_ListAllOrdenaPorCodigo(t *testing.T) {
	repo := memory.NewStockRepository(
		entity.StockItem{Code: "C"},
		entity.StockItem{Code: "A"},
		entity.StockItem{Code: "B"},
	)

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)

	got := []string{list[0].Code, list[1].Code, list[2].Code}
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestStockRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStockRepository()

	require.NoError(t, repo.Create(ctx, &entity.StockItem{Code: "A", Quantity: qty(3)}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.StockItem{Code: "A"}), domain.ErrDuplicate)

	it, err := repo.GetByCode(ctx, "A")
	require.NoError(t, err)
	require.NotNil(t, it)
	assert.Equal(t, 3, it.QuantityOrZero())

	// la copia devuelta no comparte memoria con el repo
	*it.Quantity = 99
	again, _ := repo.GetByCode(ctx, "A")
	assert.Equal(t, 3, again.QuantityOrZero())

	require.NoError(t, repo.Update(ctx, &entity.StockItem{Code: "A", Product: "Porca", Quantity: qty(7)}))
	again, _ = repo.GetByCode(ctx, "A")
	assert.Equal(t, "Porca", again.Product)

	assert.ErrorIs(t, repo.Update(ctx, &entity.StockItem{Code: "Z"}), domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "A"))
	assert.ErrorIs(t, repo.Delete(ctx, "A"), domain.ErrNotFound)

	missing, err := repo.GetByCode(ctx, "A")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSalesRepo_ContextoCancelado(t *testing.T) {
	repo := memory.NewSalesRepository(entity.SaleRecord{Code: "A", Quantity: qty(1)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
