package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/froesalexandre94-DC/zws/internal/application/dto"
	"github.com/froesalexandre94-DC/zws/internal/application/usecase"
	"github.com/froesalexandre94-DC/zws/internal/domain"
	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
	"github.com/froesalexandre94-DC/zws/internal/infrastructure/memory"
)

func qty(n int) *int { return &n }
func str(s string) *string { return &s }

func seededUseCase() *usecase.StockUseCase {
	return usecase.NewStockUseCase(memory.NewStockRepository(
		entity.StockItem{Code: "P-002", Product: "Válvula de pressão", GTIN: "7891000100103", Quantity: qty(12)},
		entity.StockItem{Code: "P-001", Product: "Parafuso sextavado", GTIN: "7891000055502", Quantity: qty(300)},
		entity.StockItem{Code: "P-003", Product: "", GTIN: "", Quantity: nil},
	))
}

func TestStockList_SinFiltroDevuelveTodoOrdenado(t *testing.T) {
	uc := seededUseCase()

	out, err := uc.List(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	assert.Equal(t, "P-001", out.Items[0].Codigo)
	assert.Equal(t, "P-003", out.Items[2].Codigo)
	assert.Equal(t, 3, out.TotalProdutos)
	assert.Equal(t, 312, out.TotalPecas)
}

func TestStockList_FiltroSinDistinguirMayusculas(t *testing.T) {
	uc := seededUseCase()

	out, err := uc.List(context.Background(), "VÁLVULA")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "P-002", out.Items[0].Codigo)

	// los totales siguen siendo del estoque completo
	assert.Equal(t, 3, out.TotalProdutos)
	assert.Equal(t, 312, out.TotalPecas)

	out, err = uc.List(context.Background(), "0055")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "P-001", out.Items[0].Codigo)

	out, err = uc.List(context.Background(), "p-00")
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)

	out, err = uc.List(context.Background(), "inexistente")
	require.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
}

func TestStockCreate_Validaciones(t *testing.T) {
	uc := seededUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateStockItemRequest{Codigo: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateStockItemRequest{Codigo: "P-009", Quantidade: qty(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateStockItemRequest{Codigo: "P-001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err := uc.Create(ctx, dto.CreateStockItemRequest{Codigo: "P-010", Produto: "Arruela", Unidade: "UN"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantidade)
	assert.Equal(t, "UN", out.Unidade)
}

func TestStockUpdate_Parcial(t *testing.T) {
	uc := seededUseCase()
	ctx := context.Background()

	out, err := uc.Update(ctx, "P-002", dto.UpdateStockItemRequest{Quantidade: qty(40), Localizacao: str("A-3")})
	require.NoError(t, err)
	assert.Equal(t, 40, out.Quantidade)
	assert.Equal(t, "A-3", out.Localizacao)
	assert.Equal(t, "Válvula de pressão", out.Produto)

	got, err := uc.GetByCode(ctx, "P-002")
	require.NoError(t, err)
	assert.Equal(t, *out, *got)

	_, err = uc.Update(ctx, "NAO-EXISTE", dto.UpdateStockItemRequest{Produto: str("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, "P-002", dto.UpdateStockItemRequest{Quantidade: qty(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockDelete(t *testing.T) {
	uc := seededUseCase()
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, "P-003"))
	_, err := uc.GetByCode(ctx, "P-003")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "P-003"), domain.ErrNotFound)
}
