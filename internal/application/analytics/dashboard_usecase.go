// Package analytics contiene los casos de uso del Dashboard de ventas y estoque.
package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/froesalexandre94-DC/zws/internal/application/dto"
	"github.com/froesalexandre94-DC/zws/internal/domain"
	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
	"github.com/froesalexandre94-DC/zws/internal/domain/inventory"
	"github.com/froesalexandre94-DC/zws/internal/domain/repository"
)

const noTopProduct = "—"

// DashboardUseCase cruza ventas y estoque para el dashboard.
//
// Fuente de datos: SalesRepository y StockRepository (solo lectura).
// No hay caché: cada llamada lee un snapshot nuevo de ambas tablas.
type DashboardUseCase struct {
	salesRepo repository.SalesRepository
	stockRepo repository.StockRepository
	opts      inventory.Options
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	salesRepo repository.SalesRepository,
	stockRepo repository.StockRepository,
	opts inventory.Options,
) *DashboardUseCase {
	return &DashboardUseCase{salesRepo: salesRepo, stockRepo: stockRepo, opts: opts}
}

// GetSales construye la respuesta de GET /api/vendas.
//
// Si cualquiera de las dos lecturas falla, no se agrega nada: devuelve un DTO
// con los tres arrays vacíos junto con un *domain.DataStoreError.
func (uc *DashboardUseCase) GetSales(ctx context.Context) (*dto.SalesDashboardDTO, error) {
	summary, err := uc.summarize(ctx)
	if err != nil {
		empty := toSalesDashboardDTO(inventory.EmptySummary())
		return &empty, err
	}
	out := toSalesDashboardDTO(summary)
	return &out, nil
}

// GetSummary construye los KPIs de GET /api/dashboard/resumo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	summary, err := uc.summarize(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, p := range summary.TopSold {
		total += p.TotalSold
	}
	best := noTopProduct
	if len(summary.TopSold) > 0 {
		best = summary.TopSold[0].Product
	}

	return &dto.DashboardSummaryDTO{
		TotalVendido:       total,
		TotalBaixoEstoque:  len(summary.LowStock),
		ProdutoMaisVendido: best,
		Top10Sold:          uc.withLevels(summary.TopSold),
		BaixoEstoque:       uc.withLevels(summary.LowStock),
	}, nil
}

// summarize lee ambos snapshots en paralelo y los agrega.
func (uc *DashboardUseCase) summarize(ctx context.Context) (inventory.Summary, error) {
	var (
		sales []entity.SaleRecord
		stock []entity.StockItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := uc.salesRepo.ListAll(gctx)
		if err != nil {
			return domain.NewDataStoreError("listar vendas", err)
		}
		sales = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.stockRepo.ListAll(gctx)
		if err != nil {
			return domain.NewDataStoreError("listar estoque", err)
		}
		stock = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return inventory.Summary{}, fmt.Errorf("dashboard: %w", err)
	}

	return inventory.Aggregate(sales, stock, uc.opts), nil
}

func (uc *DashboardUseCase) withLevels(list []entity.ProductSummary) []dto.ProductLevelDTO {
	out := make([]dto.ProductLevelDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductLevelDTO{
			ProductSummaryDTO: toProductSummaryDTO(p),
			Nivel:             string(inventory.ClassifyStock(p.Quantity, uc.opts.LowStockThreshold)),
		})
	}
	return out
}

func toSalesDashboardDTO(s inventory.Summary) dto.SalesDashboardDTO {
	return dto.SalesDashboardDTO{
		Top10Sold:        toProductSummaryDTOs(s.TopSold),
		BaixoEstoque:     toProductSummaryDTOs(s.LowStock),
		ProdutosComDados: toProductSummaryDTOs(s.ProductsWithData),
	}
}

func toProductSummaryDTOs(list []entity.ProductSummary) []dto.ProductSummaryDTO {
	out := make([]dto.ProductSummaryDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toProductSummaryDTO(p))
	}
	return out
}

func toProductSummaryDTO(p entity.ProductSummary) dto.ProductSummaryDTO {
	return dto.ProductSummaryDTO{
		Codigo:       p.Code,
		Produto:      p.Product,
		Quantidade:   p.Quantity,
		TotalVendido: p.TotalSold,
	}
}
