package inventory

import (
	"cmp"
	"slices"

	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
)

const (
	DefaultTopN              = 10
	DefaultLowStockThreshold = 50
)

// Options parámetros del agregador. Valores <= 0 toman el default.
type Options struct {
	TopN              int
	LowStockThreshold int
}

func (o Options) withDefaults() Options {
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.LowStockThreshold <= 0 {
		o.LowStockThreshold = DefaultLowStockThreshold
	}
	return o
}

// Summary las tres vistas derivadas. Ningún slice es nil.
type Summary struct {
	ProductsWithData []entity.ProductSummary // uno por fila de estoque, en el orden del estoque
	TopSold          []entity.ProductSummary // por total vendido desc, máximo TopN
	LowStock         []entity.ProductSummary // quantidade < umbral, por quantidade asc
}

// EmptySummary resultado bien formado sin datos.
func EmptySummary() Summary {
	return Summary{
		ProductsWithData: []entity.ProductSummary{},
		TopSold:          []entity.ProductSummary{},
		LowStock:         []entity.ProductSummary{},
	}
}

// Aggregate cruza el snapshot de ventas con el de estoque (servicio de dominio, función pura).
//
// El estoque manda: las ventas cuyo código no está en el estoque se descartan.
// Los ordenamientos son estables, así que los empates conservan el orden del estoque.
func Aggregate(sales []entity.SaleRecord, stock []entity.StockItem, opts Options) Summary {
	opts = opts.withDefaults()

	soldByCode := make(map[string]int, len(stock))
	for _, s := range sales {
		soldByCode[s.Code] += s.QuantityOrZero()
	}

	products := make([]entity.ProductSummary, 0, len(stock))
	for _, item := range stock {
		products = append(products, entity.ProductSummary{
			Code:      item.Code,
			Product:   item.DisplayName(),
			Quantity:  item.QuantityOrZero(),
			TotalSold: soldByCode[item.Code],
		})
	}

	top := slices.Clone(products)
	slices.SortStableFunc(top, func(a, b entity.ProductSummary) int {
		return cmp.Compare(b.TotalSold, a.TotalSold)
	})
	if len(top) > opts.TopN {
		top = top[:opts.TopN]
	}

	low := make([]entity.ProductSummary, 0)
	for _, p := range products {
		if p.Quantity < opts.LowStockThreshold {
			low = append(low, p)
		}
	}
	slices.SortStableFunc(low, func(a, b entity.ProductSummary) int {
		return cmp.Compare(a.Quantity, b.Quantity)
	})

	return Summary{
		ProductsWithData: products,
		TopSold:          top,
		LowStock:         low,
	}
}
