// Package memory implementa los puertos de ventas y estoque en memoria
// (modo desarrollo sin base de datos y tests).
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/froesalexandre94-DC/zws/internal/domain"
	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
	"github.com/froesalexandre94-DC/zws/internal/domain/repository"
)

var (
	_ repository.SalesRepository = (*SalesRepo)(nil)
	_ repository.StockRepository = (*StockRepo)(nil)
)

// SalesRepo log de ventas en memoria.
type SalesRepo struct {
	mu    sync.RWMutex
	sales []entity.SaleRecord
}

// NewSalesRepository crea el repo con las ventas iniciales.
func NewSalesRepository(seed ...entity.SaleRecord) *SalesRepo {
	r := &SalesRepo{}
	for _, s := range seed {
		r.Append(s)
	}
	return r
}

// Append registra una venta.
func (r *SalesRepo) Append(s entity.SaleRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, cloneSale(s))
}

// ListAll devuelve una copia del log en orden de inserción.
func (r *SalesRepo) ListAll(ctx context.Context) ([]entity.SaleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.SaleRecord, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, cloneSale(s))
	}
	return out, nil
}

// StockRepo tabla de estoque en memoria, clave = código.
type StockRepo struct {
	mu    sync.RWMutex
	items map[string]entity.StockItem
}

// NewStockRepository crea el repo con las filas iniciales (los códigos repetidos se sobrescriben).
func NewStockRepository(seed ...entity.StockItem) *StockRepo {
	r := &StockRepo{items: make(map[string]entity.StockItem, len(seed))}
	for _, it := range seed {
		r.items[it.Code] = cloneItem(it)
	}
	return r
}

// ListAll devuelve todas las filas ordenadas por código ascendente.
func (r *StockRepo) ListAll(ctx context.Context) ([]entity.StockItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.StockItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, cloneItem(it))
	}
	slices.SortFunc(out, func(a, b entity.StockItem) int { return cmp.Compare(a.Code, b.Code) })
	return out, nil
}

// GetByCode devuelve nil, nil si no existe.
func (r *StockRepo) GetByCode(ctx context.Context, code string) (*entity.StockItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[code]
	if !ok {
		return nil, nil
	}
	c := cloneItem(it)
	return &c, nil
}

// Create inserta una fila nueva.
func (r *StockRepo) Create(ctx context.Context, item *entity.StockItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.Code]; ok {
		return domain.ErrDuplicate
	}
	r.items[item.Code] = cloneItem(*item)
	return nil
}

// Update reemplaza la fila con el mismo código.
func (r *StockRepo) Update(ctx context.Context, item *entity.StockItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.Code]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.Code] = cloneItem(*item)
	return nil
}

// Delete elimina la fila por código.
func (r *StockRepo) Delete(ctx context.Context, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, code)
	return nil
}

func cloneSale(s entity.SaleRecord) entity.SaleRecord {
	s.Quantity = cloneInt(s.Quantity)
	return s
}

func cloneItem(it entity.StockItem) entity.StockItem {
	it.Quantity = cloneInt(it.Quantity)
	return it
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
