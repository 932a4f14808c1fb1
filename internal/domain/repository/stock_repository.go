package repository

import (
	"context"

	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para la tabla de estoque (DIP).
// El código es la clave única de cada fila.
type StockRepository interface {
	// ListAll devuelve todas las filas ordenadas por código ascendente.
	ListAll(ctx context.Context) ([]entity.StockItem, error)
	// GetByCode devuelve nil, nil si el código no existe.
	GetByCode(ctx context.Context, code string) (*entity.StockItem, error)
	// Create devuelve domain.ErrDuplicate si el código ya existe.
	Create(ctx context.Context, item *entity.StockItem) error
	// Update y Delete devuelven domain.ErrNotFound si el código no existe.
	Update(ctx context.Context, item *entity.StockItem) error
	Delete(ctx context.Context, code string) error
}
