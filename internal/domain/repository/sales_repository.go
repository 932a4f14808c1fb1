package repository

import (
	"context"

	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
)

// SalesRepository puerto de lectura para la tabla de ventas.
type SalesRepository interface {
	// ListAll devuelve un snapshot completo de las ventas (codigo, produto, quantidade).
	ListAll(ctx context.Context) ([]entity.SaleRecord, error)
}
