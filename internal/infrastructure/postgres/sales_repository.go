package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
	"github.com/froesalexandre94-DC/zws/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo lectura de la tabla de ventas sobre PostgreSQL.
type SalesRepo struct {
	q     Querier
	table string
}

// NewSalesRepository construye el adaptador. table es el nombre (sin comillas) de la tabla de ventas.
func NewSalesRepository(q Querier, table string) *SalesRepo {
	return &SalesRepo{q: q, table: table}
}

// ListAll lee codigo, produto y quantidade de todas las ventas.
func (r *SalesRepo) ListAll(ctx context.Context) ([]entity.SaleRecord, error) {
	query := fmt.Sprintf(`SELECT codigo, produto, quantidade FROM %s`, quoteIdent(r.table))

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	list := make([]entity.SaleRecord, 0)
	for rows.Next() {
		var (
			code    *string
			product *string
			qty     decimal.NullDecimal
		)
		if err := rows.Scan(&code, &product, &qty); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, entity.SaleRecord{
			Code:     textOrEmpty(code),
			Product:  textOrEmpty(product),
			Quantity: quantityFromDecimal(qty),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return list, nil
}
