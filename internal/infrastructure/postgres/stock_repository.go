package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/froesalexandre94-DC/zws/internal/domain"
	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
	"github.com/froesalexandre94-DC/zws/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// Columnas de la tabla de estoque, en el orden en que se escanean.
const stockColumns = `codigo, produto, "GTIN/EAN", "Localizacao", "Unidade", quantidade`

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q     Querier
	table string
}

// NewStockRepository construye el adaptador de estoque. Pasar pool o tx (Querier).
func NewStockRepository(q Querier, table string) *StockRepo {
	return &StockRepo{q: q, table: table}
}

// ListAll devuelve todas las filas ordenadas por código ascendente.
func (r *StockRepo) ListAll(ctx context.Context) ([]entity.StockItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY codigo ASC`, stockColumns, quoteIdent(r.table))

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	list := make([]entity.StockItem, 0)
	for rows.Next() {
		it, err := scanStockItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	return list, nil
}

// GetByCode obtiene una fila por código; nil, nil si no existe.
func (r *StockRepo) GetByCode(ctx context.Context, code string) (*entity.StockItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE codigo = $1`, stockColumns, quoteIdent(r.table))

	it, err := scanStockItem(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return it, nil
}

// Create inserta una fila nueva.
func (r *StockRepo) Create(ctx context.Context, item *entity.StockItem) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6)`, quoteIdent(r.table), stockColumns)

	_, err := r.q.Exec(ctx, query,
		item.Code, item.Product, item.GTIN, item.Location, item.Unit, item.Quantity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// Update reescribe las columnas descriptivas y la cantidad de la fila con el mismo código.
func (r *StockRepo) Update(ctx context.Context, item *entity.StockItem) error {
	query := fmt.Sprintf(`
		UPDATE %s SET produto = $2, "GTIN/EAN" = $3, "Localizacao" = $4, "Unidade" = $5, quantidade = $6
		WHERE codigo = $1`, quoteIdent(r.table))

	cmd, err := r.q.Exec(ctx, query,
		item.Code, item.Product, item.GTIN, item.Location, item.Unit, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una fila por código.
func (r *StockRepo) Delete(ctx context.Context, code string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE codigo = $1`, quoteIdent(r.table))

	cmd, err := r.q.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var (
		code, product, gtin, location, unit *string
		qty                                 decimal.NullDecimal
	)
	if err := row.Scan(&code, &product, &gtin, &location, &unit, &qty); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan stock: %w", err)
	}
	return &entity.StockItem{
		Code:     textOrEmpty(code),
		Product:  textOrEmpty(product),
		GTIN:     textOrEmpty(gtin),
		Location: textOrEmpty(location),
		Unit:     textOrEmpty(unit),
		Quantity: quantityFromDecimal(qty),
	}, nil
}
