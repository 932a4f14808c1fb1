package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/froesalexandre94-DC/zws/internal/domain"
	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier falso: registra el SQL y devuelve respuestas programadas
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuerier struct {
	lastSQL  string
	lastArgs []any
	execTag  pgconn.CommandTag
	execErr  error
	queryErr error
	row      pgx.Row
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	return nil, f.queryErr
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	return f.row
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case **string:
			if s, ok := r.values[i].(string); ok {
				*p = &s
			} else {
				*p = nil
			}
		case *decimal.NullDecimal:
			if v, ok := r.values[i].(decimal.Decimal); ok {
				*p = decimal.NullDecimal{Decimal: v, Valid: true}
			} else {
				*p = decimal.NullDecimal{}
			}
		}
	}
	return nil
}

func TestQuantityFromDecimal(t *testing.T) {
	assert.Nil(t, quantityFromDecimal(decimal.NullDecimal{}))

	q := quantityFromDecimal(decimal.NullDecimal{Decimal: decimal.RequireFromString("42.9"), Valid: true})
	require.NotNil(t, q)
	assert.Equal(t, 42, *q)
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"vendas"`, quoteIdent("vendas"))
	assert.Equal(t, `"es""tranho"`, quoteIdent(`es"tranho`))
}

func TestStockRepo_GetByCode(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{values: []any{"P-1", nil, "789", "A-1", "UN", decimal.NewFromInt(7)}}}
	repo := NewStockRepository(q, "estoque")

	it, err := repo.GetByCode(context.Background(), "P-1")
	require.NoError(t, err)
	require.NotNil(t, it)

	assert.Equal(t, "P-1", it.Code)
	assert.Equal(t, "", it.Product)
	assert.Equal(t, "P-1", it.DisplayName())
	assert.Equal(t, "789", it.GTIN)
	assert.Equal(t, 7, it.QuantityOrZero())
	assert.Contains(t, q.lastSQL, `FROM "estoque" WHERE codigo = $1`)
	assert.Equal(t, []any{"P-1"}, q.lastArgs)
}

func TestStockRepo_GetByCodeNoExiste(t *testing.T) {
	repo := NewStockRepository(&fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}}, "estoque")

	it, err := repo.GetByCode(context.Background(), "X")
	assert.NoError(t, err)
	assert.Nil(t, it)
}

func TestStockRepo_CreateDuplicado(t *testing.T) {
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: "23505"}}
	repo := NewStockRepository(q, "estoque")

	err := repo.Create(context.Background(), &entity.StockItem{Code: "P-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStockRepo_UpdateSinFilasEsNotFound(t *testing.T) {
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")}
	repo := NewStockRepository(q, "estoque")

	err := repo.Update(context.Background(), &entity.StockItem{Code: "P-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	q.execTag = pgconn.NewCommandTag("UPDATE 1")
	assert.NoError(t, repo.Update(context.Background(), &entity.StockItem{Code: "P-1"}))
}

func TestStockRepo_Delete(t *testing.T) {
	q := &fakeQuerier{execTag: pgconn.NewCommandTag("DELETE 1")}
	repo := NewStockRepository(q, "estoque")

	require.NoError(t, repo.Delete(context.Background(), "P-1"))
	assert.Equal(t, `DELETE FROM "estoque" WHERE codigo = $1`, q.lastSQL)

	q.execTag = pgconn.NewCommandTag("DELETE 0")
	assert.ErrorIs(t, repo.Delete(context.Background(), "P-1"), domain.ErrNotFound)
}

func TestSalesRepo_ListAllPropagaError(t *testing.T) {
	cause := errors.New("relation \"vendas\" does not exist")
	q := &fakeQuerier{queryErr: cause}
	repo := NewSalesRepository(q, "vendas")

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `SELECT codigo, produto, quantidade FROM "vendas"`, q.lastSQL)
}
