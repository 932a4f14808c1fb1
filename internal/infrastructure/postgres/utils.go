package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// quoteIdent escapa un nombre de tabla/columna para interpolarlo en SQL.
func quoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// quantityFromDecimal normaliza quantidade: NULL => nil; NUMERIC se trunca a entero.
func quantityFromDecimal(d decimal.NullDecimal) *int {
	if !d.Valid {
		return nil
	}
	n := int(d.Decimal.IntPart())
	return &n
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
