package entity

// SaleRecord una fila de la tabla de ventas (log append-only; varios registros por código).
// Quantity nil significa columna vacía y cuenta como 0.
type SaleRecord struct {
	Code     string
	Product  string
	Quantity *int
}

// QuantityOrZero devuelve la cantidad vendida, 0 si está ausente.
func (s SaleRecord) QuantityOrZero() int {
	if s.Quantity == nil {
		return 0
	}
	return *s.Quantity
}
