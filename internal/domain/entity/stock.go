package entity

// StockItem una fila de la tabla de estoque: un registro por código de producto.
// GTIN, Location y Unit son descriptivos; el agregador no los usa.
type StockItem struct {
	Code     string
	Product  string
	GTIN     string // columna "GTIN/EAN"
	Location string // columna "Localizacao"
	Unit     string // columna "Unidade"
	Quantity *int
}

// QuantityOrZero devuelve la cantidad en estoque, 0 si está ausente.
func (s StockItem) QuantityOrZero() int {
	if s.Quantity == nil {
		return 0
	}
	return *s.Quantity
}

// DisplayName nombre a mostrar: el producto o, si está vacío, el código.
func (s StockItem) DisplayName() string {
	if s.Product == "" {
		return s.Code
	}
	return s.Product
}
