package dto

// CreateStockItemRequest entrada para crear una fila de estoque.
// Las claves replican las columnas de la tabla ("GTIN/EAN", "Localizacao", "Unidade").
type CreateStockItemRequest struct {
	Codigo      string `json:"codigo" validate:"required"`
	Produto     string `json:"produto"`
	GTIN        string `json:"GTIN/EAN"`
	Localizacao string `json:"Localizacao"`
	Unidade     string `json:"Unidade"`
	Quantidade  *int   `json:"quantidade" validate:"omitempty,min=0"`
}

// UpdateStockItemRequest actualización parcial; el código no se modifica.
type UpdateStockItemRequest struct {
	Produto     *string `json:"produto"`
	GTIN        *string `json:"GTIN/EAN"`
	Localizacao *string `json:"Localizacao"`
	Unidade     *string `json:"Unidade"`
	Quantidade  *int    `json:"quantidade" validate:"omitempty,min=0"`
}

// StockItemResponse salida de una fila de estoque.
type StockItemResponse struct {
	Codigo      string `json:"codigo"`
	Produto     string `json:"produto"`
	GTIN        string `json:"GTIN/EAN"`
	Localizacao string `json:"Localizacao"`
	Unidade     string `json:"Unidade"`
	Quantidade  int    `json:"quantidade"`
}

// StockListResponse listado filtrado con los totales del estoque completo.
type StockListResponse struct {
	Items         []StockItemResponse `json:"items"`
	TotalProdutos int                 `json:"totalProdutos"` // filas en el estoque
	TotalPecas    int                 `json:"totalPecas"`    // suma de quantidade
}
