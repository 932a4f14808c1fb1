package inventory

// StockLevel clasificación del nivel de estoque usada por el dashboard.
type StockLevel string

const (
	StockLevelCritical StockLevel = "critico" // <= 20
	StockLevelLow      StockLevel = "baixo"   // <= 49
	StockLevelOK       StockLevel = "ok"
)

const criticalStockMax = 20

// ClassifyStock devuelve el nivel de una cantidad para el umbral de baixo estoque dado.
func ClassifyStock(quantity, lowStockThreshold int) StockLevel {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	switch {
	case quantity <= criticalStockMax:
		return StockLevelCritical
	case quantity < lowStockThreshold:
		return StockLevelLow
	default:
		return StockLevelOK
	}
}
