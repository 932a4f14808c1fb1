package entity

// ProductSummary vista derivada (no persistida) de un producto del estoque con su total vendido.
type ProductSummary struct {
	Code      string
	Product   string
	Quantity  int
	TotalSold int
}
